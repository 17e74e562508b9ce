package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndList(t *testing.T) {
	reg := NewRegistry(90 * time.Second)
	defer reg.Stop()

	id := reg.Register(TableInfo{Name: "Tavern Night", Address: "host:7373", MaxPlayers: 6})
	require.NotEmpty(t, id)

	tables := reg.List()
	require.Len(t, tables, 1)
	assert.Equal(t, id, tables[0].ID)
	assert.Equal(t, "Tavern Night", tables[0].Name)
}

func TestHeartbeatRefreshesAndUpdatesPlayers(t *testing.T) {
	reg := NewRegistry(90 * time.Second)
	defer reg.Stop()

	id := reg.Register(TableInfo{Name: "Tavern", Address: "host:7373"})

	assert.True(t, reg.Heartbeat(id, 3))
	tables := reg.List()
	require.Len(t, tables, 1)
	assert.Equal(t, 3, tables[0].Players)

	assert.False(t, reg.Heartbeat("nope", 1))
}

func TestExpireDropsStaleTables(t *testing.T) {
	reg := NewRegistry(time.Minute)
	defer reg.Stop()

	stale := reg.Register(TableInfo{Name: "Stale", Address: "a:1"})
	fresh := reg.Register(TableInfo{Name: "Fresh", Address: "b:2"})
	_ = stale

	// Only the heartbeated table survives a sweep far in the future.
	future := time.Now().Add(2 * time.Minute)
	reg.mu.Lock()
	reg.tables[fresh].LastSeen = future
	reg.mu.Unlock()

	dropped := reg.expire(future)
	assert.Equal(t, 1, dropped)

	tables := reg.List()
	require.Len(t, tables, 1)
	assert.Equal(t, "Fresh", tables[0].Name)
}
