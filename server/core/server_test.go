package core

import (
	"testing"
	"time"

	"github.com/automoto/tokenplay/shared/messages"
	"github.com/leap-fish/necs/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBareServer() *Server {
	return &Server{
		name:     "test",
		tickRate: 20,
		clients:  make(map[*router.NetworkClient]*clientInfo),
	}
}

func TestEmoteQueueDrainsOnce(t *testing.T) {
	s := newBareServer()
	sender := &router.NetworkClient{}
	s.clients[sender] = &clientInfo{joined: true, lastSeen: time.Now()}

	evt := messages.PlayEmoteEvent{SceneID: "tavern", TokenID: "tok-1", EmoteID: "heart"}
	s.onPlayEmote(sender, evt)
	s.onPlayEmote(sender, evt)

	queued := s.drainPending()
	require.Len(t, queued, 2)
	assert.Equal(t, evt, queued[0].event)
	assert.Same(t, sender, queued[0].sender)

	assert.Empty(t, s.drainPending(), "queue must be empty after a drain")
}

func TestUnjoinedClientEventsAreDropped(t *testing.T) {
	s := newBareServer()
	lurker := &router.NetworkClient{}
	s.clients[lurker] = &clientInfo{joined: false, lastSeen: time.Now()}

	s.onPlayEmote(lurker, messages.PlayEmoteEvent{TokenID: "tok-1", EmoteID: "heart"})

	assert.Empty(t, s.drainPending())
}

func TestJoinedClientsExcludesPending(t *testing.T) {
	s := newBareServer()
	joined := &router.NetworkClient{}
	pending := &router.NetworkClient{}
	s.clients[joined] = &clientInfo{joined: true, lastSeen: time.Now()}
	s.clients[pending] = &clientInfo{joined: false, lastSeen: time.Now()}

	list := s.joinedClients()
	require.Len(t, list, 1)
	assert.Same(t, joined, list[0])
	assert.Equal(t, 1, s.PlayerCount())
}
