package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerTable(t *testing.T, reg *Registry, body string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/tables/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	RegisterTable(reg)(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp registerResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestRegisterThenList(t *testing.T) {
	reg := NewRegistry(time.Minute)
	defer reg.Stop()

	registerTable(t, reg, `{"name":"Tavern","address":"host:7373","maxPlayers":6}`)

	req := httptest.NewRequest(http.MethodGet, "/tables", nil)
	w := httptest.NewRecorder()
	ListTables(reg)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var tables []TableInfo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&tables))
	require.Len(t, tables, 1)
	assert.Equal(t, "Tavern", tables[0].Name)
	assert.Equal(t, "host:7373", tables[0].Address)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	reg := NewRegistry(time.Minute)
	defer reg.Stop()

	req := httptest.NewRequest(http.MethodPost, "/tables/register", strings.NewReader(`{"name":"NoAddress"}`))
	w := httptest.NewRecorder()
	RegisterTable(reg)(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsBadJSON(t *testing.T) {
	reg := NewRegistry(time.Minute)
	defer reg.Stop()

	req := httptest.NewRequest(http.MethodPost, "/tables/register", strings.NewReader("{"))
	w := httptest.NewRecorder()
	RegisterTable(reg)(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHeartbeatKnownAndUnknown(t *testing.T) {
	reg := NewRegistry(time.Minute)
	defer reg.Stop()

	id := registerTable(t, reg, `{"name":"Tavern","address":"host:7373"}`)

	req := httptest.NewRequest(http.MethodPost, "/tables/heartbeat",
		strings.NewReader(`{"id":"`+id+`","players":4}`))
	w := httptest.NewRecorder()
	Heartbeat(reg)(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	tables := reg.List()
	require.Len(t, tables, 1)
	assert.Equal(t, 4, tables[0].Players)

	req = httptest.NewRequest(http.MethodPost, "/tables/heartbeat",
		strings.NewReader(`{"id":"missing","players":1}`))
	w = httptest.NewRecorder()
	Heartbeat(reg)(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
