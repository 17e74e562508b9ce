package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"sync"
	"time"
)

// TableInfo describes a public table visible to clients.
type TableInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
	Version    string `json:"version"`
}

type tableRecord struct {
	TableInfo
	LastSeen time.Time
}

// Registry is an in-memory store of active tables with TTL-based expiry.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*tableRecord
	ttl    time.Duration
	stopCh chan struct{}
}

func NewRegistry(ttl time.Duration) *Registry {
	r := &Registry{
		tables: make(map[string]*tableRecord),
		ttl:    ttl,
		stopCh: make(chan struct{}),
	}
	go r.cleanupLoop()
	return r
}

func (r *Registry) Stop() {
	close(r.stopCh)
}

func (r *Registry) Register(info TableInfo) string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	id := fmt.Sprintf("%x", b)

	info.ID = id

	r.mu.Lock()
	r.tables[id] = &tableRecord{
		TableInfo: info,
		LastSeen:  time.Now(),
	}
	r.mu.Unlock()

	return id
}

func (r *Registry) Heartbeat(id string, players int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.tables[id]
	if !ok {
		return false
	}
	rec.LastSeen = time.Now()
	rec.Players = players
	return true
}

func (r *Registry) List() []TableInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]TableInfo, 0, len(r.tables))
	for _, rec := range r.tables {
		result = append(result, rec.TableInfo)
	}
	return result
}

// expire removes every table not seen within the TTL. Returns how many
// were dropped.
func (r *Registry) expire(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, rec := range r.tables {
		if now.Sub(rec.LastSeen) >= r.ttl {
			log.Printf("[master] expired table %q (id=%s, last seen %s ago)",
				rec.Name, id, now.Sub(rec.LastSeen).Round(time.Second))
			delete(r.tables, id)
			dropped++
		}
	}
	return dropped
}

func (r *Registry) cleanupLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.expire(time.Now())
		}
	}
}
