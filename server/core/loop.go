package core

import (
	"log"
	"time"
)

// staleTimeout is how long a client may go silent before it is pruned.
const staleTimeout = 45 * time.Second

type RelayLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewRelayLoop(server *Server, tickRate int) *RelayLoop {
	return &RelayLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (r *RelayLoop) Run() {
	r.running = true
	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	pruneTicker := time.NewTicker(10 * time.Second)
	defer pruneTicker.Stop()

	log.Printf("Relay loop started at %d ticks/second", r.tickRate)

	for {
		select {
		case <-r.stopChan:
			r.running = false
			log.Println("Relay loop stopped")
			return
		case <-pruneTicker.C:
			r.pruneStale()
		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *RelayLoop) Stop() {
	close(r.stopChan)
}

// tick relays every queued emote event to all joined clients except the
// sender, which already played it locally.
func (r *RelayLoop) tick() {
	queued := r.server.drainPending()
	if len(queued) == 0 {
		return
	}

	clients := r.server.joinedClients()
	for _, q := range queued {
		for _, client := range clients {
			if client == q.sender {
				continue
			}
			r.server.sendTo(client, q.event)
		}
	}
}

func (r *RelayLoop) pruneStale() {
	cutoff := time.Now().Add(-staleTimeout)

	r.server.mu.Lock()
	for client, info := range r.server.clients {
		if info.lastSeen.Before(cutoff) {
			log.Printf("Pruning stale client %s (last seen %s ago)",
				client.Id(), time.Since(info.lastSeen).Round(time.Second))
			delete(r.server.clients, client)
		}
	}
	r.server.mu.Unlock()
}
