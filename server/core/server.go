package core

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/tokenplay/shared/messages"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

// clientInfo tracks per-connection state. A connection only counts as a
// player after a successful join handshake.
type clientInfo struct {
	playerName string
	joined     bool
	lastSeen   time.Time
}

// queuedEmote pairs a received emote event with its sender so the relay
// can skip echoing it back.
type queuedEmote struct {
	sender *router.NetworkClient
	event  messages.PlayEmoteEvent
}

// Server relays emote events between clients at a table.
type Server struct {
	name      string
	version   string
	tickRate  int
	loop      *RelayLoop
	transport *transports.WsServerTransport

	mu      sync.RWMutex
	clients map[*router.NetworkClient]*clientInfo
	pending []queuedEmote
}

// NewServer creates a relay server. If version is non-empty, clients
// reporting a different version are rejected during the handshake.
func NewServer(tickRate int, name, version string) *Server {
	s := &Server{
		name:     name,
		version:  version,
		tickRate: tickRate,
		clients:  make(map[*router.NetworkClient]*clientInfo),
	}
	s.loop = NewRelayLoop(s, tickRate)

	// Register router callbacks
	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoinRequest(client, req)
	})

	router.On(func(client *router.NetworkClient, hb messages.Heartbeat) {
		s.onHeartbeat(client)
	})

	router.On(func(client *router.NetworkClient, evt messages.PlayEmoteEvent) {
		s.onPlayEmote(client, evt)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	log.Printf("Client connected: %s", client.Id())

	s.mu.Lock()
	s.clients[client] = &clientInfo{lastSeen: time.Now()}
	s.mu.Unlock()
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	s.mu.Lock()
	delete(s.clients, client)
	s.mu.Unlock()
}

func (s *Server) onJoinRequest(client *router.NetworkClient, req messages.JoinRequest) {
	if s.version != "" && req.Version != s.version {
		log.Printf("Rejecting client %s: version %q (want %q)", client.Id(), req.Version, s.version)
		s.sendTo(client, messages.JoinRejected{
			Reason: "version mismatch: server requires " + s.version,
		})
		return
	}

	s.mu.Lock()
	info, ok := s.clients[client]
	if !ok {
		info = &clientInfo{}
		s.clients[client] = info
	}
	info.playerName = req.PlayerName
	info.joined = true
	info.lastSeen = time.Now()
	s.mu.Unlock()

	log.Printf("Player %q joined as client %s", req.PlayerName, client.Id())

	s.sendTo(client, messages.JoinAccepted{
		ClientID:   client.Id(),
		ServerName: s.name,
		TickRate:   s.tickRate,
	})
}

func (s *Server) onHeartbeat(client *router.NetworkClient) {
	s.mu.Lock()
	if info, ok := s.clients[client]; ok {
		info.lastSeen = time.Now()
	}
	s.mu.Unlock()
}

func (s *Server) onPlayEmote(client *router.NetworkClient, evt messages.PlayEmoteEvent) {
	s.mu.Lock()
	info, ok := s.clients[client]
	if !ok || !info.joined {
		s.mu.Unlock()
		log.Printf("Dropping emote event from unjoined client %s", client.Id())
		return
	}
	info.lastSeen = time.Now()
	s.pending = append(s.pending, queuedEmote{sender: client, event: evt})
	s.mu.Unlock()
}

// drainPending swaps out the queued emote events for relay processing.
func (s *Server) drainPending() []queuedEmote {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	out := s.pending
	s.pending = nil
	return out
}

// joinedClients returns a snapshot of all clients that completed the
// handshake.
func (s *Server) joinedClients() []*router.NetworkClient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*router.NetworkClient, 0, len(s.clients))
	for client, info := range s.clients {
		if info.joined {
			out = append(out, client)
		}
	}
	return out
}

func (s *Server) sendTo(client *router.NetworkClient, msg any) {
	if err := client.SendMessage(msg); err != nil {
		log.Printf("Failed to send to client %s: %v", client.Id(), err)
	}
}

// PlayerCount returns the number of joined players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, info := range s.clients {
		if info.joined {
			n++
		}
	}
	return n
}
