package network

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/tokenplay/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoined
	StateError
)

const heartbeatInterval = 10 * time.Second

// Client manages the WebSocket connection to a table relay.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	clientID   string
	serverName string
	tickRate   int
	conn       *websocket.Conn

	emoteCh chan messages.PlayEmoteEvent

	stopHeartbeat chan struct{}
}

func NewClient() *Client {
	return &Client{
		state:   StateDisconnected,
		emoteCh: make(chan messages.PlayEmoteEvent, 32),
	}
}

// Connect dials the relay in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to relay")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		payload, err := router.Serialize(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to serialize join request: %w", err))
			return
		}

		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()

		if conn != nil {
			if err := conn.Write(context.Background(), websocket.MessageBinary, payload); err != nil {
				c.setError(fmt.Errorf("failed to send join request: %w", err))
			}
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] join accepted: clientID=%s server=%s tickRate=%d",
			msg.ClientID, msg.ServerName, msg.TickRate)
		c.mu.Lock()
		c.clientID = msg.ClientID
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.state = StateJoined
		stop := make(chan struct{})
		c.stopHeartbeat = stop
		c.mu.Unlock()

		go c.heartbeatLoop(msg.ClientID, stop)
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, evt messages.PlayEmoteEvent) {
		select {
		case c.emoteCh <- evt:
		default:
			log.Printf("[client] emote event buffer full, dropping %s/%s", evt.TokenID, evt.EmoteID)
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		if c.stopHeartbeat != nil {
			close(c.stopHeartbeat)
			c.stopHeartbeat = nil
		}
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	if c.stopHeartbeat != nil {
		close(c.stopHeartbeat)
		c.stopHeartbeat = nil
	}
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) ClientID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientID
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

// DrainEmoteEvents returns all pending emote events, non-blocking.
// Delivery order per sender is preserved by the websocket.
func (c *Client) DrainEmoteEvents() []messages.PlayEmoteEvent {
	var out []messages.PlayEmoteEvent
	for {
		select {
		case evt := <-c.emoteCh:
			out = append(out, evt)
		default:
			return out
		}
	}
}

func (c *Client) heartbeatLoop(clientID string, stop chan struct{}) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := c.SendMessage(messages.Heartbeat{ClientID: clientID}); err != nil {
				log.Printf("[client] heartbeat failed: %v", err)
				return
			}
		}
	}
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
