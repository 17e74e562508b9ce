package messages

// JoinRequest is sent by a client after connecting to join the table
// relay.
type JoinRequest struct {
	Version    string
	PlayerName string
}

// JoinAccepted is sent by the relay when a client's join request is
// accepted.
type JoinAccepted struct {
	ClientID   string
	ServerName string
	TickRate   int
}

// JoinRejected is sent by the relay when a client's join request is
// rejected.
type JoinRejected struct {
	Reason string
}

// Heartbeat is sent periodically by a joined client; the relay drops
// clients that go quiet.
type Heartbeat struct {
	ClientID string
}
