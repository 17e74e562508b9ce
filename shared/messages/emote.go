package messages

// PlayEmoteEvent is published when a client triggers an emote on a
// token. The relay re-broadcasts it to every other client; receivers
// drop it unless they are viewing SceneID. Sent once per triggering
// action per target token, never persisted.
type PlayEmoteEvent struct {
	SceneID string
	TokenID string
	EmoteID string
}
