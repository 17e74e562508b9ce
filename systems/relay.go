package systems

import (
	"fmt"
	"log"

	"github.com/automoto/tokenplay/components"
	"github.com/automoto/tokenplay/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// SendFunc publishes a message on the shared channel. Nil means the
// client is offline and triggers play locally only.
type SendFunc func(msg any) error

// DrainFunc returns emote events received since the last frame.
type DrainFunc func() []messages.PlayEmoteEvent

// EmoteRelay connects local emote triggers to the broadcast channel:
// a local trigger plays immediately and is published once per target
// token; received events feed the same coordinator, where scene
// scoping and duplicate suppression apply regardless of origin.
type EmoteRelay struct {
	playback *EmotePlayback
	send     SendFunc
	drain    DrainFunc
}

func NewEmoteRelay(playback *EmotePlayback, send SendFunc, drain DrainFunc) *EmoteRelay {
	return &EmoteRelay{
		playback: playback,
		send:     send,
		drain:    drain,
	}
}

// TriggerSelected plays an emote on every selected token the local
// player controls. Unknown emote ids are surfaced and nothing is sent;
// non-owned tokens are skipped with a warning while the rest proceed.
func (r *EmoteRelay) TriggerSelected(ecs *ecs.ECS, emoteID string) {
	if _, err := r.playback.Registry().Lookup(emoteID); err != nil {
		ShowWarning(ecs, fmt.Sprintf("unknown emote %q", emoteID))
		log.Printf("[relay] %v", err)
		return
	}

	player := LocalPlayer(ecs)
	for _, token := range SelectedTokens(ecs) {
		data := components.Token.Get(token)
		if !Controls(player, data) {
			ShowWarning(ecs, fmt.Sprintf("%s: %v", data.Name, ErrPermissionDenied))
			continue
		}
		r.Trigger(ecs, data.ID, emoteID)
	}
}

// Trigger plays one emote locally and publishes it for other clients.
// The caller has already established ownership of the token.
func (r *EmoteRelay) Trigger(ecs *ecs.ECS, tokenID, emoteID string) {
	sceneID := ActiveSceneID(ecs)
	r.playback.Play(ecs, sceneID, tokenID, emoteID)

	if r.send == nil {
		return
	}
	err := r.send(messages.PlayEmoteEvent{
		SceneID: sceneID,
		TokenID: tokenID,
		EmoteID: emoteID,
	})
	if err != nil {
		log.Printf("[relay] publish failed: %v", err)
	}
}

// Update feeds received broadcasts into the coordinator. Events for
// scenes this client is not viewing produce no side effects.
func (r *EmoteRelay) Update(ecs *ecs.ECS) {
	if r.drain == nil {
		return
	}
	for _, evt := range r.drain() {
		r.playback.Play(ecs, evt.SceneID, evt.TokenID, evt.EmoteID)
	}
}
