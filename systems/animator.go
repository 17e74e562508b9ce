package systems

import (
	"fmt"
	"log"

	"github.com/automoto/tokenplay/components"
	cfg "github.com/automoto/tokenplay/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TokenAnimator drives flip and bounce animations on tokens. It owns
// the busy set: a token with an animation in flight refuses new ones
// until the current one completes, and the marker is cleared on every
// completion path.
type TokenAnimator struct {
	busy map[string]struct{}
}

func NewTokenAnimator() *TokenAnimator {
	return &TokenAnimator{
		busy: make(map[string]struct{}),
	}
}

// FlipSelected flips every selected token in the active scene around
// the given axis. Non-owned tokens get a warning and are skipped;
// owned tokens in the same call still flip. Busy tokens are skipped
// silently.
func (a *TokenAnimator) FlipSelected(ecs *ecs.ECS, axis components.FlipAxis) {
	player := LocalPlayer(ecs)
	for _, token := range SelectedTokens(ecs) {
		data := components.Token.Get(token)
		if !Controls(player, data) {
			ShowWarning(ecs, fmt.Sprintf("%s: %v", data.Name, ErrPermissionDenied))
			continue
		}
		if a.Busy(data.ID) {
			continue
		}
		a.startFlip(token, data.ID, axis)
	}
}

// BounceSelected bounces every selected owned token in the active
// scene. Each token's bounce is independent of the others.
func (a *TokenAnimator) BounceSelected(ecs *ecs.ECS) {
	player := LocalPlayer(ecs)
	for _, token := range SelectedTokens(ecs) {
		data := components.Token.Get(token)
		if !Controls(player, data) {
			ShowWarning(ecs, fmt.Sprintf("%s: %v", data.Name, ErrPermissionDenied))
			continue
		}
		if a.Busy(data.ID) {
			continue
		}
		a.startBounce(token, data.ID)
	}
}

// Busy reports whether the token has an animation in flight.
func (a *TokenAnimator) Busy(tokenID string) bool {
	_, busy := a.busy[tokenID]
	return busy
}

func (a *TokenAnimator) startFlip(token *donburi.Entry, tokenID string, axis components.FlipAxis) {
	sprite := components.Sprite.Get(token)

	from := sprite.ScaleX
	if axis == components.FlipVertical {
		from = sprite.ScaleY
	}
	target := -from

	token.AddComponent(components.Flip)
	components.Flip.SetValue(token, components.FlipData{
		Axis:   axis,
		Tween:  gween.New(float32(from), float32(target), cfg.Flip.Duration, ease.InOutQuad),
		Target: target,
	})
	a.busy[tokenID] = struct{}{}
}

func (a *TokenAnimator) startBounce(token *donburi.Entry, tokenID string) {
	half := cfg.Bounce.Cycle / 2
	height := float32(cfg.Bounce.Height)

	// Each cycle rises with ease-out and falls with ease-in, and every
	// cycle lands back at zero before the next begins.
	seq := gween.NewSequence()
	for i := 0; i < cfg.Bounce.Count; i++ {
		seq.Add(
			gween.New(0, -height, half, ease.OutQuad),
			gween.New(-height, 0, half, ease.InQuad),
		)
	}

	token.AddComponent(components.Bounce)
	components.Bounce.SetValue(token, components.BounceData{Seq: seq})
	a.busy[tokenID] = struct{}{}
}

// Update advances all flips and bounces by one frame, snapping final
// values and clearing busy markers on completion. Markers for tokens
// that vanished mid-animation are dropped as well.
func (a *TokenAnimator) Update(ecs *ecs.ECS) {
	live := make(map[string]struct{}, len(a.busy))

	var finishedFlips []*donburi.Entry
	components.Flip.Each(ecs.World, func(e *donburi.Entry) {
		flip := components.Flip.Get(e)
		sprite := components.Sprite.Get(e)

		value, finished := flip.Tween.Update(frameDt)
		if finished {
			value = float32(flip.Target)
			finishedFlips = append(finishedFlips, e)
		}
		if flip.Axis == components.FlipVertical {
			sprite.ScaleY = float64(value)
		} else {
			sprite.ScaleX = float64(value)
		}

		if !finished && e.HasComponent(components.Token) {
			live[components.Token.Get(e).ID] = struct{}{}
		}
	})

	var finishedBounces []*donburi.Entry
	components.Bounce.Each(ecs.World, func(e *donburi.Entry) {
		bounce := components.Bounce.Get(e)

		value, _, finished := bounce.Seq.Update(frameDt)
		bounce.Offset = float64(value)
		if finished {
			bounce.Offset = 0
			finishedBounces = append(finishedBounces, e)
			return
		}

		if e.HasComponent(components.Token) {
			live[components.Token.Get(e).ID] = struct{}{}
		}
	})

	for _, e := range finishedFlips {
		e.RemoveComponent(components.Flip)
	}
	for _, e := range finishedBounces {
		e.RemoveComponent(components.Bounce)
	}

	// Rebuild instead of deleting per-entity: tokens removed
	// mid-animation leave no stale marker behind.
	if len(live) != len(a.busy) {
		if cfg.Debug.LogPlayback {
			log.Printf("[animator] busy %d -> %d", len(a.busy), len(live))
		}
	}
	a.busy = live
}
