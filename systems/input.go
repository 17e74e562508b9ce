package systems

import (
	"github.com/automoto/tokenplay/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var emoteHotkeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// TableInput translates clicks and hotkeys into token actions:
// click selects (shift-click toggles), F/V flips, B bounces, 1-9 play
// the Nth configured emote, Tab cycles scenes.
type TableInput struct {
	animator   *TokenAnimator
	relay      *EmoteRelay
	cycleScene func()
}

func NewTableInput(animator *TokenAnimator, relay *EmoteRelay, cycleScene func()) *TableInput {
	return &TableInput{
		animator:   animator,
		relay:      relay,
		cycleScene: cycleScene,
	}
}

func (in *TableInput) Update(ecs *ecs.ECS) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		if token, ok := TokenAt(ecs, float64(cx), float64(cy)); ok {
			if ebiten.IsKeyPressed(ebiten.KeyShift) {
				ToggleSelect(token)
			} else {
				SelectOnly(ecs, token)
			}
		} else if !ebiten.IsKeyPressed(ebiten.KeyShift) {
			ClearSelection(ecs)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		in.animator.FlipSelected(ecs, components.FlipHorizontal)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		in.animator.FlipSelected(ecs, components.FlipVertical)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		in.animator.BounceSelected(ecs)
	}

	for i, key := range emoteHotkeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if def, ok := in.relay.playback.Registry().At(i); ok {
			in.relay.TriggerSelected(ecs, def.ID)
		}
	}

	if in.cycleScene != nil && inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		in.cycleScene()
	}
}
