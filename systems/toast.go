package systems

import (
	"github.com/automoto/tokenplay/components"
	cfg "github.com/automoto/tokenplay/config"
	"github.com/automoto/tokenplay/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for toast rendering (lazy initialized)
var toastFontFace font.Face

// ShowWarning queues a warning toast (permission refusals and the
// like).
func ShowWarning(ecs *ecs.ECS, message string) {
	pushToast(ecs, message, components.ToastWarning)
}

// ShowInfo queues an informational toast.
func ShowInfo(ecs *ecs.ECS, message string) {
	pushToast(ecs, message, components.ToastInfo)
}

func pushToast(ecs *ecs.ECS, message string, kind components.ToastKind) {
	state := getOrCreateToastState(ecs)
	state.Lines = append(state.Lines, components.ToastLine{
		Text:   message,
		Kind:   kind,
		Frames: cfg.Toast.DisplayFrames,
	})
	if len(state.Lines) > cfg.Toast.MaxVisible {
		state.Lines = state.Lines[len(state.Lines)-cfg.Toast.MaxVisible:]
	}
}

// UpdateToasts decrements toast timers and drops expired lines.
func UpdateToasts(ecs *ecs.ECS) {
	state := getOrCreateToastState(ecs)

	kept := state.Lines[:0]
	for _, line := range state.Lines {
		line.Frames--
		if line.Frames > 0 {
			kept = append(kept, line)
		}
	}
	state.Lines = kept
}

// DrawToasts renders the visible toasts stacked at the top center of
// the screen.
func DrawToasts(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateToastState(ecs)
	if len(state.Lines) == 0 {
		return
	}

	if toastFontFace == nil {
		toastFontFace = fonts.Regular.Get()
	}

	screenWidth := float64(screen.Bounds().Dx())
	y := cfg.Toast.TopMargin

	for _, line := range state.Lines {
		bounds := text.BoundString(toastFontFace, line.Text) //nolint:staticcheck // TODO: migrate to text/v2
		textWidth := float64(bounds.Dx())
		textHeight := float64(bounds.Dy())

		padding := cfg.Toast.BoxPadding
		boxWidth := float32(textWidth + padding*2)
		boxHeight := float32(textHeight + padding*2)
		boxX := float32((screenWidth - float64(boxWidth)) / 2)

		vector.FillRect(screen, boxX, float32(y), boxWidth, boxHeight, cfg.Toast.BoxColor, false)

		textColor := cfg.Toast.TextColor
		if line.Kind == components.ToastWarning {
			textColor = cfg.Toast.WarnColor
		}
		textX := int(float64(boxX) + padding)
		textY := int(y + padding + textHeight)
		text.Draw(screen, line.Text, toastFontFace, textX, textY, textColor)

		y += float64(boxHeight) + cfg.Toast.LineSpacing
	}
}

func getOrCreateToastState(ecs *ecs.ECS) *components.ToastStateData {
	entry, ok := components.ToastState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.ToastState))
		components.ToastState.SetValue(entry, components.ToastStateData{})
	}
	return components.ToastState.Get(entry)
}
