package systems

import (
	"image/color"

	"github.com/automoto/tokenplay/components"
	cfg "github.com/automoto/tokenplay/config"
	"github.com/automoto/tokenplay/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp         = &ebiten.DrawImageOptions{}
	selectionColor = color.RGBA{120, 200, 255, 255}
)

// DrawTokens renders every token on the active scene with its flip
// scale and bounce offset applied.
func DrawTokens(ecs *ecs.ECS, screen *ebiten.Image) {
	sceneID := ActiveSceneID(ecs)

	components.Token.Each(ecs.World, func(e *donburi.Entry) {
		if components.Token.Get(e).SceneID != sceneID {
			return
		}

		obj := components.Object.Get(e)
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}

		bounceOffset := 0.0
		if e.HasComponent(components.Bounce) {
			bounceOffset = components.Bounce.Get(e).Offset
		}

		imgW := float64(sprite.Image.Bounds().Dx())
		imgH := float64(sprite.Image.Bounds().Dy())

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		// Flip around the sprite center so mirrored tokens stay put.
		drawOp.GeoM.Translate(-imgW/2, -imgH/2)
		drawOp.GeoM.Scale(sprite.ScaleX*obj.W/imgW, sprite.ScaleY*obj.H/imgH)
		drawOp.GeoM.Translate(obj.X+obj.W/2, obj.Y+obj.H/2+bounceOffset)
		screen.DrawImage(sprite.Image, drawOp)

		if e.HasComponent(tags.Selected) {
			vector.StrokeRect(screen,
				float32(obj.X)-2, float32(obj.Y+bounceOffset)-2,
				float32(obj.W)+4, float32(obj.H)+4,
				2, selectionColor, false)
		}
		if cfg.Debug.DrawBounds {
			vector.StrokeRect(screen,
				float32(obj.X), float32(obj.Y),
				float32(obj.W), float32(obj.H),
				1, color.RGBA{255, 0, 0, 255}, false)
		}
	})
}

// DrawEmoteOverlays renders active emote icons above their tokens with
// the playback's current opacity.
func DrawEmoteOverlays(ecs *ecs.ECS, screen *ebiten.Image) {
	sceneID := ActiveSceneID(ecs)

	components.EmoteOverlay.Each(ecs.World, func(e *donburi.Entry) {
		ov := components.EmoteOverlay.Get(e)
		if ov.SceneID != sceneID || ov.Opacity <= 0 {
			return
		}

		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}
		obj := components.Object.Get(e)

		imgW := float64(sprite.Image.Bounds().Dx())
		imgH := float64(sprite.Image.Bounds().Dy())

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(obj.W/imgW, obj.H/imgH)
		drawOp.GeoM.Translate(obj.X, obj.Y)
		drawOp.ColorScale.ScaleAlpha(ov.Opacity)
		screen.DrawImage(sprite.Image, drawOp)
	})
}
