package factory

import (
	"github.com/automoto/tokenplay/archetypes"
	"github.com/automoto/tokenplay/components"
	"github.com/automoto/tokenplay/emotes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const fallbackIconSize = 32.0

// CreateEmoteOverlay spawns the floating emote icon above a token at
// opacity zero, with its fade-in/hold/fade-out sequence armed. img may
// be nil (tests run without a graphics context); the overlay's bounds
// then use a fallback size so anchoring still works.
func CreateEmoteOverlay(ecs *ecs.ECS, token *donburi.Entry, def emotes.Definition, img *ebiten.Image) *donburi.Entry {
	overlay := archetypes.EmoteOverlay.Spawn(ecs)

	iconW, iconH := fallbackIconSize, fallbackIconSize
	if img != nil {
		bounds := img.Bounds()
		iconW = float64(bounds.Dx())
		iconH = float64(bounds.Dy())
	}
	iconW *= def.Scale
	iconH *= def.Scale

	tokenData := components.Token.Get(token)
	tokenObj := components.Object.Get(token)

	x, y := AnchorAboveToken(tokenObj.Object, iconW, iconH, def.OffsetX, def.OffsetY)
	obj := resolv.NewObject(x, y, iconW, iconH)
	obj.Data = overlay
	components.Object.SetValue(overlay, components.ObjectData{Object: obj})

	seq := gween.NewSequence(
		gween.New(0, 1, def.FadeIn, ease.Linear),
		gween.New(1, 1, def.Duration, ease.Linear),
		gween.New(1, 0, def.FadeOut, ease.Linear),
	)

	components.EmoteOverlay.SetValue(overlay, components.EmoteOverlayData{
		TokenID: tokenData.ID,
		EmoteID: def.ID,
		SceneID: tokenData.SceneID,
		OffsetX: def.OffsetX,
		OffsetY: def.OffsetY,
		Scale:   def.Scale,
		Opacity: 0,
		Seq:     seq,
	})

	components.Sprite.SetValue(overlay, components.SpriteData{
		Image:  img,
		ScaleX: def.Scale,
		ScaleY: def.Scale,
	})

	return overlay
}

// AnchorAboveToken computes the overlay's top-left so the icon floats
// centered above the token's bounding box.
func AnchorAboveToken(token *resolv.Object, iconW, iconH, offsetX, offsetY float64) (float64, float64) {
	x := token.X + token.W/2 - iconW/2 + offsetX
	y := token.Y - iconH - offsetY
	return x, y
}
