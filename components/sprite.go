package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData holds the drawable for a token or overlay.
// ScaleX/ScaleY carry flip state: a negative sign mirrors the sprite
// around its center, magnitude is preserved across flips.
type SpriteData struct {
	Image  *ebiten.Image
	ScaleX float64
	ScaleY float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
