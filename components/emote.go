package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EmoteOverlayData is the live state of one emote playback: the icon
// floating above a token. Seq drives opacity through
// fade-in -> hold -> fade-out; the overlay entity is removed when the
// sequence completes or the playback is cancelled.
type EmoteOverlayData struct {
	TokenID string
	EmoteID string
	SceneID string

	OffsetX float64
	OffsetY float64
	Scale   float64

	Opacity float32
	Seq     *gween.Sequence
}

var EmoteOverlay = donburi.NewComponentType[EmoteOverlayData]()
