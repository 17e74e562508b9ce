package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlipAxis selects which scale factor a flip toggles.
type FlipAxis int

const (
	FlipHorizontal FlipAxis = iota
	FlipVertical
)

// FlipData tracks an in-progress flip tween on a token's sprite scale.
type FlipData struct {
	Axis   FlipAxis
	Tween  *gween.Tween
	Target float64 // exact end scale, snapped on completion
}

var Flip = donburi.NewComponentType[FlipData]()

// BounceData tracks an in-progress bounce. Offset is render-only
// vertical displacement; the token's object position never moves.
type BounceData struct {
	Seq    *gween.Sequence
	Offset float64
}

var Bounce = donburi.NewComponentType[BounceData]()
