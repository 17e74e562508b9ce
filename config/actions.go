package config

import "image/color"

// FlipConfig contains token flip animation settings
type FlipConfig struct {
	Duration float32 // seconds for a full flip
}

// BounceConfig contains token bounce animation settings
type BounceConfig struct {
	Height float64 // peak vertical displacement in pixels
	Cycle  float32 // seconds for one full up/down cycle
	Count  int     // number of cycles per trigger
}

// ToastConfig contains the on-screen warning/info toast settings
type ToastConfig struct {
	DisplayFrames int // frames a toast stays visible
	MaxVisible    int
	TopMargin     float64
	LineSpacing   float64
	BoxPadding    float64
	BoxColor      color.RGBA
	TextColor     color.RGBA
	WarnColor     color.RGBA
}

var Flip FlipConfig
var Bounce BounceConfig
var Toast ToastConfig

func init() {
	Flip = FlipConfig{
		Duration: 0.35,
	}

	Bounce = BounceConfig{
		Height: 20,
		Cycle:  0.3,
		Count:  3,
	}

	Toast = ToastConfig{
		DisplayFrames: 180, // 3s at 60fps
		MaxVisible:    4,
		TopMargin:     16,
		LineSpacing:   6,
		BoxPadding:    8,
		BoxColor:      color.RGBA{0, 0, 0, 160},
		TextColor:     color.RGBA{235, 235, 235, 255},
		WarnColor:     color.RGBA{255, 196, 110, 255},
	}
}
