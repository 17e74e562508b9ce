package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer all entities and renderers live on.
const Default ecs.LayerID = 0

// ClientConfig contains window and startup configuration
type ClientConfig struct {
	Width     int
	Height    int
	Title     string
	Version   string
	TablesDir string
}

// DebugConfig contains development toggles
type DebugConfig struct {
	SkipMenu    bool // jump straight into an offline table
	DrawBounds  bool // outline token collision rects
	LogPlayback bool // log every emote playback transition
}

var C ClientConfig
var Debug DebugConfig

func init() {
	C = ClientConfig{
		Width:     1280,
		Height:    720,
		Title:     "tokenplay",
		Version:   "0.3.0",
		TablesDir: "tables",
	}

	Debug = DebugConfig{
		SkipMenu:    false,
		DrawBounds:  false,
		LogPlayback: false,
	}
}
