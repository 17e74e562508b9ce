package tags

import "github.com/yohamta/donburi"

var (
	Token        = donburi.NewTag().SetName("Token")
	EmoteOverlay = donburi.NewTag().SetName("EmoteOverlay")
	Selected     = donburi.NewTag().SetName("Selected")
)
