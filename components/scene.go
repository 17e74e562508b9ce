package components

import "github.com/yohamta/donburi"

// SceneStateData is a singleton holding the scene the local client is
// currently viewing. Playback is scoped to it: broadcasts for other
// scenes are dropped and active playbacks cancel when it changes.
type SceneStateData struct {
	ActiveSceneID string
}

var SceneState = donburi.NewComponentType[SceneStateData]()

// LocalPlayerData is a singleton describing the local user.
type LocalPlayerData struct {
	Name string
	IsGM bool
}

var LocalPlayer = donburi.NewComponentType[LocalPlayerData]()
