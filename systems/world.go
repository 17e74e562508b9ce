package systems

import (
	"github.com/automoto/tokenplay/components"
	"github.com/automoto/tokenplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDt is the fixed timestep all tweens advance by. Ebiten drives
// Update at 60 ticks per second.
const frameDt = float32(1.0 / 60.0)

// ActiveSceneID returns the scene the local client is viewing.
func ActiveSceneID(ecs *ecs.ECS) string {
	return getOrCreateSceneState(ecs).ActiveSceneID
}

// SetActiveScene switches the viewed scene. In-flight playbacks and
// animations notice the change on their next update and cancel.
func SetActiveScene(ecs *ecs.ECS, sceneID string) {
	getOrCreateSceneState(ecs).ActiveSceneID = sceneID
}

func getOrCreateSceneState(ecs *ecs.ECS) *components.SceneStateData {
	entry, ok := components.SceneState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.SceneState))
		components.SceneState.SetValue(entry, components.SceneStateData{})
	}
	return components.SceneState.Get(entry)
}

// LocalPlayer returns the local user singleton, creating an anonymous
// one if the scene never set it.
func LocalPlayer(ecs *ecs.ECS) *components.LocalPlayerData {
	entry, ok := components.LocalPlayer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.LocalPlayer))
		components.LocalPlayer.SetValue(entry, components.LocalPlayerData{Name: "player"})
	}
	return components.LocalPlayer.Get(entry)
}

// SetLocalPlayer configures the local user singleton.
func SetLocalPlayer(ecs *ecs.ECS, name string, gm bool) {
	p := LocalPlayer(ecs)
	p.Name = name
	p.IsGM = gm
}

// Controls reports whether the local player may act on the token.
// The GM controls everything; an empty owner is free for anyone.
func Controls(player *components.LocalPlayerData, token *components.TokenData) bool {
	if player.IsGM {
		return true
	}
	if token.Owner == "" {
		return true
	}
	return token.Owner == player.Name
}

// FindToken returns the token entry with the given id in the given
// scene.
func FindToken(ecs *ecs.ECS, sceneID, tokenID string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Token.Each(ecs.World, func(e *donburi.Entry) {
		if found != nil {
			return
		}
		t := components.Token.Get(e)
		if t.ID == tokenID && t.SceneID == sceneID {
			found = e
		}
	})
	return found, found != nil
}

// SelectedTokens returns the selected token entries in the active
// scene.
func SelectedTokens(ecs *ecs.ECS) []*donburi.Entry {
	sceneID := ActiveSceneID(ecs)
	var out []*donburi.Entry
	tags.Selected.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Token) {
			return
		}
		if components.Token.Get(e).SceneID == sceneID {
			out = append(out, e)
		}
	})
	return out
}
