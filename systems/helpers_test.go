package systems

import (
	"github.com/automoto/tokenplay/archetypes"
	"github.com/automoto/tokenplay/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// spawnTestToken creates a token without any art so tests run headless.
func spawnTestToken(e *ecs.ECS, sceneID, tokenID, owner string) *donburi.Entry {
	token := archetypes.Token.Spawn(e)
	components.Token.SetValue(token, components.TokenData{
		ID:      tokenID,
		Name:    tokenID,
		Owner:   owner,
		SceneID: sceneID,
	})
	obj := resolv.NewObject(100, 100, 48, 48)
	obj.Data = token
	components.Object.SetValue(token, components.ObjectData{Object: obj})
	components.Sprite.SetValue(token, components.SpriteData{ScaleX: 1, ScaleY: 1})
	return token
}

func countOverlays(e *ecs.ECS) int {
	n := 0
	components.EmoteOverlay.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}

func firstOverlay(e *ecs.ECS) (*donburi.Entry, bool) {
	entry, ok := components.EmoteOverlay.First(e.World)
	return entry, ok
}

func toastLines(e *ecs.ECS) []components.ToastLine {
	return getOrCreateToastState(e).Lines
}
