package factory

import (
	"github.com/automoto/tokenplay/archetypes"
	"github.com/automoto/tokenplay/assets"
	"github.com/automoto/tokenplay/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateToken spawns a token entity from a table spawn. Missing art
// falls back to a generated placeholder so a table with no images on
// disk is still usable.
func CreateToken(ecs *ecs.ECS, sceneID string, spawn assets.TokenSpawn) *donburi.Entry {
	token := archetypes.Token.Spawn(ecs)

	components.Token.SetValue(token, components.TokenData{
		ID:      spawn.ID,
		Name:    spawn.Name,
		Owner:   spawn.Owner,
		SceneID: sceneID,
	})

	w, h := spawn.W, spawn.H
	if w <= 0 {
		w = 48
	}
	if h <= 0 {
		h = 48
	}
	obj := resolv.NewObject(spawn.X, spawn.Y, w, h)
	obj.Data = token
	components.Object.SetValue(token, components.ObjectData{Object: obj})

	img := assets.TokenPlaceholder(spawn.Name, int(w), int(h))
	if spawn.ImagePath != "" {
		if loaded, err := assets.LoadImage(spawn.ImagePath); err == nil {
			img = loaded
		}
	}
	components.Sprite.SetValue(token, components.SpriteData{
		Image:  img,
		ScaleX: 1,
		ScaleY: 1,
	})

	return token
}
