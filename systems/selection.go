package systems

import (
	"github.com/automoto/tokenplay/components"
	"github.com/automoto/tokenplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TokenAt returns the token under a screen point in the active scene.
func TokenAt(ecs *ecs.ECS, x, y float64) (*donburi.Entry, bool) {
	sceneID := ActiveSceneID(ecs)
	var found *donburi.Entry
	components.Token.Each(ecs.World, func(e *donburi.Entry) {
		if components.Token.Get(e).SceneID != sceneID {
			return
		}
		obj := components.Object.Get(e)
		if x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H {
			found = e
		}
	})
	return found, found != nil
}

// SelectOnly clears the selection and selects a single token.
func SelectOnly(ecs *ecs.ECS, token *donburi.Entry) {
	ClearSelection(ecs)
	if !token.HasComponent(tags.Selected) {
		token.AddComponent(tags.Selected)
	}
}

// ToggleSelect flips a token's selected state (shift-click).
func ToggleSelect(token *donburi.Entry) {
	if token.HasComponent(tags.Selected) {
		token.RemoveComponent(tags.Selected)
	} else {
		token.AddComponent(tags.Selected)
	}
}

// ClearSelection deselects every token.
func ClearSelection(ecs *ecs.ECS) {
	var selected []*donburi.Entry
	tags.Selected.Each(ecs.World, func(e *donburi.Entry) {
		selected = append(selected, e)
	})
	for _, e := range selected {
		e.RemoveComponent(tags.Selected)
	}
}
