package archetypes

import (
	"github.com/automoto/tokenplay/components"
	cfg "github.com/automoto/tokenplay/config"
	"github.com/automoto/tokenplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Token = newArchetype(
		tags.Token,
		components.Token,
		components.Object,
		components.Sprite,
	)
	EmoteOverlay = newArchetype(
		tags.EmoteOverlay,
		components.EmoteOverlay,
		components.Object,
		components.Sprite,
	)
	SceneState = newArchetype(
		components.SceneState,
	)
	LocalPlayer = newArchetype(
		components.LocalPlayer,
	)
	ToastState = newArchetype(
		components.ToastState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
