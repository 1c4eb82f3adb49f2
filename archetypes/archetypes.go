package archetypes

import (
	"github.com/automoto/xrmotion/components"
	cfg "github.com/automoto/xrmotion/config"
	"github.com/automoto/xrmotion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Viewer = newArchetype(
		tags.Viewer,
		components.Viewer,
		components.Transform,
	)
	Subject = newArchetype(
		tags.Subject,
		components.Name,
		components.Transform,
		components.Tint,
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
