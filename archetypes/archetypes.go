package archetypes

import (
	"github.com/charlie-adam/slitherio/components"
	cfg "github.com/charlie-adam/slitherio/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	NetPlayer = newArchetype(
		components.NetPlayer,
		components.Visual,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
	)
	Arena = newArchetype(
		components.Arena,
		components.FoodField,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
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
