package archetypes

import (
	"github.com/automoto/ironsight/components"
	cfg "github.com/automoto/ironsight/config"
	"github.com/automoto/ironsight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Input = newArchetype(
		components.Input,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Steering,
		components.Weapon,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
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
