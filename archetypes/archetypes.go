package archetypes

import (
	"slices"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.Sprite,
		components.Contacts,
	)
	InhaleEffect = newArchetype(
		tags.InhaleEffect,
		components.Object,
		components.Animation,
		components.Sprite,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Animation,
		components.Physics,
		components.State,
		components.Sprite,
		components.Contacts,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Animation,
		components.Physics,
		components.Sprite,
		components.Contacts,
		components.Offscreen,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	SceneRegistry = newArchetype(
		components.SceneRegistry,
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
		slices.Concat(a.components, cs)...,
	))
	return e
}
