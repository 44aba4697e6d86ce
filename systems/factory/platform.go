package factory

import (
	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	"github.com/automoto/puffball/shared/leveldata"
	"github.com/automoto/puffball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a static collider that blocks movement.
func CreatePlatform(ecs *ecs.ECS, c leveldata.Collider) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(c.X, c.Y, c.Width, c.Height, tags.ResolvSolid, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, c.Width, c.Height))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}

// CreateExit adds a trigger that only reports contacts.
func CreateExit(ecs *ecs.ECS, c leveldata.Collider) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)

	obj := resolv.NewObject(c.X, c.Y, c.Width, c.Height, tags.ResolvExit)
	obj.SetShape(resolv.NewRectangle(0, 0, c.Width, c.Height))
	obj.Data = exit
	components.Object.SetValue(exit, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return exit
}

// CreateCollider dispatches on the collider's kind.
func CreateCollider(ecs *ecs.ECS, c leveldata.Collider) *donburi.Entry {
	if c.Kind == leveldata.ColliderExit {
		return CreateExit(ecs, c)
	}
	return CreatePlatform(ecs, c)
}
