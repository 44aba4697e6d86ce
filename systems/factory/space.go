package factory

import (
	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// addToSpace registers objects with the scene's space, if there is one.
func addToSpace(ecs *ecs.ECS, objects ...*resolv.Object) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(entry).Add(objects...)
}
