package systems

import (
	"github.com/automoto/puffball/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the space cells of every object that moved.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
