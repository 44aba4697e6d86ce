package systems

import (
	"github.com/automoto/puffball/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOffscreen removes entities that left the camera view by more than
// their margin after having been within it.
func UpdateOffscreen(ecs *ecs.ECS) {
	view, ok := CameraView(ecs)
	if !ok {
		return
	}

	var removals []*donburi.Entry
	components.Offscreen.Each(ecs.World, func(e *donburi.Entry) {
		offscreen := components.Offscreen.Get(e)
		obj := components.Object.Get(e)

		m := offscreen.Margin
		inRange := obj.X+obj.W > view.MinX-m && obj.X < view.MaxX+m &&
			obj.Y+obj.H > view.MinY-m && obj.Y < view.MaxY+m

		if inRange {
			offscreen.Entered = true
			return
		}
		if offscreen.Entered {
			removals = append(removals, e)
		}
	})

	removeAll(ecs, removals)
}
