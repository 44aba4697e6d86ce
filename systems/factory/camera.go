package factory

import (
	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera centres the camera on x, y.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.Vec2{X: x, Y: y},
		Zoom:     cfg.C.Scale,
	})
	return camera
}
