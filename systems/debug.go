package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object in the space while the
// collider overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).ShowColliders {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	space := getSpace(ecs)
	if space == nil {
		return
	}
	view, _ := CameraView(ecs)
	zoom := float32(camera.Zoom)
	if zoom <= 0 {
		zoom = 1
	}

	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < view.MinX || obj.X > view.MaxX || obj.Y+obj.H < view.MinY || obj.Y > view.MaxY {
			continue
		}

		// Triggers (exits, the inhale zone) are drawn apart from solid boxes.
		c := cfg.Debug.ColliderColor
		if obj.HasTags(tags.ResolvExit, tags.ResolvInhaleZone) {
			c = cfg.Debug.TriggerColor
		}

		x, y := worldToScreen(camera, screen, obj.X, obj.Y)
		vector.StrokeRect(screen, x, y, float32(obj.W)*zoom, float32(obj.H)*zoom, 1, c, false)
	}
}
