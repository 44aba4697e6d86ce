package systems

import (
	"math"

	"github.com/automoto/puffball/components"
	"github.com/automoto/puffball/config"
	"github.com/automoto/puffball/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ViewRect is the part of the level the camera shows, in level pixels.
type ViewRect struct {
	MinX, MinY, MaxX, MaxY float64
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry := registeredPlayer(e)
	if playerEntry == nil {
		return // no player (could be dead), skip camera update
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(physics.SpeedX) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := playerData.Direction.Sign() * config.Camera.LookAheadDistanceX
		camera.LookAheadX = gamemath.Approach(camera.LookAheadX, targetLookAhead, config.Camera.LookAheadSmoothing)
	}

	targetX := playerObject.X + playerObject.W/2 + camera.LookAheadX
	targetY := playerObject.Y + playerObject.H/2

	if levelEntry, ok := components.Level.First(e.World); ok {
		if lvl := components.Level.Get(levelEntry).CurrentLevel; lvl != nil {
			viewW, viewH := viewSize(camera)
			targetX = gamemath.ClampToSpan(targetX, viewW, float64(lvl.Width))
			targetY = gamemath.ClampToSpan(targetY, viewH, float64(lvl.Height))
		}
	}

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X = gamemath.Approach(camera.Position.X, targetX, config.Camera.FollowSmoothing)
	camera.Position.Y = gamemath.Approach(camera.Position.Y, targetY, config.Camera.FollowSmoothing)
}

func viewSize(camera *components.CameraData) (w, h float64) {
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return float64(config.C.Width) / zoom, float64(config.C.Height) / zoom
}

// CameraView returns the visible part of the level.
func CameraView(e *ecs.ECS) (ViewRect, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return ViewRect{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := viewSize(camera)
	return ViewRect{
		MinX: camera.Position.X - w/2,
		MinY: camera.Position.Y - h/2,
		MaxX: camera.Position.X + w/2,
		MaxY: camera.Position.Y + h/2,
	}, true
}

// applyCamera maps level pixels in op to screen pixels.
func applyCamera(camera *components.CameraData, op *ebiten.DrawImageOptions, screen *ebiten.Image) {
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	op.GeoM.Translate(-camera.Position.X, -camera.Position.Y)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())/2)
}

// worldToScreen maps a level position to screen pixels.
func worldToScreen(camera *components.CameraData, screen *ebiten.Image, x, y float64) (float32, float32) {
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	sx := (x-camera.Position.X)*zoom + float64(screen.Bounds().Dx())/2
	sy := (y-camera.Position.Y)*zoom + float64(screen.Bounds().Dy())/2
	return float32(sx), float32(sy)
}
