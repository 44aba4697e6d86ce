package systems

import (
	"image/color"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	bg := levelBackground(levelData.CurrentLevel)
	screen.Fill(bg)

	// Get camera
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	if levelData.Background == nil {
		levelData.Background = renderLevel(levelData.CurrentLevel, bg)
	}

	opts := &ebiten.DrawImageOptions{}
	applyCamera(camera, opts, screen)
	screen.DrawImage(levelData.Background, opts)
}

func levelBackground(lvl *leveldata.Level) color.RGBA {
	if bg, ok := lvl.BackgroundColor(); ok {
		return bg
	}
	return cfg.Level.Background
}

// renderLevel paints the level's colliders once into an image the size of
// the level.
func renderLevel(lvl *leveldata.Level, bg color.RGBA) *ebiten.Image {
	w, h := max(lvl.Width, 1), max(lvl.Height, 1)
	img := ebiten.NewImage(w, h)
	img.Fill(bg)

	for _, c := range lvl.Platforms() {
		vector.FillRect(img, float32(c.X), float32(c.Y), float32(c.Width), float32(c.Height), cfg.Level.PlatformColor, false)
		vector.StrokeRect(img, float32(c.X), float32(c.Y), float32(c.Width), float32(c.Height), 1, cfg.Level.PlatformEdge, false)
	}

	// Exits are drawn as an open door frame.
	for _, c := range lvl.Exits() {
		vector.StrokeRect(img, float32(c.X)+1, float32(c.Y)+1, float32(c.Width)-2, float32(c.Height)-1, 2, cfg.Level.PlatformEdge, false)
	}
	return img
}
