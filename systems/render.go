package systems

import (
	"github.com/automoto/puffball/assets"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// Sprites are drawn back to front: enemies, stars, the player, then the
// inhale effect over the player's mouth.
var spriteLayers = []donburi.IComponentType{
	tags.Enemy,
	tags.Projectile,
	tags.Player,
	tags.InhaleEffect,
}

// DrawSprites renders every animated entity at its current frame.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	// Get camera
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	// Culling bounds
	view, _ := CameraView(ecs)
	padding := 16.0

	for _, tag := range spriteLayers {
		query := donburi.NewQuery(filter.Contains(tag, components.Sprite, components.Animation, components.Object))
		query.Each(ecs.World, func(e *donburi.Entry) {
			sprite := components.Sprite.Get(e)
			if sprite.Opacity <= 0 {
				return
			}

			o := components.Object.Get(e)
			x, y := o.Position()

			// Viewport Culling
			if x+float64(sprite.FrameWidth) < view.MinX-padding || x > view.MaxX+padding ||
				y+float64(sprite.FrameHeight) < view.MinY-padding || y > view.MaxY+padding {
				return
			}

			frame := components.Animation.Get(e).Frame()
			img := assets.SheetFrame(frame)
			if img == nil {
				return
			}

			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			if sprite.FlipX {
				drawOp.GeoM.Scale(-1, 1)
				drawOp.GeoM.Translate(float64(sprite.FrameWidth), 0)
			}
			drawOp.GeoM.Translate(x, y)
			applyCamera(camera, drawOp, screen)
			if sprite.Opacity < 1 {
				drawOp.ColorScale.ScaleAlpha(float32(sprite.Opacity))
			}
			if e.HasComponent(components.Flicker) && assets.TintShader != nil {
				drawTinted(screen, img, drawOp)
				return
			}
			screen.DrawImage(img, drawOp)
		})
	}
}

func drawTinted(screen, img *ebiten.Image, op *ebiten.DrawImageOptions) {
	tint := cfg.HUD.HurtTint
	shaderOp.GeoM = op.GeoM
	shaderOp.ColorScale = op.ColorScale
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{
		"Tint": []float32{
			float32(tint.R) / 255, float32(tint.G) / 255, float32(tint.B) / 255, float32(tint.A) / 255,
		},
	}
	b := img.Bounds()
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.TintShader, shaderOp)
}
