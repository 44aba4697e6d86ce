package factory

import (
	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a star whose sprite frame's top-left is at x, y,
// travelling in dir.
func CreateProjectile(ecs *ecs.ECS, x, y float64, dir components.Facing) *donburi.Entry {
	star := archetypes.Projectile.Spawn(ecs)

	w, h := cfg.Projectile.CollisionWidth, cfg.Projectile.CollisionHeight
	offX := (float64(cfg.SheetCell) - w) / 2
	offY := (float64(cfg.SheetCell) - h) / 2

	obj := resolv.NewObject(x+offX, y+offY, w, h, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = star
	components.Object.SetValue(star, components.ObjectData{
		Object:  obj,
		OffsetX: offX,
		OffsetY: offY,
	})

	components.Projectile.SetValue(star, components.ProjectileData{
		Speed:     cfg.Projectile.Speed,
		Direction: dir,
	})
	components.Physics.SetValue(star, components.PhysicsData{
		SpeedX:       dir.Sign() * cfg.Projectile.Speed,
		IgnoreSolids: true,
	})
	components.Sprite.SetValue(star, components.SpriteData{
		FrameWidth:  cfg.SheetCell,
		FrameHeight: cfg.SheetCell,
		FlipX:       dir == components.FacingLeft,
		Opacity:     1,
	})
	components.Contacts.SetValue(star, components.ContactsData{
		Watch: []string{tags.ResolvPlatform},
	})
	components.Offscreen.SetValue(star, components.OffscreenData{
		Margin:  cfg.Projectile.OffscreenMargin,
		Entered: true,
	})
	components.Animation.Get(star).Play(cfg.AnimShootingStar)

	addToSpace(ecs, obj)

	return star
}
