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

// CreatePlayer spawns the player with its sprite frame's top-left at x, y,
// together with the inhale zone trigger and the inhale effect entity.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(
		x+cfg.Player.CollisionOffsetX, y+cfg.Player.CollisionOffsetY,
		cfg.Player.CollisionWidth, cfg.Player.CollisionHeight,
		tags.ResolvPlayer,
	)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{
		Object:  obj,
		OffsetX: cfg.Player.CollisionOffsetX,
		OffsetY: cfg.Player.CollisionOffsetY,
	})

	// The zone reports contacts on behalf of the player.
	zone := resolv.NewObject(
		x+cfg.Inhale.ZoneOffsetX, y+cfg.Inhale.ZoneOffsetY,
		cfg.Inhale.ZoneWidth, cfg.Inhale.ZoneHeight,
		tags.ResolvInhaleZone,
	)
	zone.Data = player

	effect := createInhaleEffect(ecs, x+cfg.Inhale.EffectOffsetX, y+cfg.Inhale.EffectOffsetY)

	components.Player.SetValue(player, components.PlayerData{
		Speed:        cfg.Player.Speed,
		JumpSpeed:    cfg.Player.JumpSpeed,
		Direction:    components.FacingRight,
		JumpsLeft:    cfg.Player.MaxJumps,
		MaxJumps:     cfg.Player.MaxJumps,
		InhaleZone:   zone,
		InhaleEffect: effect.Entity(),
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		FrameWidth:  cfg.Player.FrameWidth,
		FrameHeight: cfg.Player.FrameHeight,
		Opacity:     1,
	})
	components.Contacts.SetValue(player, components.ContactsData{
		Watch: []string{tags.ResolvEnemy, tags.ResolvExit},
	})
	components.Animation.Get(player).Play(cfg.AnimKirbIdle)

	addToSpace(ecs, obj, zone)

	return player
}

// createInhaleEffect spawns the hidden inhale effect. Its object only
// carries a position and is never added to the space.
func createInhaleEffect(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	effect := archetypes.InhaleEffect.Spawn(ecs)

	obj := resolv.NewObject(x, y, float64(cfg.Player.FrameWidth), float64(cfg.Player.FrameHeight))
	obj.Data = effect
	components.Object.SetValue(effect, components.ObjectData{Object: obj})
	components.Sprite.SetValue(effect, components.SpriteData{
		FrameWidth:  cfg.Player.FrameWidth,
		FrameHeight: cfg.Player.FrameHeight,
		Opacity:     0,
	})
	components.Animation.Get(effect).Play(cfg.AnimKirbInhaleEffect)

	return effect
}
