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

// EnemyConfig returns the tuning for kind.
func EnemyConfig(kind components.EnemyKind) cfg.EnemyTypeConfig {
	switch kind {
	case components.EnemyWalker:
		return cfg.Enemy.Walker
	case components.EnemyFlyer:
		return cfg.Enemy.Flyer
	}
	return cfg.Enemy.Flame
}

func CreateEnemy(ecs *ecs.ECS, kind components.EnemyKind, x, y float64) *donburi.Entry {
	switch kind {
	case components.EnemyWalker:
		return CreateWalker(ecs, x, y)
	case components.EnemyFlyer:
		return CreateFlyer(ecs, x, y, cfg.Enemy.Flyer.Speed)
	}
	return CreateFlame(ecs, x, y)
}

// CreateFlame spawns an inhalable enemy that hops in place.
func CreateFlame(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := spawnEnemy(ecs, components.EnemyFlame, x, y, cfg.Enemy.Flame.Speed)
	components.Animation.Get(enemy).Play(cfg.AnimFlame)
	return enemy
}

// CreateWalker spawns an inhalable enemy that paces left and right.
func CreateWalker(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := spawnEnemy(ecs, components.EnemyWalker, x, y, cfg.Enemy.Walker.Speed)
	components.Animation.Get(enemy).Play(cfg.AnimGuyIdle)
	return enemy
}

// CreateFlyer spawns an inhalable enemy that flies left at speed, ignoring
// gravity and platforms, and is removed once it leaves the view.
func CreateFlyer(ecs *ecs.ECS, x, y, speed float64) *donburi.Entry {
	enemy := spawnEnemy(ecs, components.EnemyFlyer, x, y, speed, components.Offscreen)

	physics := components.Physics.Get(enemy)
	physics.Gravity = 0
	physics.IgnoreSolids = true
	physics.SpeedX = -speed

	components.Offscreen.SetValue(enemy, components.OffscreenData{
		Margin: cfg.Enemy.OffscreenMargin,
	})
	components.Animation.Get(enemy).Play(cfg.AnimBird)
	return enemy
}

func spawnEnemy(ecs *ecs.ECS, kind components.EnemyKind, x, y, speed float64, extra ...donburi.IComponentType) *donburi.Entry {
	ec := EnemyConfig(kind)
	enemy := archetypes.Enemy.Spawn(ecs, extra...)

	obj := resolv.NewObject(
		x+ec.CollisionOffsetX, y+ec.CollisionOffsetY,
		ec.CollisionWidth, ec.CollisionHeight,
		tags.ResolvEnemy,
	)
	obj.SetShape(resolv.NewRectangle(0, 0, ec.CollisionWidth, ec.CollisionHeight))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{
		Object:  obj,
		OffsetX: ec.CollisionOffsetX,
		OffsetY: ec.CollisionOffsetY,
	})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:       kind,
		Speed:      speed,
		JumpSpeed:  ec.JumpSpeed,
		IdleFrames: ec.IdleFrames,
		WalkFrames: ec.WalkFrames,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    ec.IdleFrames,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      ec.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		FrameWidth:  ec.FrameWidth,
		FrameHeight: ec.FrameHeight,
		Opacity:     1,
	})
	components.Contacts.SetValue(enemy, components.ContactsData{
		Watch: []string{tags.ResolvInhaleZone, tags.ResolvProjectile},
	})

	addToSpace(ecs, obj)

	return enemy
}
