package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies steps every enemy's behaviour and applies the inhale pull.
func UpdateEnemies(ecs *ecs.ECS) {
	pull := inhalePull(ecs)

	tags.Enemy.Each(ecs.World, func(enemyEntry *donburi.Entry) {
		enemy := components.Enemy.Get(enemyEntry)
		state := components.State.Get(enemyEntry)
		physics := components.Physics.Get(enemyEntry)

		switch enemy.Kind {
		case components.EnemyFlame:
			updateFlame(enemy, state, physics)
		case components.EnemyWalker:
			updateWalker(enemy, state, physics, components.Sprite.Get(enemyEntry))
		case components.EnemyFlyer:
			physics.SpeedX = -enemy.Speed
		}

		if enemy.IsInhalable {
			physics.SpeedX += pull
		}
	})
}

// inhalePull is the horizontal speed added to inhalable enemies: toward
// the player's facing side while the player inhales, otherwise 0.
func inhalePull(e *ecs.ECS) float64 {
	playerEntry := registeredPlayer(e)
	if playerEntry == nil {
		return 0
	}
	player := components.Player.Get(playerEntry)
	if !player.IsInhaling {
		return 0
	}
	return -player.Direction.Sign() * cfg.Inhale.PullSpeed
}

// updateFlame hops in place: idle, then jump, then idle again on landing.
func updateFlame(enemy *components.EnemyData, state *components.StateData, physics *components.PhysicsData) {
	physics.SpeedX = 0

	switch state.CurrentState {
	case cfg.Idle:
		state.StateTimer--
		if state.StateTimer <= 0 {
			state.Enter(cfg.Jump, 0)
			physics.SpeedY = -enemy.JumpSpeed
			physics.OnGround = nil
		}
	case cfg.Jump:
		if physics.OnGround != nil {
			state.Enter(cfg.Idle, enemy.IdleFrames)
		}
	default:
		state.Enter(cfg.Idle, enemy.IdleFrames)
	}
}

// updateWalker idles once, then paces left and right forever.
func updateWalker(enemy *components.EnemyData, state *components.StateData, physics *components.PhysicsData, sprite *components.SpriteData) {
	switch state.CurrentState {
	case cfg.Idle:
		physics.SpeedX = 0
		state.StateTimer--
		if state.StateTimer <= 0 {
			state.Enter(cfg.WalkLeft, enemy.WalkFrames)
			sprite.FlipX = false
		}
	case cfg.WalkLeft:
		physics.SpeedX = -enemy.Speed
		state.StateTimer--
		if state.StateTimer <= 0 {
			state.Enter(cfg.WalkRight, enemy.WalkFrames)
			sprite.FlipX = true
		}
	case cfg.WalkRight:
		physics.SpeedX = enemy.Speed
		state.StateTimer--
		if state.StateTimer <= 0 {
			state.Enter(cfg.WalkLeft, enemy.WalkFrames)
			sprite.FlipX = false
		}
	default:
		state.Enter(cfg.Idle, enemy.IdleFrames)
	}
}
