package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates keeps each enemy's animation in step with its state.
// Playing the current animation again is a no-op, so this runs every frame.
func UpdateStates(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		state := components.State.Get(e)
		if anim := enemyAnimation(enemy.Kind, state.CurrentState); anim != cfg.AnimNone {
			components.Animation.Get(e).Play(anim)
		}
	})
}

func enemyAnimation(kind components.EnemyKind, state cfg.StateID) cfg.AnimID {
	switch kind {
	case components.EnemyFlame:
		return cfg.AnimFlame
	case components.EnemyFlyer:
		return cfg.AnimBird
	case components.EnemyWalker:
		if state == cfg.WalkLeft || state == cfg.WalkRight {
			return cfg.AnimGuyWalk
		}
		return cfg.AnimGuyIdle
	}
	return cfg.AnimNone
}
