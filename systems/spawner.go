package systems

import (
	"math/rand/v2"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type spawnRequest struct {
	kind  components.EnemyKind
	x, y  float64
	speed float64
}

// UpdateSpawners counts down every spawner and spawns its enemy when the
// timer runs out. Flyers get a random speed from the configured set.
func UpdateSpawners(ecs *ecs.ECS) {
	var requests []spawnRequest

	components.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		spawner := components.Spawner.Get(e)
		spawner.Timer--
		if spawner.Timer > 0 {
			return
		}
		spawner.Timer = spawner.Interval
		requests = append(requests, spawnRequest{
			kind:  spawner.Kind,
			x:     spawner.X,
			y:     spawner.Y,
			speed: pickFlyerSpeed(),
		})
	})

	for _, r := range requests {
		if r.kind == components.EnemyFlyer {
			factory.CreateFlyer(ecs, r.x, r.y, r.speed)
			continue
		}
		factory.CreateEnemy(ecs, r.kind, r.x, r.y)
	}
}

func pickFlyerSpeed() float64 {
	speeds := cfg.Spawner.FlyerSpeeds
	if len(speeds) == 0 {
		return cfg.Enemy.Flyer.Speed
	}
	return speeds[rand.IntN(len(speeds))]
}
