package factory

import (
	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpawner adds a spawner that fires on its first update and then
// every interval frames.
func CreateSpawner(ecs *ecs.ECS, kind components.EnemyKind, x, y float64, interval int) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Kind:     kind,
		X:        x,
		Y:        y,
		Interval: interval,
	})
	return spawner
}
