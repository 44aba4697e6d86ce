package components

import "github.com/yohamta/donburi"

// SpawnerData periodically creates enemies of Kind at X, Y.
type SpawnerData struct {
	Kind     EnemyKind
	X, Y     float64
	Interval int // frames
	Timer    int // frames until the next spawn
}

var Spawner = donburi.NewComponentType[SpawnerData]()
