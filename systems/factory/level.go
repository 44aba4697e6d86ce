package factory

import (
	"math"

	"github.com/automoto/puffball/archetypes"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{CurrentLevel: lvl})
	return level
}

// CreateSceneRegistry records the handles systems look up by role.
func CreateSceneRegistry(ecs *ecs.ECS, player, effect donburi.Entity) *donburi.Entry {
	registry := archetypes.SceneRegistry.Spawn(ecs)
	components.SceneRegistry.SetValue(registry, components.SceneRegistryData{
		Player:       player,
		InhaleEffect: effect,
	})
	return registry
}

// enemySpawns maps spawn point kinds to the enemies placed there once.
var enemySpawns = map[string]components.EnemyKind{
	leveldata.SpawnFlame: components.EnemyFlame,
	leveldata.SpawnGuy:   components.EnemyWalker,
}

// PopulateLevel builds a playable scene from lvl: space, level, colliders,
// player, enemies, flyer spawners, camera and scene registry. The level
// must have a player spawn point.
func PopulateLevel(ecs *ecs.ECS, lvl *leveldata.Level) (*donburi.Entry, error) {
	start, err := lvl.FirstSpawn(leveldata.SpawnPlayer)
	if err != nil {
		return nil, err
	}

	// Leave room below the level so falling bodies stay in the space
	// until the fall limit.
	width := max(lvl.Width, cfg.C.Width)
	height := max(lvl.Height, int(math.Ceil(cfg.Player.FallLimitY))) + cfg.Physics.CellSize
	CreateSpace(ecs, width, height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	CreateLevel(ecs, lvl)

	for _, c := range lvl.Colliders {
		CreateCollider(ecs, c)
	}

	player := CreatePlayer(ecs, start.X, start.Y)
	playerData := components.Player.Get(player)
	CreateSceneRegistry(ecs, player.Entity(), playerData.InhaleEffect)

	for _, name := range []string{leveldata.SpawnFlame, leveldata.SpawnGuy} {
		pts, _ := lvl.Spawn(name)
		for _, p := range pts {
			CreateEnemy(ecs, enemySpawns[name], p.X, p.Y)
		}
	}

	birds, _ := lvl.Spawn(leveldata.SpawnBird)
	for _, p := range birds {
		CreateSpawner(ecs, components.EnemyFlyer, p.X, p.Y, cfg.Spawner.FlyerIntervalFrames)
	}

	CreateCamera(ecs, start.X, start.Y)

	return player, nil
}
