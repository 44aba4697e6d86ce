package systems

import (
	"testing"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/shared/leveldata"
	"github.com/automoto/puffball/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// newTestECS returns a world with a space large enough for the tests.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 2048, 1024, cfg.Physics.CellSize, cfg.Physics.CellSize)
	return e
}

// spawnPlayer creates a registered player with its frame's top-left at x, y.
func spawnPlayer(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	player := factory.CreatePlayer(e, x, y)
	factory.CreateSceneRegistry(e, player.Entity(), components.Player.Get(player).InhaleEffect)
	require.NotNil(t, registeredPlayer(e))
	return player
}

func addPlatform(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return factory.CreatePlatform(e, leveldata.Collider{X: x, Y: y, Width: w, Height: h, Kind: leveldata.ColliderPlatform})
}

// press makes actions the held set for the next frame, keeping the
// previous frame so JustPressed and JustReleased work.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func step(e *ecs.ECS, systems ...ecs.System) {
	for _, s := range systems {
		s(e)
	}
}

// gameplayFrame runs the scene's gameplay systems in scene order, minus
// input polling and audio playback.
func gameplayFrame(e *ecs.ECS) {
	step(e,
		UpdatePlayer,
		UpdateEnemies,
		UpdateStates,
		UpdatePhysics,
		UpdateCollisions,
		UpdateObjects,
		UpdateInhaleAttachments,
		UpdateContacts,
		UpdateEnemyContacts,
		UpdatePlayerContacts,
		UpdateProjectiles,
		UpdateEffects,
		UpdateSpawners,
		UpdateOffscreen,
		UpdateCamera,
	)
}

func count(e *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(e.World)
}

func effectOpacity(t *testing.T, e *ecs.ECS, player *donburi.Entry) float64 {
	t.Helper()
	effect := inhaleEffect(e, components.Player.Get(player))
	require.NotNil(t, effect)
	return components.Sprite.Get(effect).Opacity
}
