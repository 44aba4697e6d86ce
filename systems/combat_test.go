package systems

import (
	"testing"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/shared/leveldata"
	"github.com/automoto/puffball/systems/factory"
	"github.com/automoto/puffball/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdatePlayerContacts_EnemyHurtsAndFlickers(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)
	walker := factory.CreateWalker(e, 100, 100)
	health := components.Health.Get(player)
	sprite := components.Sprite.Get(player)

	step(e, UpdateContacts, UpdatePlayerContacts)
	assert.Equal(t, cfg.Player.Health-1, health.Current)
	assert.True(t, player.HasComponent(components.Flicker))
	assert.True(t, e.World.Valid(walker.Entity()), "a hit does not remove the enemy")

	// Staying in contact is not a new hit.
	step(e, UpdateContacts, UpdatePlayerContacts)
	assert.Equal(t, cfg.Player.Health-1, health.Current)

	minOpacity := 1.0
	for i := 0; i < 30 && player.HasComponent(components.Flicker); i++ {
		step(e, UpdateEffects)
		minOpacity = min(minOpacity, sprite.Opacity)
	}
	assert.False(t, player.HasComponent(components.Flicker), "flicker finishes")
	assert.Less(t, minOpacity, 0.5)
	assert.Equal(t, 1.0, sprite.Opacity)
}

func TestUpdatePlayerContacts_HitAtZeroHealthRestarts(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)
	playerID := player.Entity()
	effectID := components.Player.Get(player).InhaleEffect
	components.Health.Get(player).Current = 0
	factory.CreateFlame(e, 100, 100)

	step(e, UpdateContacts, UpdatePlayerContacts)

	assert.Equal(t, components.SignalRestart, TakeSignal(e))
	assert.False(t, e.World.Valid(playerID))
	assert.False(t, e.World.Valid(effectID), "the inhale effect goes with the player")
	assert.Nil(t, registeredPlayer(e))
}

func TestUpdatePlayerContacts_ExitAdvances(t *testing.T) {
	e := newTestECS(t)
	spawnPlayer(t, e, 100, 100)
	factory.CreateCollider(e, leveldata.Collider{X: 100, Y: 96, Width: 16, Height: 32, Kind: leveldata.ColliderExit, Name: leveldata.ExitName})

	step(e, UpdateContacts, UpdatePlayerContacts)
	assert.Equal(t, components.SignalNextLevel, TakeSignal(e))
	assert.Equal(t, components.SignalNone, TakeSignal(e), "taking a signal clears it")
}

func TestUpdateEnemyContacts_InhaleZoneTogglesInhalable(t *testing.T) {
	e := newTestECS(t)
	spawnPlayer(t, e, 100, 100)
	walker := factory.CreateWalker(e, 122, 100)
	enemy := components.Enemy.Get(walker)

	step(e, UpdateContacts, UpdateEnemyContacts)
	assert.True(t, enemy.IsInhalable)

	obj := components.Object.Get(walker)
	obj.X += 200
	obj.Update()
	step(e, UpdateContacts, UpdateEnemyContacts)
	assert.False(t, enemy.IsInhalable)
}

func TestUpdateEnemyContacts_StarRemovesEnemyAndStar(t *testing.T) {
	e := newTestECS(t)
	walker := factory.CreateWalker(e, 300, 100)
	star := factory.CreateProjectile(e, 300, 100, components.FacingRight)
	walkerID, starID := walker.Entity(), star.Entity()

	step(e, UpdateContacts, UpdateEnemyContacts)

	assert.False(t, e.World.Valid(walkerID))
	assert.False(t, e.World.Valid(starID))
	assert.Empty(t, getSpace(e).Objects())
}

func TestUpdateProjectiles_PlatformRemovesStar(t *testing.T) {
	e := newTestECS(t)
	addPlatform(e, 320, 80, 16, 64)
	star := factory.CreateProjectile(e, 300, 100, components.FacingRight)
	starID := star.Entity()

	for i := 0; i < 20 && e.World.Valid(starID); i++ {
		step(e, UpdatePhysics, UpdateCollisions, UpdateObjects, UpdateContacts, UpdateProjectiles)
	}
	assert.False(t, e.World.Valid(starID), "stars pass through nothing solid")
	assert.Equal(t, 1, count(e, tags.Platform), "the platform stays")
}

func TestUpdateEnemies_PullTowardPlayer(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)
	flame := factory.CreateFlame(e, 80, 100)
	physics := components.Physics.Get(flame)
	enemy := components.Enemy.Get(flame)
	data := components.Player.Get(player)
	data.Direction = components.FacingLeft

	enemy.IsInhalable = true
	step(e, UpdateEnemies)
	assert.Zero(t, physics.SpeedX, "no pull while the player is not inhaling")

	data.IsInhaling = true
	step(e, UpdateEnemies)
	assert.Equal(t, cfg.Inhale.PullSpeed, physics.SpeedX, "pulled right, toward a player facing left")

	enemy.IsInhalable = false
	step(e, UpdateEnemies)
	assert.Zero(t, physics.SpeedX, "no pull outside the zone")
}

func TestRemoveEntity_MidTimer(t *testing.T) {
	e := newTestECS(t)
	walker := factory.CreateWalker(e, 300, 100)
	components.State.Get(walker).StateTimer = 1

	removeEntity(e, walker)
	require.NotPanics(t, func() { step(e, UpdateEnemies, UpdateStates) })
	assert.Zero(t, count(e, tags.Enemy))
	assert.Empty(t, getSpace(e).Objects())
}

func TestRaiseSignal_RestartOutranksNextLevel(t *testing.T) {
	e := newTestECS(t)

	RaiseSignal(e, components.SignalRestart)
	RaiseSignal(e, components.SignalNextLevel)
	assert.Equal(t, components.SignalRestart, TakeSignal(e))

	RaiseSignal(e, components.SignalNextLevel)
	assert.Equal(t, components.SignalNextLevel, TakeSignal(e))
}

func TestUpdateProjectiles_FliesAtLaunchSpeed(t *testing.T) {
	e := newTestECS(t)
	star := factory.CreateProjectile(e, 300, 100, components.FacingLeft)
	physics := components.Physics.Get(star)
	physics.SpeedX = 0

	step(e, UpdateProjectiles)
	assert.Equal(t, -cfg.Projectile.Speed, physics.SpeedX)

	x0 := components.Object.Get(star).X
	step(e, UpdatePhysics, UpdateCollisions)
	assert.InDelta(t, x0-cfg.Projectile.Speed, components.Object.Get(star).X, 1e-9)
}

// touchAgain moves an enemy away from the player and back so the next
// contact pass sees a new contact.
func touchAgain(e *ecs.ECS, enemy *donburi.Entry) {
	obj := components.Object.Get(enemy)
	obj.X += 200
	obj.Update()
	step(e, UpdateContacts, UpdatePlayerContacts)
	obj.X -= 200
	obj.Update()
	step(e, UpdateContacts, UpdatePlayerContacts)
}

func TestUpdatePlayerContacts_FourthHitRestarts(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)
	playerID := player.Entity()
	walker := factory.CreateWalker(e, 100, 100)
	health := components.Health.Get(player)
	require.Equal(t, 3, health.Current)

	step(e, UpdateContacts, UpdatePlayerContacts)
	assert.Equal(t, 2, health.Current)
	touchAgain(e, walker)
	assert.Equal(t, 1, health.Current)
	touchAgain(e, walker)
	assert.Equal(t, 0, health.Current)
	assert.True(t, e.World.Valid(playerID), "the player survives at zero health")
	assert.Equal(t, components.SignalNone, TakeSignal(e))

	touchAgain(e, walker)
	assert.False(t, e.World.Valid(playerID))
	assert.Equal(t, components.SignalRestart, TakeSignal(e))
}

func TestUpdatePlayerContacts_SwallowsOneEnemyAtATime(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)
	data := components.Player.Get(player)
	data.IsInhaling = true
	for _, w := range []*donburi.Entry{factory.CreateWalker(e, 100, 100), factory.CreateWalker(e, 102, 100)} {
		components.Enemy.Get(w).IsInhalable = true
	}

	step(e, UpdateContacts, UpdatePlayerContacts)

	assert.Equal(t, 1, count(e, tags.Enemy), "only one enemy is swallowed")
	assert.True(t, data.IsFull)
	assert.False(t, data.IsInhaling)
	assert.Equal(t, cfg.Player.Health-1, components.Health.Get(player).Current, "the other one hurts")
}

func TestGameplayFrame_ZoneAndBodyInOneFrameSwallows(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)
	// Overlaps the player's body and the inhale zone in front of it.
	factory.CreateWalker(e, 108, 100)

	press(e, cfg.ActionInhale)
	gameplayFrame(e)

	data := components.Player.Get(player)
	assert.Zero(t, count(e, tags.Enemy))
	assert.True(t, data.IsFull)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)
}
