package systems

import (
	"testing"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/automoto/puffball/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestUpdateEnemies_WalkerPaces(t *testing.T) {
	e := newTestECS(t)
	walker := factory.CreateWalker(e, 300, 100)
	state := components.State.Get(walker)
	physics := components.Physics.Get(walker)
	sprite := components.Sprite.Get(walker)
	anim := components.Animation.Get(walker)

	frames := func(n int) {
		for i := 0; i < n; i++ {
			step(e, UpdateEnemies, UpdateStates)
		}
	}

	frames(cfg.Enemy.Walker.IdleFrames - 1)
	assert.Equal(t, cfg.Idle, state.CurrentState)
	assert.Zero(t, physics.SpeedX)
	assert.Equal(t, cfg.AnimGuyIdle, anim.Current)

	frames(1)
	assert.Equal(t, cfg.WalkLeft, state.CurrentState)
	assert.False(t, sprite.FlipX)

	frames(1)
	assert.Equal(t, -cfg.Enemy.Walker.Speed, physics.SpeedX)
	assert.Equal(t, cfg.AnimGuyWalk, anim.Current)

	frames(cfg.Enemy.Walker.WalkFrames - 1)
	assert.Equal(t, cfg.WalkRight, state.CurrentState)
	assert.True(t, sprite.FlipX)

	frames(1)
	assert.Equal(t, cfg.Enemy.Walker.Speed, physics.SpeedX)

	frames(cfg.Enemy.Walker.WalkFrames - 1)
	assert.Equal(t, cfg.WalkLeft, state.CurrentState)
	assert.False(t, sprite.FlipX)
}

func TestUpdateEnemies_FlameHops(t *testing.T) {
	e := newTestECS(t)
	addPlatform(e, 0, 116, 600, 16)
	flame := factory.CreateFlame(e, 300, 100)
	state := components.State.Get(flame)
	physics := components.Physics.Get(flame)

	frame := func() {
		step(e, UpdateEnemies, UpdatePhysics, UpdateCollisions, UpdateObjects)
	}

	jumped := false
	for i := 0; i < cfg.Enemy.Flame.IdleFrames+5 && !jumped; i++ {
		frame()
		jumped = state.CurrentState == cfg.Jump
	}
	require.True(t, jumped, "flame jumps after idling")
	assert.Less(t, physics.SpeedY, 0.0)

	landed := false
	for i := 0; i < 200 && !landed; i++ {
		frame()
		landed = state.CurrentState == cfg.Idle
	}
	require.True(t, landed, "flame lands and idles again")
	assert.NotNil(t, physics.OnGround)
	assert.Equal(t, cfg.Enemy.Flame.IdleFrames, state.StateTimer)

	_, y := components.Object.Get(flame).Position()
	assert.InDelta(t, 100, y, 0.01, "lands back on the platform")
	assert.Zero(t, physics.SpeedX, "flames hop in place")
}

func TestUpdateSpawners_SpawnsFlyers(t *testing.T) {
	e := newTestECS(t)
	factory.CreateSpawner(e, components.EnemyFlyer, 400, 80, cfg.Spawner.FlyerIntervalFrames)

	step(e, UpdateSpawners)
	require.Equal(t, 1, count(e, tags.Enemy), "first spawn is immediate")

	for i := 0; i < cfg.Spawner.FlyerIntervalFrames-1; i++ {
		step(e, UpdateSpawners)
	}
	assert.Equal(t, 1, count(e, tags.Enemy))

	step(e, UpdateSpawners)
	assert.Equal(t, 2, count(e, tags.Enemy))

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		assert.Equal(t, components.EnemyFlyer, enemy.Kind)
		assert.Contains(t, cfg.Spawner.FlyerSpeeds, enemy.Speed)
		assert.True(t, components.Physics.Get(entry).IgnoreSolids)
	})
}

func TestUpdateOffscreen_RemovesFlyersThatLeaveTheView(t *testing.T) {
	e := newTestECS(t)
	factory.CreateCamera(e, 200, 100)
	view, ok := CameraView(e)
	require.True(t, ok)

	inView := factory.CreateFlyer(e, 200, 100, 1)
	farRight := factory.CreateFlyer(e, view.MaxX+cfg.Enemy.OffscreenMargin+50, 100, 1)
	inViewID, farRightID := inView.Entity(), farRight.Entity()

	step(e, UpdateOffscreen)
	assert.True(t, e.World.Valid(inViewID))
	assert.True(t, e.World.Valid(farRightID), "not removed before it was ever in range")

	obj := components.Object.Get(inView)
	obj.X = view.MinX - cfg.Enemy.OffscreenMargin - obj.W - 1
	step(e, UpdateOffscreen)
	assert.False(t, e.World.Valid(inViewID))
	assert.True(t, e.World.Valid(farRightID))
}

func TestUpdateEnemies_FlyerMovesLeft(t *testing.T) {
	e := newTestECS(t)
	bird := factory.CreateFlyer(e, 300, 80, 1.25)
	obj := components.Object.Get(bird)
	startX, startY := obj.X, obj.Y

	for i := 0; i < 10; i++ {
		step(e, UpdateEnemies, UpdatePhysics, UpdateCollisions)
	}
	assert.InDelta(t, startX-12.5, obj.X, 1e-9)
	assert.Equal(t, startY, obj.Y, "flyers ignore gravity")
}
