package systems

import (
	"testing"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/automoto/puffball/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePlayer_MovesAndFaces(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)
	physics := components.Physics.Get(player)
	data := components.Player.Get(player)

	press(e, cfg.ActionMoveLeft)
	step(e, UpdatePlayer)
	assert.Equal(t, -cfg.Player.Speed, physics.SpeedX)
	assert.Equal(t, components.FacingLeft, data.Direction)
	assert.True(t, components.Sprite.Get(player).FlipX)

	press(e, cfg.ActionMoveRight)
	step(e, UpdatePlayer)
	assert.Equal(t, cfg.Player.Speed, physics.SpeedX)
	assert.Equal(t, components.FacingRight, data.Direction)
	assert.False(t, components.Sprite.Get(player).FlipX)

	press(e)
	step(e, UpdatePlayer)
	assert.Zero(t, physics.SpeedX)
	assert.Equal(t, components.FacingRight, data.Direction, "facing is kept when stopping")
}

func TestUpdatePlayer_JumpCountResetsOnGround(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)
	physics := components.Physics.Get(player)
	data := components.Player.Get(player)

	jumps := 0
	for i := 0; i < cfg.Player.MaxJumps+3; i++ {
		physics.SpeedY = 0
		press(e, cfg.ActionJump)
		step(e, UpdatePlayer)
		if physics.SpeedY == -cfg.Player.JumpSpeed {
			jumps++
		}
		press(e)
		step(e, UpdatePlayer)
	}
	assert.Equal(t, cfg.Player.MaxJumps, jumps)
	assert.Zero(t, data.JumpsLeft)

	// Landing refills the jumps.
	physics.OnGround = components.Object.Get(addPlatform(e, 0, 200, 100, 16)).Object
	press(e, cfg.ActionJump)
	step(e, UpdatePlayer)
	assert.Equal(t, -cfg.Player.JumpSpeed, physics.SpeedY)
	assert.Equal(t, cfg.Player.MaxJumps-1, data.JumpsLeft)
}

func TestUpdatePlayer_ReleasingInhaleHidesEffect(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)
	data := components.Player.Get(player)
	anim := components.Animation.Get(player)

	assert.Zero(t, effectOpacity(t, e, player), "effect starts hidden")

	press(e, cfg.ActionInhale)
	step(e, UpdatePlayer)
	assert.True(t, data.IsInhaling)
	assert.Equal(t, 1.0, effectOpacity(t, e, player))
	assert.Equal(t, cfg.AnimKirbInhaling, anim.Current)

	press(e, cfg.ActionInhale)
	step(e, UpdatePlayer)
	assert.True(t, data.IsInhaling)

	press(e)
	step(e, UpdatePlayer)
	assert.False(t, data.IsInhaling)
	assert.Zero(t, effectOpacity(t, e, player))
	assert.Equal(t, cfg.AnimKirbIdle, anim.Current)
}

func TestUpdatePlayer_SwallowThenShoot(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)
	flame := factory.CreateFlame(e, 120, 100)
	flameID := flame.Entity()
	data := components.Player.Get(player)
	anim := components.Animation.Get(player)

	step(e, UpdateContacts, UpdateEnemyContacts)
	require.True(t, components.Enemy.Get(flame).IsInhalable, "flame starts inside the inhale zone")

	for i := 0; i < 20 && e.World.Valid(flameID); i++ {
		press(e, cfg.ActionInhale)
		step(e,
			UpdatePlayer,
			UpdateEnemies,
			UpdateCollisions,
			UpdateObjects,
			UpdateInhaleAttachments,
			UpdateContacts,
			UpdatePlayerContacts,
			UpdateEnemyContacts,
		)
	}

	assert.False(t, e.World.Valid(flameID), "the flame is swallowed")
	assert.True(t, data.IsFull)
	assert.False(t, data.IsInhaling)
	assert.Zero(t, effectOpacity(t, e, player))
	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current, "swallowing does not hurt")

	// Still holding the key while full keeps the effect hidden.
	press(e, cfg.ActionInhale)
	step(e, UpdatePlayer)
	assert.Equal(t, cfg.AnimKirbFull, anim.Current)
	assert.Zero(t, effectOpacity(t, e, player))

	press(e)
	step(e, UpdatePlayer)
	assert.False(t, data.IsFull)
	assert.Zero(t, effectOpacity(t, e, player))
	assert.Equal(t, 1, count(e, tags.Projectile))
	assert.Equal(t, cfg.AnimKirbInhaling, anim.Current)

	star, ok := tags.Projectile.First(e.World)
	require.True(t, ok)
	assert.Equal(t, cfg.Projectile.Speed, components.Physics.Get(star).SpeedX)

	for i := 0; i < cfg.Player.IdleResumeFrames; i++ {
		press(e)
		step(e, UpdatePlayer)
	}
	assert.Equal(t, cfg.AnimKirbIdle, anim.Current)
	assert.Zero(t, data.IdleResumeFrames)
}

func TestUpdatePlayer_FallingOutRestarts(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)

	press(e)
	step(e, UpdatePlayer)
	assert.Equal(t, components.SignalNone, TakeSignal(e))

	components.Object.Get(player).SetPosition(100, cfg.Player.FallLimitY+1)
	step(e, UpdatePlayer)
	assert.Equal(t, components.SignalRestart, TakeSignal(e))
}

func TestUpdateInhaleAttachments_FollowsFacing(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, 100, 100)
	data := components.Player.Get(player)

	step(e, UpdateInhaleAttachments)
	assert.Equal(t, 100+cfg.Inhale.ZoneOffsetX, data.InhaleZone.X)
	assert.Equal(t, 100+cfg.Inhale.ZoneOffsetY, data.InhaleZone.Y)

	data.Direction = components.FacingLeft
	step(e, UpdateInhaleAttachments)
	assert.Equal(t, 100-cfg.Inhale.ZoneOffsetX, data.InhaleZone.X)

	effect := inhaleEffect(e, data)
	require.NotNil(t, effect)
	assert.Equal(t, 100-cfg.Inhale.EffectOffsetX, components.Object.Get(effect).X)
	assert.True(t, components.Sprite.Get(effect).FlipX)
}
