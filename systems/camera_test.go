package systems

import (
	"testing"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/shared/leveldata"
	"github.com/automoto/puffball/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestCameraView_ScalesWithZoom(t *testing.T) {
	e := newTestECS(t)
	_, ok := CameraView(e)
	assert.False(t, ok, "no camera yet")

	factory.CreateCamera(e, 400, 200)
	view, ok := CameraView(e)
	require.True(t, ok)

	w := float64(cfg.C.Width) / cfg.C.Scale
	h := float64(cfg.C.Height) / cfg.C.Scale
	assert.Equal(t, ViewRect{MinX: 400 - w/2, MinY: 200 - h/2, MaxX: 400 + w/2, MaxY: 200 + h/2}, view)
}

func TestUpdateCamera_StaysInsideLevel(t *testing.T) {
	e := newTestECS(t)
	factory.CreateLevel(e, &leveldata.Level{Name: "short", Width: 960, Height: 100})
	spawnPlayer(t, e, 10, 100)
	camera := components.Camera.Get(factory.CreateCamera(e, 10, 100))

	for i := 0; i < 200; i++ {
		step(e, UpdateCamera)
	}

	view, _ := CameraView(e)
	assert.InDelta(t, 0, view.MinX, 0.01, "clamped to the left edge")
	assert.InDelta(t, 50, camera.Position.Y, 0.01, "a level shorter than the view is centred")
}

func TestUpdateCamera_FollowsPlayer(t *testing.T) {
	e := newTestECS(t)
	factory.CreateLevel(e, &leveldata.Level{Name: "wide", Width: 2000, Height: 1000})
	player := spawnPlayer(t, e, 600, 400)
	camera := components.Camera.Get(factory.CreateCamera(e, 0, 0))

	for i := 0; i < 300; i++ {
		step(e, UpdateCamera)
	}

	obj := components.Object.Get(player)
	assert.InDelta(t, obj.X+obj.W/2, camera.Position.X, 0.5)
	assert.InDelta(t, obj.Y+obj.H/2, camera.Position.Y, 0.5)
}

func TestUpdatePause_FreezesGameplay(t *testing.T) {
	e := newTestECS(t)
	ticks := 0
	gameplay := WithGameplayChecks(func(*ecs.ECS) { ticks++ })

	press(e)
	step(e, UpdatePause, gameplay)
	assert.Equal(t, 1, ticks)

	press(e, cfg.ActionPause)
	step(e, UpdatePause, gameplay)
	assert.True(t, GetOrCreatePause(e).IsPaused)
	assert.Equal(t, 1, ticks)

	press(e)
	step(e, UpdatePause, gameplay)
	assert.Equal(t, 1, ticks, "stays paused after the key is released")

	press(e, cfg.ActionPause)
	step(e, UpdatePause, gameplay)
	assert.False(t, GetOrCreatePause(e).IsPaused)
	assert.Equal(t, 2, ticks)
}

func TestUpdatePause_TogglesColliderOverlay(t *testing.T) {
	e := newTestECS(t)
	assert.Equal(t, cfg.Debug.ShowColliders, GetOrCreateDebug(e).ShowColliders)

	press(e, cfg.ActionDebug)
	step(e, UpdatePause)
	assert.Equal(t, !cfg.Debug.ShowColliders, GetOrCreateDebug(e).ShowColliders)
}

func TestPlaySFX_QueuesUntilDrained(t *testing.T) {
	e := newTestECS(t)
	PlaySFX(e, cfg.SoundJump)
	PlaySFX(e, cfg.SoundShoot)

	entry, ok := components.Audio.First(e.World)
	require.True(t, ok)
	assert.Equal(t, []cfg.SoundID{cfg.SoundJump, cfg.SoundShoot}, components.Audio.Get(entry).PendingSFX)
}
