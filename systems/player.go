package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies the control binding to every player.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, input, playerEntry)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	sprite := components.Sprite.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)
	playerObject := components.Object.Get(playerEntry)

	handleMovementInput(input, player, physics, sprite)
	handleJumpInput(ecs, input, player, physics)
	handleInhaleInput(ecs, input, playerEntry, player, animData)

	if player.IdleResumeFrames > 0 {
		player.IdleResumeFrames--
		if player.IdleResumeFrames == 0 && !player.IsInhaling && !player.IsFull {
			animData.Play(cfg.AnimKirbIdle)
		}
	}

	if _, y := playerObject.Position(); y > cfg.Player.FallLimitY {
		RaiseSignal(ecs, components.SignalRestart)
	}
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, sprite *components.SpriteData) {
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed

	switch {
	case left && !right:
		player.Direction = components.FacingLeft
		physics.SpeedX = -player.Speed
	case right && !left:
		player.Direction = components.FacingRight
		physics.SpeedX = player.Speed
	default:
		physics.SpeedX = 0
	}

	sprite.FlipX = player.Direction == components.FacingLeft
}

// handleJumpInput allows MaxJumps jumps before touching the ground again.
func handleJumpInput(e *ecs.ECS, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	if physics.OnGround != nil {
		player.JumpsLeft = player.MaxJumps
	}

	if !GetAction(input, cfg.ActionJump).JustPressed || player.JumpsLeft <= 0 {
		return
	}

	physics.SpeedY = -player.JumpSpeed
	physics.OnGround = nil
	player.JumpsLeft--
	PlaySFX(e, cfg.SoundJump)
}

// handleInhaleInput runs every held frame and once on release. Both paths
// set the effect's visibility explicitly.
func handleInhaleInput(e *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry, player *components.PlayerData, animData *components.AnimationData) {
	inhale := GetAction(input, cfg.ActionInhale)

	switch {
	case inhale.Pressed:
		if player.IsFull {
			animData.Play(cfg.AnimKirbFull)
			setInhaleEffectVisible(e, player, false)
			return
		}
		if inhale.JustPressed {
			PlaySFX(e, cfg.SoundInhale)
		}
		player.IsInhaling = true
		animData.Play(cfg.AnimKirbInhaling)
		setInhaleEffectVisible(e, player, true)

	case inhale.JustReleased:
		if player.IsFull {
			animData.Play(cfg.AnimKirbInhaling)
			shootStar(e, playerEntry, player)
			player.IsFull = false
			player.IdleResumeFrames = cfg.Player.IdleResumeFrames
			setInhaleEffectVisible(e, player, false)
			return
		}
		setInhaleEffectVisible(e, player, false)
		player.IsInhaling = false
		animData.Play(cfg.AnimKirbIdle)
	}
}

func setInhaleEffectVisible(e *ecs.ECS, player *components.PlayerData, visible bool) {
	effect := inhaleEffect(e, player)
	if effect == nil {
		return
	}
	sprite := components.Sprite.Get(effect)
	if visible {
		sprite.Opacity = 1
	} else {
		sprite.Opacity = 0
	}
}

func shootStar(e *ecs.ECS, playerEntry *donburi.Entry, player *components.PlayerData) {
	x, y := components.Object.Get(playerEntry).Position()
	factory.CreateProjectile(e,
		x+player.Direction.Sign()*cfg.Projectile.SpawnOffsetX,
		y+cfg.Projectile.SpawnOffsetY,
		player.Direction,
	)
	PlaySFX(e, cfg.SoundShoot)
}

// UpdateInhaleAttachments keeps the inhale zone and effect on the facing
// side of the player. Runs after movement is resolved.
func UpdateInhaleAttachments(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		x, y := components.Object.Get(playerEntry).Position()
		sign := player.Direction.Sign()

		if zone := player.InhaleZone; zone != nil {
			zone.X = x + sign*cfg.Inhale.ZoneOffsetX
			zone.Y = y + cfg.Inhale.ZoneOffsetY
			zone.Update()
		}

		if effect := inhaleEffect(ecs, player); effect != nil {
			obj := components.Object.Get(effect)
			obj.X = x + sign*cfg.Inhale.EffectOffsetX
			obj.Y = y + cfg.Inhale.EffectOffsetY
			components.Sprite.Get(effect).FlipX = player.Direction == components.FacingLeft
		}
	})
}
