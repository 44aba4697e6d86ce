package scenes

import (
	"image/color"
	"slices"
	"sync"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/logger"
	"github.com/automoto/puffball/systems"
	"github.com/automoto/puffball/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	levelName    string
	once         sync.Once
}

// NewPlatformerScene creates a scene playing the named level.
func NewPlatformerScene(sc SceneChanger, session *Session, levelName string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, session: session, levelName: levelName}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.ecs == nil {
		return // level failed to load, the error scene has taken over
	}
	ps.ecs.Update()

	if ps.handleSignal() {
		return
	}

	if changed := ps.session.changedLevels(); slices.Contains(changed, ps.levelName) {
		logger.L().Info("level changed on disk, reloading", zap.String("level", ps.levelName))
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.session, ps.levelName))
	}
}

// handleSignal performs the transition the frame's systems asked for.
func (ps *PlatformerScene) handleSignal() bool {
	switch systems.TakeSignal(ps.ecs) {
	case components.SignalRestart:
		logger.L().Info("restarting level", zap.String("level", ps.levelName))
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.session, ps.levelName))
		return true
	case components.SignalNextLevel:
		next, ok := ps.session.Levels.Next(ps.levelName)
		if !ok {
			logger.L().Info("last level complete", zap.String("level", ps.levelName))
			ps.sceneChanger.ChangeScene(NewLevelCompleteScene(ps.sceneChanger, ps.session))
			return true
		}
		if err := systems.SaveProgress(ps.session.Levels.Index(next), next); err != nil {
			logger.L().Warn("could not save progress", zap.String("level", next), zap.Error(err))
		} else {
			logger.L().Info("progress saved", zap.String("level", next))
		}
		logger.L().Info("next level", zap.String("from", ps.levelName), zap.String("to", next))
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.session, next))
		return true
	}
	return false
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	lvl, err := ps.session.Levels.Load(ps.levelName)
	if err != nil {
		ps.fail(err)
		return
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateStates))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateInhaleAttachments))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateContacts))
	// Zone toggles first, so an enemy that reaches the zone and the body
	// in one frame is swallowed.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemyContacts))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerContacts))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawners))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateOffscreen))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawPause)

	if _, err := factory.PopulateLevel(ecs, lvl); err != nil {
		ps.fail(err)
		return
	}

	logger.L().Info("level loaded",
		zap.String("level", lvl.Name),
		zap.Int("colliders", len(lvl.Colliders)),
		zap.Int("width", lvl.Width),
		zap.Int("height", lvl.Height),
	)
	ps.ecs = ecs
}

func (ps *PlatformerScene) fail(err error) {
	logger.L().Error("could not start level", zap.String("level", ps.levelName), zap.Error(err))
	ps.sceneChanger.ChangeScene(NewErrorScene(ps.sceneChanger, ps.session, err))
}
