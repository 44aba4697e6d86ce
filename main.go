package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/puffball/assets"
	"github.com/automoto/puffball/config"
	"github.com/automoto/puffball/fonts"
	"github.com/automoto/puffball/logger"
	"github.com/automoto/puffball/scenes"
	"github.com/automoto/puffball/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(session *scenes.Session, level string) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu || level != "" {
		if level == "" {
			level = session.Levels.First()
		}
		g.scene = scenes.NewPlatformerScene(g, session, level)
	} else {
		g.scene = scenes.NewMenuScene(g, session)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	var (
		level      = flag.String("level", "", "start directly in the named level")
		levelsDir  = flag.String("levels", "", "read levels from this directory and reload them when edited")
		configPath = flag.String("config", "", "YAML file overriding gameplay tuning")
		debug      = flag.Bool("debug", false, "show collision boxes and log at debug level")
		skipMenu   = flag.Bool("skip-menu", false, "skip the title menu")
		logLevel   = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	lc := logger.Config{Level: *logLevel, Development: *debug}
	if *debug {
		lc.Level = "debug"
	}
	l, err := logger.New(lc)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	logger.Set(l)
	defer func() { _ = l.Sync() }()

	if *configPath != "" {
		if err := config.LoadOverridesFile(*configPath); err != nil {
			l.Fatal("config overrides", zap.String("path", *configPath), zap.Error(err))
		}
		l.Info("config overrides applied", zap.String("path", *configPath))
	}
	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowColliders = *debug

	session := &scenes.Session{}
	if *levelsDir != "" {
		registry, err := assets.NewDiskLevelRegistry(*levelsDir)
		if err != nil {
			l.Fatal("levels directory", zap.String("dir", *levelsDir), zap.Error(err))
		}
		session.Levels = registry

		watcher, err := assets.NewLevelWatcher(*levelsDir)
		if err != nil {
			l.Warn("level hot reload disabled", zap.Error(err))
		} else {
			session.Watcher = watcher
			defer func() { _ = watcher.Close() }()
		}
	} else {
		session.Levels = assets.MustLoadLevelRegistry()
	}
	if *level != "" && session.Levels.Index(*level) < 0 {
		l.Fatal("unknown level", zap.String("level", *level), zap.Strings("levels", session.Levels.Names()))
	}

	// Progress is optional; failures are logged inside
	_ = systems.InitPersistence()

	if err := assets.LoadShaders(); err != nil {
		l.Warn("shaders unavailable, hurt tint disabled", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(session, *level)); err != nil {
		l.Fatal("game", zap.Error(err))
	}
}
