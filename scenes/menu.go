package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems"
	"github.com/automoto/puffball/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	menu         *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, session *Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menu.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	levels := ms.session.Levels
	saved := systems.LoadProgress()
	ms.menu = ui.NewMenuUI(cfg.Menu.Title, cfg.Menu.Subtitle, []ui.MenuItem{
		{Label: "Play", OnClick: func() { ms.start(levels.First()) }},
		{Label: "Continue", Disabled: !systems.HasSaveGame(), OnClick: func() {
			if saved != nil {
				ms.start(levels.At(saved.HighestLevel))
			}
		}},
		{Label: "Quit", OnClick: ms.sceneChanger.Quit},
	})

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(newMenuSelectSystem(ms.menu.ActivateFirst))

	ms.ecs.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		ms.menu.Draw(screen)
	})
}

func (ms *MenuScene) start(level string) {
	systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
	ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.session, level))
}

// newMenuSelectSystem runs activate when the select action is pressed. The
// first frame is skipped so a key held over a scene change is not taken as
// a new press.
func newMenuSelectSystem(activate func()) ecs.System {
	armed := false
	return func(e *ecs.ECS) {
		if !armed {
			armed = true
			return
		}
		if systems.IsActionJustPressed(e, cfg.ActionMenuSelect) {
			activate()
		}
	}
}
