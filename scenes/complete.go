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

// LevelCompleteScene is shown after the last level.
type LevelCompleteScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	menu         *ui.MenuUI
	once         sync.Once
}

func NewLevelCompleteScene(sc SceneChanger, session *Session) *LevelCompleteScene {
	return &LevelCompleteScene{sceneChanger: sc, session: session}
}

func (ls *LevelCompleteScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
	ls.menu.Update()
}

func (ls *LevelCompleteScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelCompleteScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	ls.menu = ui.NewMenuUI(cfg.Menu.CompleteTitle, cfg.Menu.CompleteMessage, []ui.MenuItem{
		{Label: "Title", OnClick: func() {
			ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger, ls.session))
		}},
		{Label: "Quit", OnClick: ls.sceneChanger.Quit},
	})

	ls.ecs.AddSystem(systems.UpdateAudio)
	ls.ecs.AddSystem(systems.UpdateInput)
	ls.ecs.AddSystem(newMenuSelectSystem(ls.menu.ActivateFirst))
	ls.ecs.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		ls.menu.Draw(screen)
	})
}
