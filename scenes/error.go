package scenes

import (
	"sync"

	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/fonts"
	"github.com/automoto/puffball/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrorScene reports a level that could not be started.
type ErrorScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	err          error
	once         sync.Once
}

func NewErrorScene(sc SceneChanger, session *Session, err error) *ErrorScene {
	return &ErrorScene{sceneChanger: sc, session: session, err: err}
}

func (es *ErrorScene) Update() {
	es.once.Do(es.configure)
	es.ecs.Update()
}

func (es *ErrorScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.ErrorOverlayColor)

	x := 48
	text.Draw(screen, cfg.Menu.ErrorTitle, fonts.Bold.Get(), x, 96, cfg.Menu.ErrorTextColor)
	text.Draw(screen, es.err.Error(), fonts.Regular.Get(), x, 144, cfg.Menu.ErrorTextColor)
	text.Draw(screen, cfg.Menu.ErrorHint, fonts.Small.Get(), x, screen.Bounds().Dy()-48, cfg.Menu.ErrorTextColor)
}

func (es *ErrorScene) configure() {
	es.ecs = ecs.NewECS(donburi.NewWorld())
	es.ecs.AddSystem(systems.UpdateInput)
	es.ecs.AddSystem(newMenuSelectSystem(func() {
		es.sceneChanger.ChangeScene(NewMenuScene(es.sceneChanger, es.session))
	}))
}
