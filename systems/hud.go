package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's health pips in the top-left corner and the
// level name in the top-right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if playerEntry := registeredPlayer(ecs); playerEntry != nil {
		hp := components.Health.Get(playerEntry)
		for i := 0; i < hp.Max; i++ {
			x := cfg.HUD.Margin + cfg.HUD.PipRadius + float32(i)*cfg.HUD.PipSpacing
			y := cfg.HUD.Margin + cfg.HUD.PipRadius
			clr := cfg.HUD.PipColor
			if i >= hp.Current {
				clr = cfg.HUD.PipEmpty
			}
			vector.DrawFilledCircle(screen, x, y, cfg.HUD.PipRadius, clr, true)
		}
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).CurrentLevel
	if lvl == nil {
		return
	}
	face := fonts.Regular.Get()
	bounds := text.BoundString(face, lvl.Name)
	x := screen.Bounds().Dx() - int(cfg.HUD.Margin) - bounds.Dx()
	text.Draw(screen, lvl.Name, face, x, cfg.HUD.LevelLabelY, cfg.HUD.TextColor)
}
