package components

import (
	"github.com/automoto/puffball/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	// Background is the level's drawable composite, built on first draw.
	Background *ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
