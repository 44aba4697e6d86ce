package config

import "fmt"

// AnimID names an animation on the sprite sheet.
type AnimID int

const (
	AnimNone AnimID = iota
	AnimKirbIdle
	AnimKirbInhaling
	AnimKirbFull
	AnimKirbInhaleEffect
	AnimShootingStar
	AnimFlame
	AnimGuyIdle
	AnimGuyWalk
	AnimBird
)

var animNames = map[AnimID]string{
	AnimNone:             "none",
	AnimKirbIdle:         "kirbIdle",
	AnimKirbInhaling:     "kirbInhaling",
	AnimKirbFull:         "kirbFull",
	AnimKirbInhaleEffect: "kirbInhaleEffect",
	AnimShootingStar:     "shootingStar",
	AnimFlame:            "flame",
	AnimGuyIdle:          "guyIdle",
	AnimGuyWalk:          "guyWalk",
	AnimBird:             "bird",
}

func (a AnimID) String() string {
	if name, ok := animNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AnimID(%d)", int(a))
}

// AnimationDef indexes frames on the sprite sheet. Speed is ticks per frame.
type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// Sprite sheet layout: SheetColumns x SheetRows cells of SheetCell pixels.
const (
	SheetColumns = 9
	SheetRows    = 10
	SheetCell    = 16
)

var Animations = map[AnimID]AnimationDef{
	AnimKirbIdle:         {First: 0, Last: 0, Step: 1, Speed: 0},
	AnimKirbInhaling:     {First: 1, Last: 1, Step: 1, Speed: 0},
	AnimKirbFull:         {First: 2, Last: 2, Step: 1, Speed: 0},
	AnimKirbInhaleEffect: {First: 3, Last: 8, Step: 1, Speed: 4},
	AnimShootingStar:     {First: 9, Last: 9, Step: 1, Speed: 0},
	AnimGuyIdle:          {First: 18, Last: 18, Step: 1, Speed: 0},
	AnimGuyWalk:          {First: 18, Last: 19, Step: 1, Speed: 15},
	AnimBird:             {First: 27, Last: 28, Step: 1, Speed: 15},
	AnimFlame:            {First: 36, Last: 37, Step: 1, Speed: 15},
}
