package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Facing is the horizontal direction a character looks in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign is +1 facing right and -1 facing left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

type PlayerData struct {
	Speed     float64
	JumpSpeed float64
	Direction Facing

	IsInhaling bool
	IsFull     bool

	JumpsLeft int
	MaxJumps  int

	// Frames left before the post-shot pose returns to idle; 0 when inactive.
	IdleResumeFrames int

	InhaleZone   *resolv.Object
	InhaleEffect donburi.Entity
}

var Player = donburi.NewComponentType[PlayerData]()
