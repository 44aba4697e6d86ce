package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

type EnemyKind int

const (
	EnemyFlame EnemyKind = iota
	EnemyWalker
	EnemyFlyer
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyFlame:
		return "flame"
	case EnemyWalker:
		return "guy"
	case EnemyFlyer:
		return "bird"
	}
	return fmt.Sprintf("EnemyKind(%d)", int(k))
}

type EnemyData struct {
	Kind        EnemyKind
	IsInhalable bool
	Speed       float64
	JumpSpeed   float64
	IdleFrames  int
	WalkFrames  int
}

var Enemy = donburi.NewComponentType[EnemyData]()
