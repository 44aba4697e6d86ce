package components

import "github.com/yohamta/donburi"

// SignalKind asks the scene for a transition after the frame's systems ran.
// Higher values win when several are raised in one frame.
type SignalKind int

const (
	SignalNone SignalKind = iota
	SignalNextLevel
	SignalRestart
)

func (s SignalKind) String() string {
	switch s {
	case SignalNextLevel:
		return "next-level"
	case SignalRestart:
		return "restart"
	}
	return "none"
}

type SignalData struct {
	Kind SignalKind
}

var Signal = donburi.NewComponentType[SignalData]()

// SceneRegistryData holds the handles other entities look up by role.
type SceneRegistryData struct {
	Player       donburi.Entity
	InhaleEffect donburi.Entity
}

var SceneRegistry = donburi.NewComponentType[SceneRegistryData]()
