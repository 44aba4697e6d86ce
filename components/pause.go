package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()

// DebugData toggles the collider overlay.
type DebugData struct {
	ShowColliders bool
}

var Debug = donburi.NewComponentType[DebugData]()
