package components

import (
	"github.com/automoto/puffball/config"
	"github.com/yohamta/donburi"
)

// StateData is a per-entity state machine. Timer counts down the frames
// left in timed states and lives and dies with the entity.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// Enter switches to state and arms the timer.
func (s *StateData) Enter(state config.StateID, frames int) {
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = frames
}

var State = donburi.NewComponentType[StateData]()
