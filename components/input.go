package components

import (
	cfg "github.com/automoto/puffball/config"
	"github.com/yohamta/donburi"
)

// InputMethod is the kind of device that last produced input. Control hints
// are labelled for it.
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState is an action's state in the current frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds the pressed state of every action for this frame and
// the last, so edges can be derived without polling twice.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

// Action returns the state of id.
func (d *InputData) Action(id cfg.ActionID) ActionState {
	curr, prev := d.Current[id], d.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
