package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionInhale
	ActionPause
	ActionMenuSelect
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding maps an action to keys and standard gamepad buttons. Label
// names the action in control hints; unlabelled actions are not listed.
type InputBinding struct {
	Label   string
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// HintOrder lists the actions shown in control hints.
	HintOrder []ActionID
	// Deadzone for the left stick's horizontal axis (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func buttons(b ...ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton { return b }

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		HintOrder:      []ActionID{ActionMoveLeft, ActionMoveRight, ActionJump, ActionInhale, ActionPause},
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Label:   "left",
				Keys:    keys(ebiten.KeyLeft, ebiten.KeyA),
				Buttons: buttons(ebiten.StandardGamepadButtonLeftLeft),
			},
			ActionMoveRight: {
				Label:   "right",
				Keys:    keys(ebiten.KeyRight, ebiten.KeyD),
				Buttons: buttons(ebiten.StandardGamepadButtonLeftRight),
			},
			ActionJump: {
				Label:   "jump",
				Keys:    keys(ebiten.KeyX, ebiten.KeySpace),
				Buttons: buttons(ebiten.StandardGamepadButtonRightBottom),
			},
			// Hold to inhale, press again while full to shoot.
			ActionInhale: {
				Label:   "inhale",
				Keys:    keys(ebiten.KeyZ),
				Buttons: buttons(ebiten.StandardGamepadButtonRightLeft),
			},
			ActionPause: {
				Label:   "pause",
				Keys:    keys(ebiten.KeyEscape, ebiten.KeyP),
				Buttons: buttons(ebiten.StandardGamepadButtonCenterRight),
			},
			ActionMenuSelect: {
				Keys:    keys(ebiten.KeyEnter),
				Buttons: buttons(ebiten.StandardGamepadButtonRightBottom),
			},
			ActionDebug: {
				Keys: keys(ebiten.KeyF1),
			},
		},
	}
}
