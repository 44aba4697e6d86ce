package systems

import (
	"strings"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reused across frames.
var gamepadIDs []ebiten.GamepadID

var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

var gamepadLabels = map[components.InputMethod]map[ebiten.StandardGamepadButton]string{
	components.InputXbox: {
		ebiten.StandardGamepadButtonRightBottom: "A",
		ebiten.StandardGamepadButtonRightRight:  "B",
		ebiten.StandardGamepadButtonRightLeft:   "X",
		ebiten.StandardGamepadButtonRightTop:    "Y",
		ebiten.StandardGamepadButtonCenterRight: "Menu",
	},
	components.InputPlayStation: {
		ebiten.StandardGamepadButtonRightBottom: "Cross",
		ebiten.StandardGamepadButtonRightRight:  "Circle",
		ebiten.StandardGamepadButtonRightLeft:   "Square",
		ebiten.StandardGamepadButtonRightTop:    "Triangle",
		ebiten.StandardGamepadButtonCenterRight: "Options",
	},
}

// UpdateInput polls keyboard and gamepads into the Input singleton.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepad ebiten.GamepadID

	for id, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[id] = true
				keyboardUsed = true
			}
		}
		for _, gp := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
				continue
			}
			for _, btn := range binding.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
					input.Current[id] = true
					gamepadUsed = true
					activeGamepad = gp
				}
			}
		}
	}

	if dir, gp := leftStickDirection(gamepadIDs); dir != 0 {
		if dir < 0 {
			input.Current[cfg.ActionMoveLeft] = true
		} else {
			input.Current[cfg.ActionMoveRight] = true
		}
		gamepadUsed = true
		activeGamepad = gp
	}

	// A gamepad wins when both were used in the same frame.
	if gamepadUsed {
		input.LastInputMethod = controllerType(activeGamepad)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

func controllerType(gp ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gp]; ok {
		return method
	}
	method := controllerTypeFromName(ebiten.GamepadName(gp))
	controllerTypeCache[gp] = method
	return method
}

func controllerTypeFromName(name string) components.InputMethod {
	name = strings.ToLower(name)
	for _, s := range []string{"playstation", "dualshock", "dualsense", "ps4", "ps5"} {
		if strings.Contains(name, s) {
			return components.InputPlayStation
		}
	}
	return components.InputXbox
}

// leftStickDirection returns -1 or 1 when a left stick is pushed past the
// deadzone, and the gamepad it was read from.
func leftStickDirection(gamepads []ebiten.GamepadID) (int, ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gp := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		switch {
		case h < -deadzone:
			return -1, gp
		case h > deadzone:
			return 1, gp
		}
	}
	return 0, 0
}

// ControlsHint lists the labelled actions with the first binding for
// method, e.g. "X jump".
func ControlsHint(method components.InputMethod) string {
	var parts []string
	for _, id := range cfg.Input.HintOrder {
		binding, ok := cfg.Input.Bindings[id]
		if !ok || binding.Label == "" {
			continue
		}
		if device := bindingLabel(binding, method); device != "" {
			parts = append(parts, device+" "+binding.Label)
		}
	}
	return strings.Join(parts, "   ")
}

func bindingLabel(binding cfg.InputBinding, method components.InputMethod) string {
	if method == components.InputKeyboard {
		if len(binding.Keys) == 0 {
			return ""
		}
		return strings.TrimPrefix(binding.Keys[0].String(), "Arrow")
	}
	for _, btn := range binding.Buttons {
		if label, ok := gamepadLabels[method][btn]; ok {
			return label
		}
	}
	if len(binding.Buttons) > 0 {
		return "D-pad"
	}
	return ""
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the state of an action this frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}

// IsActionJustPressed reports whether id was pressed this frame.
func IsActionJustPressed(ecs *ecs.ECS, id cfg.ActionID) bool {
	return getOrCreateInput(ecs).Action(id).JustPressed
}
