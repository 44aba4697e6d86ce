package systems

import (
	"image/color"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdatePause toggles the pause and collider overlays.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		PlaySFX(ecs, cfg.SoundMenuSelect)
	}

	if GetAction(input, cfg.ActionDebug).JustPressed {
		debug := GetOrCreateDebug(ecs)
		debug.ShowColliders = !debug.ShowColliders
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFace := fonts.Title.Get()
	drawCentered(screen, cfg.Pause.Title, titleFace, width, height/2, cfg.Pause.TextColor)

	hint := ControlsHint(getOrCreateInput(ecs).LastInputMethod)
	drawCentered(screen, hint, fonts.Small.Get(), width, height-24, cfg.Pause.TextColor)
}

// drawCentered draws s horizontally centred on a screen of the given width.
func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := (width - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	ent, ok := components.Pause.First(ecs.World)
	if !ok {
		ent = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(ent)
}

// GetOrCreateDebug returns the singleton Debug component, creating if needed.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	ent, ok := components.Debug.First(ecs.World)
	if !ok {
		ent = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(ent, components.DebugData{ShowColliders: cfg.Debug.ShowColliders})
	}
	return components.Debug.Get(ent)
}
