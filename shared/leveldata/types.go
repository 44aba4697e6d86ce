// Package leveldata parses Tiled level documents into plain level data.
// It does not import ebitengine, donburi or resolv.
package leveldata

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Layer and object names the loader understands.
const (
	LayerColliders   = "colliders"
	LayerSpawnPoints = "spawnpoints"
	ExitName         = "exit"
)

// Spawn point kinds used by the game.
const (
	SpawnPlayer = "player"
	SpawnFlame  = "flame"
	SpawnGuy    = "guy"
	SpawnBird   = "bird"
)

// ColliderKind classifies a collider object.
type ColliderKind int

const (
	ColliderPlatform ColliderKind = iota
	ColliderExit
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderPlatform:
		return "platform"
	case ColliderExit:
		return "exit"
	}
	return fmt.Sprintf("ColliderKind(%d)", int(k))
}

// Collider is an axis-aligned rectangle from the colliders layer.
type Collider struct {
	X, Y          float64
	Width, Height float64
	Kind          ColliderKind
	Name          string
}

// Point is a spawn position in level pixels.
type Point struct {
	X, Y float64
}

// Level holds everything the game needs from a level document.
type Level struct {
	Name       string
	Width      int // pixels
	Height     int // pixels
	Background string
	Colliders  []Collider
	// SpawnPoints maps a spawn kind to its positions in document order.
	SpawnPoints map[string][]Point
}

// Spawn returns the spawn points registered for kind.
func (l *Level) Spawn(kind string) ([]Point, bool) {
	pts, ok := l.SpawnPoints[kind]
	return pts, ok && len(pts) > 0
}

// FirstSpawn returns the first spawn point of kind, or an error wrapping
// ErrMissingSpawn when the level has none.
func (l *Level) FirstSpawn(kind string) (Point, error) {
	pts, ok := l.Spawn(kind)
	if !ok {
		return Point{}, fmt.Errorf("level %q: %w: %s", l.Name, ErrMissingSpawn, kind)
	}
	return pts[0], nil
}

// Platforms returns the colliders that block movement.
func (l *Level) Platforms() []Collider {
	return l.collidersOf(ColliderPlatform)
}

// Exits returns the exit trigger colliders.
func (l *Level) Exits() []Collider {
	return l.collidersOf(ColliderExit)
}

func (l *Level) collidersOf(kind ColliderKind) []Collider {
	var out []Collider
	for _, c := range l.Colliders {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// BackgroundColor parses the Tiled "#rrggbb" or "#aarrggbb" background
// colour. ok is false when the level has none or it is malformed.
func (l *Level) BackgroundColor() (c color.RGBA, ok bool) {
	s := strings.TrimPrefix(l.Background, "#")
	switch len(s) {
	case 6:
		s = "ff" + s
	case 8:
	default:
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}
