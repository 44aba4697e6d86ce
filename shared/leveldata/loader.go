package leveldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	ErrLevelNotFound = errors.New("level not found")
	ErrMissingSpawn  = errors.New("missing spawn point")
)

// Supported level document extensions, in lookup order.
const (
	ExtJSON = ".json"
	ExtTMX  = ".tmx"
)

// document mirrors the parts of a Tiled JSON export the game reads.
type document struct {
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	TileWidth       int     `json:"tilewidth"`
	TileHeight      int     `json:"tileheight"`
	BackgroundColor string  `json:"backgroundcolor"`
	Layers          []layer `json:"layers"`
}

type layer struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Objects []object `json:"objects"`
	Layers  []layer  `json:"layers"` // group layers
}

type object struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Load reads the level called name from fsys. name may carry an explicit
// .json or .tmx extension; otherwise name.json is tried before name.tmx.
func Load(fsys fs.FS, name string) (*Level, error) {
	stem := strings.TrimSuffix(strings.TrimSuffix(name, ExtJSON), ExtTMX)

	candidates := []string{stem + ExtJSON, stem + ExtTMX}
	switch path.Ext(name) {
	case ExtJSON:
		candidates = candidates[:1]
	case ExtTMX:
		candidates = candidates[1:]
	}

	for _, p := range candidates {
		if _, err := fs.Stat(fsys, p); err != nil {
			continue
		}

		var (
			lvl *Level
			err error
		)
		if path.Ext(p) == ExtTMX {
			lvl, err = loadTMX(fsys, p)
		} else {
			lvl, err = loadJSON(fsys, p)
		}
		if err != nil {
			return nil, err
		}
		lvl.Name = path.Base(stem)
		return lvl, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
}

func loadJSON(fsys fs.FS, p string) (*Level, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", p, err)
	}
	defer f.Close()

	lvl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", p, err)
	}
	return lvl, nil
}

// Parse decodes a Tiled JSON map document.
func Parse(r io.Reader) (*Level, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	return build(doc)
}

// loadTMX reads a Tiled XML map. Only top-level object groups are visited.
func loadTMX(fsys fs.FS, p string) (*Level, error) {
	m, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", p, err)
	}

	doc := document{
		Width:      m.Width,
		Height:     m.Height,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
	}
	for _, og := range m.ObjectGroups {
		l := layer{Name: og.Name, Type: "objectgroup"}
		for _, o := range og.Objects {
			l.Objects = append(l.Objects, object{
				Name:   o.Name,
				X:      o.X,
				Y:      o.Y,
				Width:  o.Width,
				Height: o.Height,
			})
		}
		doc.Layers = append(doc.Layers, l)
	}

	lvl, err := build(doc)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", p, err)
	}
	return lvl, nil
}

func build(doc document) (*Level, error) {
	lvl := &Level{
		Width:       doc.Width * doc.TileWidth,
		Height:      doc.Height * doc.TileHeight,
		Background:  doc.BackgroundColor,
		Colliders:   []Collider{},
		SpawnPoints: map[string][]Point{},
	}
	if err := visit(lvl, doc.Layers); err != nil {
		return nil, err
	}
	return lvl, nil
}

// visit walks layers in document order, descending into group layers.
func visit(lvl *Level, layers []layer) error {
	for _, l := range layers {
		switch l.Name {
		case LayerColliders:
			for i, o := range l.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return fmt.Errorf("layer %q object %d (%q): non-positive size %gx%g",
						l.Name, i, o.Name, o.Width, o.Height)
				}
				kind := ColliderPlatform
				if o.Name == ExitName {
					kind = ColliderExit
				}
				lvl.Colliders = append(lvl.Colliders, Collider{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Kind:   kind,
					Name:   o.Name,
				})
			}
		case LayerSpawnPoints:
			for i, o := range l.Objects {
				if o.Name == "" {
					return fmt.Errorf("layer %q object %d: spawn point without a name", l.Name, i)
				}
				lvl.SpawnPoints[o.Name] = append(lvl.SpawnPoints[o.Name], Point{X: o.X, Y: o.Y})
			}
		}

		if len(l.Layers) > 0 {
			if err := visit(lvl, l.Layers); err != nil {
				return err
			}
		}
	}
	return nil
}

// List returns the level names found in dir, sorted, one per stem even when
// both a .json and a .tmx document exist.
func List(fsys fs.FS, dir string) ([]string, error) {
	seen := map[string]bool{}
	var names []string
	for _, ext := range []string{ExtJSON, ExtTMX} {
		pattern := path.Join(dir, "*"+ext)
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, m := range matches {
			stem := strings.TrimSuffix(path.Base(m), ext)
			if !seen[stem] {
				seen[stem] = true
				names = append(names, stem)
			}
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no level documents in %s", ErrLevelNotFound, dir)
	}

	sort.Slice(names, func(i, j int) bool { return lessNatural(names[i], names[j]) })
	return names, nil
}

// lessNatural orders "level-2" before "level-10".
func lessNatural(a, b string) bool {
	pa, na := splitTrailingNumber(a)
	pb, nb := splitTrailingNumber(b)
	if pa != pb || na < 0 || nb < 0 {
		return a < b
	}
	return na < nb
}

func splitTrailingNumber(s string) (string, int) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, -1
	}
	n := 0
	for _, c := range s[i:] {
		n = n*10 + int(c-'0')
	}
	return s[:i], n
}
