package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"

	"github.com/automoto/puffball/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the directory of the embedded level documents.
const LevelsDir = "levels"

// LevelRegistry is the ordered set of levels a run plays through.
type LevelRegistry struct {
	fsys  fs.FS
	dir   string
	names []string
}

// NewLevelRegistry lists the levels in dir of fsys.
func NewLevelRegistry(fsys fs.FS, dir string) (*LevelRegistry, error) {
	r := &LevelRegistry{fsys: fsys, dir: dir}
	if err := r.Refresh(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustLoadLevelRegistry returns the registry of embedded levels.
func MustLoadLevelRegistry() *LevelRegistry {
	r, err := NewLevelRegistry(assetFS, LevelsDir)
	if err != nil {
		panic(fmt.Sprintf("embedded levels: %v", err))
	}
	return r
}

// NewDiskLevelRegistry reads levels from a directory on disk, so edits are
// picked up on reload.
func NewDiskLevelRegistry(dir string) (*LevelRegistry, error) {
	return NewLevelRegistry(os.DirFS(dir), ".")
}

// Refresh re-lists the level directory.
func (r *LevelRegistry) Refresh() error {
	names, err := leveldata.List(r.fsys, r.dir)
	if err != nil {
		return err
	}
	r.names = names
	return nil
}

func (r *LevelRegistry) Names() []string {
	return slices.Clone(r.names)
}

func (r *LevelRegistry) First() string {
	if len(r.names) == 0 {
		return ""
	}
	return r.names[0]
}

// Index returns the position of name, or -1.
func (r *LevelRegistry) Index(name string) int {
	return slices.Index(r.names, name)
}

// Next returns the level after name. ok is false after the last level.
func (r *LevelRegistry) Next(name string) (next string, ok bool) {
	i := r.Index(name)
	if i < 0 || i+1 >= len(r.names) {
		return "", false
	}
	return r.names[i+1], true
}

// At returns the level at index i, clamped to the known levels.
func (r *LevelRegistry) At(i int) string {
	if len(r.names) == 0 {
		return ""
	}
	return r.names[max(0, min(i, len(r.names)-1))]
}

// Load parses the named level.
func (r *LevelRegistry) Load(name string) (*leveldata.Level, error) {
	return leveldata.Load(r.fsys, path.Join(r.dir, name))
}
