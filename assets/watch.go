package assets

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/automoto/puffball/shared/leveldata"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// LevelWatcher reports level documents changed on disk.
type LevelWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewLevelWatcher(dirs ...string) (*LevelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &LevelWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *LevelWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Changed drains pending events and returns the level names that changed,
// without blocking.
func (w *LevelWatcher) Changed() []string {
	var names []string
	for {
		select {
		case p, ok := <-w.Events:
			if !ok {
				return names
			}
			names = append(names, LevelName(p))
		default:
			return names
		}
	}
}

func (w *LevelWatcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := newDebouncer(watchDebounce)
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			pending.touch(event.Name, time.Now())
			timer.Reset(watchDebounce)
		case now := <-timer.C:
			for _, name := range pending.due(now) {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			if wait, ok := pending.next(time.Now()); ok {
				timer.Reset(wait)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// debouncer holds paths until they have been quiet for a full window, so a
// document is reported once its last write has landed.
type debouncer struct {
	quiet   time.Duration
	pending map[string]time.Time
}

func newDebouncer(quiet time.Duration) *debouncer {
	return &debouncer{quiet: quiet, pending: make(map[string]time.Time)}
}

// touch records an event for path at now, restarting its quiet window.
func (d *debouncer) touch(path string, now time.Time) {
	d.pending[path] = now
}

// due removes and returns the paths that have been quiet since now-quiet.
func (d *debouncer) due(now time.Time) []string {
	var paths []string
	for p, t := range d.pending {
		if now.Sub(t) >= d.quiet {
			paths = append(paths, p)
			delete(d.pending, p)
		}
	}
	slices.Sort(paths)
	return paths
}

// next returns how long until the earliest pending path is due.
func (d *debouncer) next(now time.Time) (time.Duration, bool) {
	if len(d.pending) == 0 {
		return 0, false
	}
	wait := d.quiet
	for _, t := range d.pending {
		wait = min(wait, d.quiet-now.Sub(t))
	}
	return max(wait, 0), true
}

// IsLevelFile reports whether path names a level document.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == leveldata.ExtJSON || ext == leveldata.ExtTMX
}

// LevelName returns the level name of a document path.
func LevelName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
