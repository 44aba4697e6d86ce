package scenes

import (
	"github.com/automoto/puffball/assets"
	"github.com/automoto/puffball/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
	Quit()
}

// Session is the state shared by every scene of a run.
type Session struct {
	Levels *assets.LevelRegistry
	// Watcher reports edited level documents; nil for embedded levels.
	Watcher *assets.LevelWatcher
}

// changedLevels drains the watcher and returns the names of levels edited
// since the last call.
func (s *Session) changedLevels() []string {
	if s.Watcher == nil {
		return nil
	}
	select {
	case err, ok := <-s.Watcher.Errors:
		if ok {
			logger.L().Warn("level watcher", zap.Error(err))
		}
	default:
	}

	names := s.Watcher.Changed()
	if len(names) == 0 {
		return nil
	}
	if err := s.Levels.Refresh(); err != nil {
		logger.L().Warn("refresh levels", zap.Error(err))
	}
	return names
}
