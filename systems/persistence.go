package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/logger"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const progressKey = "progress"

// SavedProgress is the progress record stored on disk.
type SavedProgress struct {
	// HighestLevel is the index of the furthest level reached.
	HighestLevel int    `json:"highestLevel"`
	LevelName    string `json:"levelName"`
}

// progressStore is the part of *gdata.Manager progress needs.
type progressStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var gdataManager progressStore

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.SaveApp,
	})
	if err != nil {
		logger.L().Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	return nil
}

// LoadProgress returns the saved progress, or nil when there is none.
func LoadProgress() *SavedProgress {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		logger.L().Warn("could not load progress", zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		logger.L().Warn("could not parse saved progress", zap.Error(err))
		return nil
	}
	return &progress
}

// SaveProgress records that the level at index was reached. Progress never
// moves backwards. Without persistence it does nothing.
func SaveProgress(index int, name string) error {
	if gdataManager == nil {
		return nil
	}
	if saved := LoadProgress(); saved != nil && saved.HighestLevel >= index {
		return nil
	}

	data, err := json.Marshal(SavedProgress{HighestLevel: index, LevelName: name})
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	saved := LoadProgress()
	return saved != nil && saved.HighestLevel > 0
}
