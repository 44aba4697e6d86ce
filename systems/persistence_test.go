package systems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	items   map[string][]byte
	saveErr error
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) { return m.items[key], nil }

func (m *memoryStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func useStore(t *testing.T, store progressStore) {
	t.Helper()
	prev := gdataManager
	gdataManager = store
	t.Cleanup(func() { gdataManager = prev })
}

func TestSaveProgress_NeverMovesBackwards(t *testing.T) {
	useStore(t, &memoryStore{items: map[string][]byte{}})
	assert.False(t, HasSaveGame())

	require.NoError(t, SaveProgress(2, "level-3"))
	require.NoError(t, SaveProgress(1, "level-2"))

	saved := LoadProgress()
	require.NotNil(t, saved)
	assert.Equal(t, SavedProgress{HighestLevel: 2, LevelName: "level-3"}, *saved)
	assert.True(t, HasSaveGame())
}

func TestSaveProgress_ReturnsStoreError(t *testing.T) {
	diskFull := errors.New("disk full")
	useStore(t, &memoryStore{items: map[string][]byte{}, saveErr: diskFull})

	err := SaveProgress(1, "level-2")
	assert.ErrorIs(t, err, diskFull)
	assert.Nil(t, LoadProgress())
}

func TestSaveProgress_WithoutPersistence(t *testing.T) {
	useStore(t, nil)
	assert.NoError(t, SaveProgress(1, "level-2"))
	assert.Nil(t, LoadProgress())
}
