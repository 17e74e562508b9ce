package emotes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage is an in-memory stand-in for the gdata manager.
type memStorage struct {
	items map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{items: map[string][]byte{}}
}

func (m *memStorage) LoadItem(name string) ([]byte, error) {
	data, ok := m.items[name]
	if !ok {
		return nil, errors.New("no such item")
	}
	return data, nil
}

func (m *memStorage) SaveItem(name string, data []byte) error {
	m.items[name] = data
	return nil
}

func TestLoadEmptyStorageFallsBackToDefaults(t *testing.T) {
	store := NewStore(newMemStorage())

	r := store.Load()
	require.NotNil(t, r)
	assert.Equal(t, DefaultRegistry().Len(), r.Len())
}

func TestLoadNilStorageFallsBackToDefaults(t *testing.T) {
	store := NewStore(nil)

	r := store.Load()
	require.NotNil(t, r)
	assert.Equal(t, DefaultRegistry().Len(), r.Len())
}

func TestLoadCorruptPayloadFallsBackToDefaults(t *testing.T) {
	storage := newMemStorage()
	storage.items[storeItem] = []byte("{not json")
	store := NewStore(storage)

	r := store.Load()
	require.NotNil(t, r)
	assert.Equal(t, DefaultRegistry().Len(), r.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(newMemStorage())

	defs := []Definition{
		{ID: "wave", Name: "Wave", ImagePath: "emotes/wave.png"},
		{ID: "rage", Name: "Rage", ImagePath: "emotes/rage.png", Duration: 3},
	}
	require.NoError(t, store.Save(defs, true))

	r := store.Load()
	assert.Equal(t, 2, r.Len())

	def, err := r.Lookup("rage")
	require.NoError(t, err)
	assert.Equal(t, float32(3), def.Duration)
}

func TestSaveRequiresGM(t *testing.T) {
	storage := newMemStorage()
	store := NewStore(storage)

	err := store.Save([]Definition{{ID: "wave"}}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotPermitted)
	assert.Empty(t, storage.items, "rejected save must not touch storage")
}
