package emotes

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// ErrNotPermitted is returned when a non-GM tries to write the world
// emote list.
var ErrNotPermitted = errors.New("world emote list is GM-only")

const storeItem = "emotes"

// ItemStorage is the slice of gdata.Manager the store needs.
type ItemStorage interface {
	LoadItem(name string) ([]byte, error)
	SaveItem(name string, data []byte) error
}

// Store persists the world-level emote list. Reads fall back to the
// config defaults when nothing is stored or the payload is unreadable;
// writes are restricted to the GM.
type Store struct {
	storage ItemStorage
}

func NewStore(storage ItemStorage) *Store {
	return &Store{storage: storage}
}

// Load returns the stored world emote list, or the default registry
// when no usable list is stored.
func (s *Store) Load() *Registry {
	if s.storage == nil {
		return DefaultRegistry()
	}

	data, err := s.storage.LoadItem(storeItem)
	if err != nil {
		log.Printf("[emotes] could not read stored list: %v", err)
		return DefaultRegistry()
	}
	if len(data) == 0 {
		return DefaultRegistry()
	}

	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		log.Printf("[emotes] stored list unreadable, using defaults: %v", err)
		return DefaultRegistry()
	}
	if len(defs) == 0 {
		return DefaultRegistry()
	}

	return NewRegistry(defs)
}

// Save writes the world emote list. Only the GM may write it.
func (s *Store) Save(defs []Definition, gm bool) error {
	if !gm {
		return ErrNotPermitted
	}
	if s.storage == nil {
		return fmt.Errorf("emote store not initialized")
	}

	data, err := json.Marshal(defs)
	if err != nil {
		return fmt.Errorf("marshal emote list: %w", err)
	}
	if err := s.storage.SaveItem(storeItem, data); err != nil {
		return fmt.Errorf("save emote list: %w", err)
	}
	return nil
}
