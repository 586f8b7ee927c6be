// Package memory holds the configuration in process memory only, for
// tests and throwaway runs.
package memory

import (
	"sync"
	"time"

	"github.com/focusboard/focusboard/pkg/layoutstore"
)

type Store struct {
	lock sync.Mutex
	cfg  layoutstore.Configuration
}

// NewStore returns a store seeded with the default configuration.
func NewStore() *Store {
	return &Store{cfg: layoutstore.Default()}
}

func (s *Store) LayoutFor(class string) (layoutstore.LayoutID, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	id, ok := s.cfg.WindowLayoutMap[class]
	return id, ok, nil
}

func (s *Store) Remember(class string, layout layoutstore.LayoutID) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.cfg.WindowLayoutMap[class] = layout
	return nil
}

func (s *Store) Hotkey(action string) (string, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	spec, ok := s.cfg.Hotkeys[action]
	return spec, ok
}

// SetHotkey overrides the spec for an action.
func (s *Store) SetHotkey(action, spec string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.cfg.Hotkeys[action] = spec
}

// ReloadIfStale is a no-op: memory is always current.
func (s *Store) ReloadIfStale(time.Duration) error {
	return nil
}
