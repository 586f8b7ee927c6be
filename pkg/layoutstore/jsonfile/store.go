// Package jsonfile persists the configuration as one human-editable
// JSON document, the daemon's default backend.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/focusboard/focusboard/pkg/layoutstore"
	"go.uber.org/zap"
)

// ErrMalformed marks a config file that exists but cannot be decoded.
// Absence is not malformed: a missing file gets defaults, a broken one
// must never be overwritten.
var ErrMalformed = errors.New("malformed config")

// Store holds the configuration in memory and writes every change
// back to disk. All access serializes through one mutex.
type Store struct {
	path string
	log  *zap.SugaredLogger

	lock      sync.Mutex
	cfg       layoutstore.Configuration
	lastCheck time.Time
}

// Open reads the configuration at path, creating the file with
// defaults when it does not exist yet. A file that exists but cannot
// be parsed is an error: silently replacing it with defaults would
// throw away the user's mappings.
func Open(path string, log *zap.SugaredLogger) (*Store, error) {
	s := &Store{
		path:      path,
		log:       log,
		lastCheck: time.Now(),
	}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		s.cfg = layoutstore.Default()
		if err := s.saveLocked(); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
		log.Infof("created default config at %s", path)
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		cfg, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		s.cfg = cfg
	}

	return s, nil
}

func decode(raw []byte) (layoutstore.Configuration, error) {
	var cfg layoutstore.Configuration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return layoutstore.Configuration{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	cfg.EnsureMaps()
	return cfg, nil
}

// LayoutFor returns the remembered layout for a window class.
func (s *Store) LayoutFor(class string) (layoutstore.LayoutID, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	id, ok := s.cfg.WindowLayoutMap[class]
	return id, ok, nil
}

// Remember upserts a mapping and writes the file back immediately. On
// a write failure the in-memory mapping is kept, so the next
// successful save carries it to disk anyway.
func (s *Store) Remember(class string, layout layoutstore.LayoutID) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.cfg.WindowLayoutMap[class] = layout
	if err := s.saveLocked(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	return nil
}

// Hotkey returns the spec configured for an action.
func (s *Store) Hotkey(action string) (string, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	spec, ok := s.cfg.Hotkeys[action]
	return spec, ok
}

// ReloadIfStale re-reads the file once maxAge has passed since the
// last check and swaps the configuration in only when the content
// differs. The check time advances on failed reads too, so a broken
// file is not re-parsed on every call.
func (s *Store) ReloadIfStale(maxAge time.Duration) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if time.Since(s.lastCheck) <= maxAge {
		return nil
	}
	s.lastCheck = time.Now()

	return s.reloadLocked()
}

// Reload unconditionally re-reads the file, swapping on difference.
func (s *Store) Reload() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.lastCheck = time.Now()

	return s.reloadLocked()
}

func (s *Store) reloadLocked() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	cfg, err := decode(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}

	if s.cfg.Equal(cfg) {
		return nil
	}

	s.cfg = cfg
	s.log.Infof("config reloaded from %s", s.path)

	return nil
}

// saveLocked writes the configuration to a temp file next to the
// target and renames it into place, so a concurrent reader never
// observes a half-written document. Callers hold the lock.
func (s *Store) saveLocked() error {
	raw, err := json.MarshalIndent(s.cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	raw = append(raw, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".config-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}

	return nil
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}
