// Package sqlite persists the configuration in a SQLite database, for
// setups where other tooling wants to read or edit the mappings with
// regular SQL.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/focusboard/focusboard/pkg/layoutstore"
	"github.com/focusboard/focusboard/pkg/layoutstore/sqlite/migrations"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type Store struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// Open opens or creates the database at filename, applies pending
// migrations and seeds the stock hotkey binding when the action has
// no row yet.
func Open(filename string, log *zap.SugaredLogger) (*Store, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrations.Migrate(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.seedDefaults(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}

	return s, nil
}

func (s *Store) seedDefaults() error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO hotkeys (action, spec) VALUES (?, ?)`,
		layoutstore.ActionAddWindow, layoutstore.DefaultAddWindowSpec,
	)
	if err != nil {
		return fmt.Errorf("sqlite insert: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) LayoutFor(class string) (layoutstore.LayoutID, bool, error) {
	var layout int64
	err := s.db.QueryRow(
		`SELECT layout FROM window_layouts WHERE class = ?`, class,
	).Scan(&layout)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("sqlite select: %w", err)
	}

	// the column stores any integer; reject rows LayoutID cannot hold
	if layout < 0 || layout > 255 {
		return 0, false, fmt.Errorf("layout %d for %q out of range", layout, class)
	}

	return layoutstore.LayoutID(layout), true, nil
}

func (s *Store) Remember(class string, layout layoutstore.LayoutID) error {
	_, err := s.db.Exec(
		`INSERT INTO window_layouts (class, layout) VALUES (?, ?)
		 ON CONFLICT (class) DO UPDATE SET layout = excluded.layout`,
		class, int64(layout),
	)
	if err != nil {
		return fmt.Errorf("sqlite upsert: %w", err)
	}

	return nil
}

func (s *Store) Hotkey(action string) (string, bool) {
	var spec string
	err := s.db.QueryRow(
		`SELECT spec FROM hotkeys WHERE action = ?`, action,
	).Scan(&spec)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false
	case err != nil:
		s.log.Errorf("sqlite select hotkey: %v", err)
		return "", false
	}

	return spec, true
}

// ReloadIfStale is a no-op: queries always see the current rows.
func (s *Store) ReloadIfStale(time.Duration) error {
	return nil
}
