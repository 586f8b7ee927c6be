package focusboard

import (
	"errors"
	"fmt"

	"github.com/focusboard/focusboard/pkg/layoutstore"
	"go.uber.org/zap"
)

// ErrNoActiveWindow is returned by RememberActiveWindow when no
// window has focus.
var ErrNoActiveWindow = errors.New("no active window")

// Recorder captures the focused window's current layout into the
// store. Every step must succeed before anything is written: a
// half-resolved pair is never stored.
type Recorder struct {
	querier WindowQuerier
	layouts LayoutSwitcher
	store   MappingStore
	log     *zap.SugaredLogger
}

func NewRecorder(querier WindowQuerier, layouts LayoutSwitcher, store MappingStore, log *zap.SugaredLogger) *Recorder {
	return &Recorder{
		querier: querier,
		layouts: layouts,
		store:   store,
		log:     log,
	}
}

// RememberActiveWindow resolves the focused window class and the
// active layout, then upserts the pair. Returns what was stored.
func (r *Recorder) RememberActiveWindow() (string, layoutstore.LayoutID, error) {
	class, err := r.querier.ActiveWindowClass()
	if err != nil {
		return "", 0, fmt.Errorf("resolve active window: %w", err)
	}
	if class == "" {
		return "", 0, ErrNoActiveWindow
	}

	layout, err := r.layouts.CurrentLayout()
	if err != nil {
		return "", 0, fmt.Errorf("read current layout: %w", err)
	}

	if err := r.store.Remember(class, layout); err != nil {
		return "", 0, fmt.Errorf("remember %q: %w", class, err)
	}

	r.log.Infof("remembered layout %d for %q", layout, class)
	return class, layout, nil
}
