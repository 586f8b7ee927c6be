// Package focusboard wires focus tracking to keyboard layout
// switching: a reactor that applies remembered layouts when focus
// changes, and a recorder that captures new mappings on demand.
package focusboard

import (
	"time"

	"github.com/focusboard/focusboard/pkg/layoutstore"
)

// FocusListener yields one focus observation per call: the class of
// the window that has focus, normalized to lower case. An empty class
// means no window has focus. Implementations block until they have
// something to report and return an error only when the source is
// gone for good.
type FocusListener interface {
	NextWindowClass() (string, error)
}

// WindowQuerier resolves the focused window's class on demand, in the
// same normalized form. An empty class with a nil error means no
// window has focus.
type WindowQuerier interface {
	ActiveWindowClass() (string, error)
}

// LayoutSwitcher reads and sets the active keyboard layout slot.
type LayoutSwitcher interface {
	CurrentLayout() (layoutstore.LayoutID, error)
	SwitchToLayout(layout layoutstore.LayoutID) error
}

// MappingStore is the shared state both halves of the daemon work
// against. Implementations serialize access internally.
type MappingStore interface {
	LayoutFor(class string) (layoutstore.LayoutID, bool, error)
	Remember(class string, layout layoutstore.LayoutID) error
	Hotkey(action string) (string, bool)
	ReloadIfStale(maxAge time.Duration) error
}
