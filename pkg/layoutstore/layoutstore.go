// Package layoutstore defines the persisted daemon state: the mapping
// from window classes to keyboard layout slots, and the hotkey specs.
// Backends live in the subpackages jsonfile, sqlite and memory.
package layoutstore

import "strings"

// LayoutID is a zero-based slot in the layout list configured in the
// keyboard server, as reported and accepted by the switch adapter.
type LayoutID uint8

const (
	// ActionAddWindow names the hotkey action that remembers the
	// focused window's current layout.
	ActionAddWindow = "add_window"

	// DefaultAddWindowSpec is the binding ActionAddWindow gets in a
	// freshly created configuration.
	DefaultAddWindowSpec = "ctrl shift q"
)

// Configuration is the full persisted state.
type Configuration struct {
	WindowLayoutMap map[string]LayoutID `json:"window_layout_map"`
	Hotkeys         map[string]string   `json:"hotkeys"`
}

// Default returns a configuration with no window mappings and the
// stock hotkey binding.
func Default() Configuration {
	return Configuration{
		WindowLayoutMap: map[string]LayoutID{},
		Hotkeys: map[string]string{
			ActionAddWindow: DefaultAddWindowSpec,
		},
	}
}

// EnsureMaps allocates any nil map so that lookups and inserts are
// safe on configurations decoded from sparse JSON.
func (c *Configuration) EnsureMaps() {
	if c.WindowLayoutMap == nil {
		c.WindowLayoutMap = map[string]LayoutID{}
	}
	if c.Hotkeys == nil {
		c.Hotkeys = map[string]string{}
	}
}

// Equal reports whether two configurations hold the same mappings and
// hotkey specs.
func (c Configuration) Equal(other Configuration) bool {
	if len(c.WindowLayoutMap) != len(other.WindowLayoutMap) {
		return false
	}
	if len(c.Hotkeys) != len(other.Hotkeys) {
		return false
	}
	for class, layout := range c.WindowLayoutMap {
		got, ok := other.WindowLayoutMap[class]
		if !ok || got != layout {
			return false
		}
	}
	for action, spec := range c.Hotkeys {
		got, ok := other.Hotkeys[action]
		if !ok || got != spec {
			return false
		}
	}
	return true
}

// NormalizeClass canonicalizes a window class for use as a mapping
// key. Focus sources apply it before handing a class to anyone else.
func NormalizeClass(class string) string {
	return strings.ToLower(strings.TrimSpace(class))
}
