// Package hotkey matches global key chords against configured specs
// and dispatches the bound actions.
//
// A spec is a whitespace-separated token list such as "ctrl shift q":
// any number of modifier tokens plus a trigger key. The chord fires
// while the held modifier roles equal the spec's modifier set exactly
// and the trigger key is down.
package hotkey

import (
	"strings"

	"github.com/focusboard/focusboard/pkg/keys"
)

// Binding is a parsed hotkey spec.
type Binding struct {
	raw        string
	mods       keys.Modifier
	trigger    keys.Key
	hasTrigger bool
}

// ParseBinding parses a spec. Modifier tokens accumulate; every other
// token replaces the trigger, so the last non-modifier token wins. A
// token that names no known key leaves the binding without a trigger.
func ParseBinding(spec string) Binding {
	b := Binding{raw: spec}
	for _, tok := range strings.Fields(spec) {
		if mod, ok := keys.ParseModifier(tok); ok {
			b.mods |= mod
			continue
		}
		b.trigger, b.hasTrigger = keys.ParseName(tok)
	}
	return b
}

// Valid reports whether the binding has a trigger key. A binding
// without one can never match.
func (b Binding) Valid() bool {
	return b.hasTrigger
}

// Matches reports whether the chord is currently satisfied. Extra held
// modifiers defeat the match; extra non-modifier keys do not.
func (b Binding) Matches(held keys.Set, mods keys.Modifier) bool {
	return b.hasTrigger && mods == b.mods && held.Held(b.trigger)
}

func (b Binding) String() string {
	return b.raw
}
