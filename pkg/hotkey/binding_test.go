package hotkey

import (
	"testing"

	"github.com/focusboard/focusboard/pkg/keys"
	"github.com/stretchr/testify/assert"
)

func TestParseBinding(t *testing.T) {
	tests := []struct {
		spec    string
		mods    keys.Modifier
		trigger keys.Key
		valid   bool
	}{
		{"ctrl shift q", keys.ModCtrl | keys.ModShift, keys.Q, true},
		{"q", 0, keys.Q, true},
		{"CTRL SHIFT Q", keys.ModCtrl | keys.ModShift, keys.Q, true},
		{"super f5", keys.ModMeta, keys.F5, true},
		{"win f5", keys.ModMeta, keys.F5, true},
		{"ctrl  shift\tq", keys.ModCtrl | keys.ModShift, keys.Q, true},
		// the last non-modifier token wins
		{"ctrl a b", keys.ModCtrl, keys.B, true},
		// an unknown trailing token clears the trigger
		{"ctrl q banana", keys.ModCtrl, 0, false},
		// modifiers only, no trigger
		{"ctrl shift", keys.ModCtrl | keys.ModShift, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			b := ParseBinding(tt.spec)
			assert.Equal(t, tt.valid, b.Valid())
			assert.Equal(t, tt.mods, b.mods)
			if tt.valid {
				assert.Equal(t, tt.trigger, b.trigger)
			}
			assert.Equal(t, tt.spec, b.String())
		})
	}
}

func TestBindingMatches(t *testing.T) {
	b := ParseBinding("ctrl shift q")

	held := keys.NewSet()
	held.Update(keys.CtrlLeft, true)
	held.Update(keys.ShiftLeft, true)
	held.Update(keys.Q, true)

	assert.True(t, b.Matches(held, keys.ModCtrl|keys.ModShift))

	// missing one required modifier
	assert.False(t, b.Matches(held, keys.ModCtrl))

	// an extra modifier defeats the match
	assert.False(t, b.Matches(held, keys.ModCtrl|keys.ModShift|keys.ModAlt))

	// extra plain keys held do not
	held.Update(keys.X, true)
	assert.True(t, b.Matches(held, keys.ModCtrl|keys.ModShift))

	// trigger released
	held.Update(keys.Q, false)
	assert.False(t, b.Matches(held, keys.ModCtrl|keys.ModShift))
}

func TestBindingWithoutTriggerNeverMatches(t *testing.T) {
	held := keys.NewSet()
	held.Update(keys.CtrlLeft, true)
	held.Update(keys.ShiftLeft, true)
	held.Update(keys.Q, true)

	for _, spec := range []string{"ctrl shift", "ctrl shift banana", ""} {
		b := ParseBinding(spec)
		assert.False(t, b.Valid(), "spec %q", spec)
		assert.False(t, b.Matches(held, keys.ModCtrl|keys.ModShift), "spec %q", spec)
	}
}
