package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		want Key
		ok   bool
	}{
		{"q", Q, true},
		{"Q", Q, true},
		{"z", Z, true},
		{"0", Num0, true},
		{"9", Num9, true},
		{"f1", F1, true},
		{"F12", F12, true},
		{"space", Space, true},
		{"enter", Enter, true},
		{"pagedown", PageDown, true},
		{"right", Right, true},
		// modifiers are not trigger keys
		{"shift", Unknown, false},
		{"ctrl", Unknown, false},
		// unknown tokens
		{"", Unknown, false},
		{"banana", Unknown, false},
		{"return", Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseName(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseModifier(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
		ok   bool
	}{
		{"shift", ModShift, true},
		{"ctrl", ModCtrl, true},
		{"alt", ModAlt, true},
		{"meta", ModMeta, true},
		{"super", ModMeta, true},
		{"win", ModMeta, true},
		{"CTRL", ModCtrl, true},
		{"q", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseModifier(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleOf(t *testing.T) {
	left, ok := RoleOf(ShiftLeft)
	require.True(t, ok)
	right, ok := RoleOf(ShiftRight)
	require.True(t, ok)
	assert.Equal(t, left, right)

	for k, want := range map[Key]Modifier{
		CtrlLeft:  ModCtrl,
		CtrlRight: ModCtrl,
		AltLeft:   ModAlt,
		AltRight:  ModAlt,
		MetaLeft:  ModMeta,
		MetaRight: ModMeta,
	} {
		got, ok := RoleOf(k)
		require.True(t, ok, "key %v", k)
		assert.Equal(t, want, got)
	}

	_, ok = RoleOf(Q)
	assert.False(t, ok)
	_, ok = RoleOf(Space)
	assert.False(t, ok)
}

func TestModifierString(t *testing.T) {
	assert.Equal(t, "none", Modifier(0).String())
	assert.Equal(t, "shift", ModShift.String())
	assert.Equal(t, "shift+ctrl", (ModShift | ModCtrl).String())
	assert.Equal(t, "shift+ctrl+alt+meta", (ModShift | ModCtrl | ModAlt | ModMeta).String())
}
