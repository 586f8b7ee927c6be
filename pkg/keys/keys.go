// Package keys defines the key vocabulary shared by event sources and
// the hotkey matcher: tagged key identifiers, modifier roles and the
// pressed-key state a listener maintains from a raw event stream.
package keys

import "strings"

// Key identifies a physical key independent of the input backend that
// reported it.
type Key int

const (
	Unknown Key = iota

	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	Num0
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	Space
	Enter
	Tab
	Backspace
	Escape
	Insert
	Delete
	Home
	End
	PageUp
	PageDown
	Up
	Down
	Left
	Right

	ShiftLeft
	ShiftRight
	CtrlLeft
	CtrlRight
	AltLeft
	AltRight
	MetaLeft
	MetaRight
)

// Event is a single key state change reported by an event source.
// Autorepeat counts as a press.
type Event struct {
	Key   Key
	Press bool
}

// Modifier is a bitmask of modifier roles. Left and right variants of
// a modifier key map to the same role.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// RoleOf reports the modifier role of a key, if it has one.
func RoleOf(k Key) (Modifier, bool) {
	switch k {
	case ShiftLeft, ShiftRight:
		return ModShift, true
	case CtrlLeft, CtrlRight:
		return ModCtrl, true
	case AltLeft, AltRight:
		return ModAlt, true
	case MetaLeft, MetaRight:
		return ModMeta, true
	}
	return 0, false
}

// triggerKeys lists the names accepted for the trigger position of a
// hotkey spec. Modifier keys are deliberately absent: they are named
// through ParseModifier instead.
var triggerKeys = map[string]Key{
	"a": A, "b": B, "c": C, "d": D, "e": E, "f": F, "g": G,
	"h": H, "i": I, "j": J, "k": K, "l": L, "m": M, "n": N,
	"o": O, "p": P, "q": Q, "r": R, "s": S, "t": T, "u": U,
	"v": V, "w": W, "x": X, "y": Y, "z": Z,

	"0": Num0, "1": Num1, "2": Num2, "3": Num3, "4": Num4,
	"5": Num5, "6": Num6, "7": Num7, "8": Num8, "9": Num9,

	"f1": F1, "f2": F2, "f3": F3, "f4": F4, "f5": F5, "f6": F6,
	"f7": F7, "f8": F8, "f9": F9, "f10": F10, "f11": F11, "f12": F12,

	"space":     Space,
	"enter":     Enter,
	"tab":       Tab,
	"backspace": Backspace,
	"escape":    Escape,
	"insert":    Insert,
	"delete":    Delete,
	"home":      Home,
	"end":       End,
	"pageup":    PageUp,
	"pagedown":  PageDown,
	"up":        Up,
	"down":      Down,
	"left":      Left,
	"right":     Right,
}

var keyNames = map[Key]string{
	ShiftLeft:  "shift_left",
	ShiftRight: "shift_right",
	CtrlLeft:   "ctrl_left",
	CtrlRight:  "ctrl_right",
	AltLeft:    "alt_left",
	AltRight:   "alt_right",
	MetaLeft:   "meta_left",
	MetaRight:  "meta_right",
}

func init() {
	for name, k := range triggerKeys {
		keyNames[k] = name
	}
}

// ParseName resolves a trigger-key token from a hotkey spec. Matching
// is case-insensitive.
func ParseName(name string) (Key, bool) {
	k, ok := triggerKeys[strings.ToLower(name)]
	return k, ok
}

// ParseModifier resolves a modifier token from a hotkey spec. "super"
// and "win" are aliases for "meta".
func ParseModifier(name string) (Modifier, bool) {
	switch strings.ToLower(name) {
	case "shift":
		return ModShift, true
	case "ctrl":
		return ModCtrl, true
	case "alt":
		return ModAlt, true
	case "meta", "super", "win":
		return ModMeta, true
	}
	return 0, false
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

func (m Modifier) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModMeta != 0 {
		parts = append(parts, "meta")
	}
	return strings.Join(parts, "+")
}
