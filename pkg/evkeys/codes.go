package evkeys

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/focusboard/focusboard/pkg/keys"
)

// codeMap translates evdev key codes into the daemon's key
// vocabulary. Codes outside the map are dropped by the source.
var codeMap = map[evdev.EvCode]keys.Key{
	evdev.KEY_A: keys.A,
	evdev.KEY_B: keys.B,
	evdev.KEY_C: keys.C,
	evdev.KEY_D: keys.D,
	evdev.KEY_E: keys.E,
	evdev.KEY_F: keys.F,
	evdev.KEY_G: keys.G,
	evdev.KEY_H: keys.H,
	evdev.KEY_I: keys.I,
	evdev.KEY_J: keys.J,
	evdev.KEY_K: keys.K,
	evdev.KEY_L: keys.L,
	evdev.KEY_M: keys.M,
	evdev.KEY_N: keys.N,
	evdev.KEY_O: keys.O,
	evdev.KEY_P: keys.P,
	evdev.KEY_Q: keys.Q,
	evdev.KEY_R: keys.R,
	evdev.KEY_S: keys.S,
	evdev.KEY_T: keys.T,
	evdev.KEY_U: keys.U,
	evdev.KEY_V: keys.V,
	evdev.KEY_W: keys.W,
	evdev.KEY_X: keys.X,
	evdev.KEY_Y: keys.Y,
	evdev.KEY_Z: keys.Z,

	evdev.KEY_0: keys.Num0,
	evdev.KEY_1: keys.Num1,
	evdev.KEY_2: keys.Num2,
	evdev.KEY_3: keys.Num3,
	evdev.KEY_4: keys.Num4,
	evdev.KEY_5: keys.Num5,
	evdev.KEY_6: keys.Num6,
	evdev.KEY_7: keys.Num7,
	evdev.KEY_8: keys.Num8,
	evdev.KEY_9: keys.Num9,

	evdev.KEY_F1:  keys.F1,
	evdev.KEY_F2:  keys.F2,
	evdev.KEY_F3:  keys.F3,
	evdev.KEY_F4:  keys.F4,
	evdev.KEY_F5:  keys.F5,
	evdev.KEY_F6:  keys.F6,
	evdev.KEY_F7:  keys.F7,
	evdev.KEY_F8:  keys.F8,
	evdev.KEY_F9:  keys.F9,
	evdev.KEY_F10: keys.F10,
	evdev.KEY_F11: keys.F11,
	evdev.KEY_F12: keys.F12,

	evdev.KEY_SPACE:     keys.Space,
	evdev.KEY_ENTER:     keys.Enter,
	evdev.KEY_TAB:       keys.Tab,
	evdev.KEY_BACKSPACE: keys.Backspace,
	evdev.KEY_ESC:       keys.Escape,
	evdev.KEY_INSERT:    keys.Insert,
	evdev.KEY_DELETE:    keys.Delete,
	evdev.KEY_HOME:      keys.Home,
	evdev.KEY_END:       keys.End,
	evdev.KEY_PAGEUP:    keys.PageUp,
	evdev.KEY_PAGEDOWN:  keys.PageDown,
	evdev.KEY_UP:        keys.Up,
	evdev.KEY_DOWN:      keys.Down,
	evdev.KEY_LEFT:      keys.Left,
	evdev.KEY_RIGHT:     keys.Right,

	evdev.KEY_LEFTSHIFT:  keys.ShiftLeft,
	evdev.KEY_RIGHTSHIFT: keys.ShiftRight,
	evdev.KEY_LEFTCTRL:   keys.CtrlLeft,
	evdev.KEY_RIGHTCTRL:  keys.CtrlRight,
	evdev.KEY_LEFTALT:    keys.AltLeft,
	evdev.KEY_RIGHTALT:   keys.AltRight,
	evdev.KEY_LEFTMETA:   keys.MetaLeft,
	evdev.KEY_RIGHTMETA:  keys.MetaRight,
}

// keyFor translates an evdev code, reporting whether it is tracked.
func keyFor(code evdev.EvCode) (keys.Key, bool) {
	k, ok := codeMap[code]
	return k, ok
}
