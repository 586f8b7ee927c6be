package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifierStateUpdate(t *testing.T) {
	var s ModifierState

	s.Update(ShiftLeft, true)
	assert.Equal(t, ModShift, s.Active())

	s.Update(CtrlRight, true)
	assert.Equal(t, ModShift|ModCtrl, s.Active())

	// releasing the right variant clears the role even though the
	// left one was never seen
	s.Update(ShiftRight, false)
	assert.Equal(t, ModCtrl, s.Active())

	s.Update(CtrlRight, false)
	assert.Equal(t, Modifier(0), s.Active())
}

func TestModifierStateIgnoresPlainKeys(t *testing.T) {
	var s ModifierState
	s.Update(Q, true)
	s.Update(Space, true)
	assert.Equal(t, Modifier(0), s.Active())
}

func TestModifierStateRepeatPressIsIdempotent(t *testing.T) {
	var s ModifierState
	s.Update(AltLeft, true)
	s.Update(AltLeft, true) // autorepeat
	assert.Equal(t, ModAlt, s.Active())
	s.Update(AltLeft, false)
	assert.Equal(t, Modifier(0), s.Active())
}

func TestModifierStateReset(t *testing.T) {
	var s ModifierState
	s.Update(MetaLeft, true)
	s.Reset()
	assert.Equal(t, Modifier(0), s.Active())
}

func TestSet(t *testing.T) {
	s := NewSet()
	assert.False(t, s.Held(Q))

	s.Update(Q, true)
	s.Update(ShiftLeft, true)
	assert.True(t, s.Held(Q))
	assert.True(t, s.Held(ShiftLeft))

	s.Update(Q, false)
	assert.False(t, s.Held(Q))
	assert.True(t, s.Held(ShiftLeft))
}
