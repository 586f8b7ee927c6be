package keys

// ModifierState tracks which modifier roles are currently active. It
// trusts the event stream: a press sets the role, a release clears it,
// no reference counting between the left and right variants. The zero
// value is ready to use.
//
// Not safe for concurrent use; a listener owns its state exclusively.
type ModifierState struct {
	active Modifier
}

// Update applies a key state change. Events for non-modifier keys are
// ignored.
func (s *ModifierState) Update(k Key, press bool) {
	role, ok := RoleOf(k)
	if !ok {
		return
	}
	if press {
		s.active |= role
	} else {
		s.active &^= role
	}
}

// Active returns the currently held modifier roles.
func (s *ModifierState) Active() Modifier {
	return s.active
}

// Reset clears all roles, for when the event stream restarts.
func (s *ModifierState) Reset() {
	s.active = 0
}

// Set tracks the concrete keys currently held down, modifiers
// included. Not safe for concurrent use.
type Set map[Key]struct{}

func NewSet() Set {
	return make(Set)
}

// Update applies a key state change.
func (s Set) Update(k Key, press bool) {
	if press {
		s[k] = struct{}{}
	} else {
		delete(s, k)
	}
}

// Held reports whether a key is currently down.
func (s Set) Held(k Key) bool {
	_, ok := s[k]
	return ok
}
