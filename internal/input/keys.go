package input

// Keys holds the keyboard state seen by systems during one tick.
// A key is just pressed only on the tick where it transitioned from
// released to pressed; holding it does not re-trigger.
// Keys is accessed only from the game loop goroutine.
type Keys struct {
	pressed      map[Key]bool
	justPressed  map[Key]bool
	justReleased map[Key]bool
}

func NewKeys() *Keys {
	return &Keys{
		pressed:      make(map[Key]bool),
		justPressed:  make(map[Key]bool),
		justReleased: make(map[Key]bool),
	}
}

// Press marks k as held.
func (s *Keys) Press(k Key) {
	if s.pressed[k] {
		return
	}
	s.pressed[k] = true
	s.justPressed[k] = true
}

// Release marks k as no longer held.
func (s *Keys) Release(k Key) {
	if !s.pressed[k] {
		return
	}
	delete(s.pressed, k)
	s.justReleased[k] = true
}

// Pressed reports whether k is currently held.
func (s *Keys) Pressed(k Key) bool { return s.pressed[k] }

// JustPressed reports whether k was pressed during the current tick.
func (s *Keys) JustPressed(k Key) bool { return s.justPressed[k] }

// JustReleased reports whether k was released during the current tick.
func (s *Keys) JustReleased(k Key) bool { return s.justReleased[k] }

// Clear resets the per-tick transitions. Held keys stay held.
func (s *Keys) Clear() {
	clear(s.justPressed)
	clear(s.justReleased)
}
