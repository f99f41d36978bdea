// Package camera implements camera cycling: a slot state machine advanced
// by a key press, and the hand-off of the render designation between the
// cameras tagged with those slots.
package camera

import (
	"fmt"
	"strings"
)

// Slot is the logical identity of a camera, independent of whether it is
// currently rendering.
type Slot int

const (
	Primary Slot = iota
	Secondary
)

// Slots lists every slot in cycling order.
var Slots = [...]Slot{Primary, Secondary}

func (s Slot) String() string {
	switch s {
	case Primary:
		return "Primary"
	case Secondary:
		return "Secondary"
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

// Next returns the slot following s in Slots, wrapping from the last slot
// back to the first. An unknown slot yields the first slot.
func (s Slot) Next() Slot {
	for i, x := range Slots {
		if x == s {
			return Slots[(i+1)%len(Slots)]
		}
	}
	return Slots[0]
}

// ParseSlot returns the slot named s (case-insensitive).
func ParseSlot(s string) (Slot, error) {
	for _, x := range Slots {
		if strings.EqualFold(x.String(), strings.TrimSpace(s)) {
			return x, nil
		}
	}
	return 0, fmt.Errorf("unknown camera slot %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Slot) UnmarshalText(text []byte) error {
	v, err := ParseSlot(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Slot) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Tag attaches a fixed slot to a camera entity.
type Tag struct {
	Slot Slot
}

// State holds the active slot.
type State struct {
	current Slot
}

// NewState returns a state whose active slot is initial.
func NewState(initial Slot) *State { return &State{current: initial} }

// Current returns the active slot.
func (s *State) Current() Slot { return s.current }
