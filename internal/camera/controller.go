package camera

import (
	"fmt"
	"io"

	"github.com/l1jgo/camcycle/internal/component"
	"github.com/l1jgo/camcycle/internal/core/ecs"
)

// Controller owns the active slot and moves the render designation
// between cameras when the slot changes. Its collaborators (registry and
// cameras) are passed to every call.
type Controller struct {
	state *State
}

// NewController returns a controller whose active slot is initial.
func NewController(initial Slot) *Controller {
	return &Controller{state: NewState(initial)}
}

// Current returns the active slot.
func (c *Controller) Current() Slot { return c.state.Current() }

// Advance makes the next slot active.
func (c *Controller) Advance() (from, to Slot) {
	from = c.state.current
	c.state.current = from.Next()
	return from, c.state.current
}

// Switch describes a render designation hand-off.
type Switch struct {
	From   Slot
	To     Slot
	Entity ecs.EntityID
}

// Sync moves the render designation to the camera of the active slot.
//
// It does nothing if no camera is bound to RenderLabel or if the bound
// camera is already in the active slot. Otherwise RenderLabel is removed
// from reg, every camera named RenderLabel is renamed after its slot, the
// last camera in the active slot is named RenderLabel, and RenderLabel is
// added back to reg bound to that camera.
//
// ok is false when nothing changed.
func (c *Controller) Sync(reg *Registry, cams Cameras) (sw Switch, ok bool) {
	prev, bound := reg.Entity(RenderLabel)
	if !bound {
		return sw, false
	}
	tag, _, found := cams.Get(prev)
	if !found {
		return sw, false
	}
	want := c.state.current
	if tag.Slot == want {
		return sw, false
	}

	reg.Remove(RenderLabel)
	cams.Each(func(_ ecs.EntityID, t *Tag, cam *component.Camera) {
		if cam.Name == RenderLabel {
			cam.Name = t.Slot.String()
		}
	})
	next, found := cams.LastInSlot(want)
	if found {
		_, cam, _ := cams.Get(next)
		cam.Name = RenderLabel
	}
	reg.Add(RenderLabel)
	if found {
		reg.Set(RenderLabel, next)
	}
	return Switch{From: tag.Slot, To: want, Entity: next}, true
}

// Entry is one line of a report.
type Entry struct {
	Label string
	// Slot is the slot name of the bound camera, or empty if the label
	// is unbound.
	Slot string
}

// Report lists every active label with the slot of its bound camera.
func (c *Controller) Report(reg *Registry, cams Cameras) []Entry {
	all := reg.All()
	entries := make([]Entry, 0, len(all))
	for _, a := range all {
		e := Entry{Label: a.Label}
		if a.Bound() {
			if tag, _, ok := cams.Get(a.Entity); ok {
				e.Slot = tag.Slot.String()
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// WriteReport writes entries to w, one "label: Slot" line each,
// preceded by an empty line.
func WriteReport(w io.Writer, entries []Entry) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, e := range entries {
		var err error
		if e.Slot == "" {
			_, err = fmt.Fprintf(w, "%s:\n", e.Label)
		} else {
			_, err = fmt.Fprintf(w, "%s: %s\n", e.Label, e.Slot)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
