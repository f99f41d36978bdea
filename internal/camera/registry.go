package camera

import (
	"github.com/l1jgo/camcycle/internal/core/ecs"
)

// RenderLabel is the registry label of the camera the scene is rendered
// through.
const RenderLabel = "camera_3d"

// OverlayLabel is the host's 2D camera label. The demo spawns no 2D
// camera, so it stays registered and unbound.
const OverlayLabel = "camera_2d"

// Active is a registry entry: a label and the entity it is bound to, if any.
type Active struct {
	Label  string
	Entity ecs.EntityID
}

// Bound reports whether the entry names an entity.
func (a Active) Bound() bool { return !a.Entity.IsZero() }

// Registry tracks which labels are active for rendering and which camera
// entity each label is bound to. Entries keep insertion order.
type Registry struct {
	entries []Active
}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) find(label string) int {
	for i := range r.entries {
		if r.entries[i].Label == label {
			return i
		}
	}
	return -1
}

// Add activates label, unbound. Adding an active label is a no-op.
func (r *Registry) Add(label string) {
	if r.find(label) >= 0 {
		return
	}
	r.entries = append(r.entries, Active{Label: label})
}

// Remove deactivates label, dropping its binding.
func (r *Registry) Remove(label string) {
	if i := r.find(label); i >= 0 {
		r.entries = append(r.entries[:i], r.entries[i+1:]...)
	}
}

// Get returns the entry for label.
func (r *Registry) Get(label string) (Active, bool) {
	if i := r.find(label); i >= 0 {
		return r.entries[i], true
	}
	return Active{}, false
}

// Entity returns the entity bound to label, if any.
func (r *Registry) Entity(label string) (ecs.EntityID, bool) {
	a, ok := r.Get(label)
	if !ok || !a.Bound() {
		return ecs.Nil, false
	}
	return a.Entity, true
}

// Set binds label to id. It reports false if label is not active.
func (r *Registry) Set(label string, id ecs.EntityID) bool {
	i := r.find(label)
	if i < 0 {
		return false
	}
	r.entries[i].Entity = id
	return true
}

// All returns a copy of the entries in registry order.
func (r *Registry) All() []Active {
	return append([]Active(nil), r.entries...)
}

// Len returns the number of active labels.
func (r *Registry) Len() int { return len(r.entries) }

// Bind binds every unbound label to the last camera, in store order,
// whose Name equals the label. Bound labels keep their entity.
// It returns the number of labels bound by this call.
func (r *Registry) Bind(cams Cameras) int {
	n := 0
	for i := range r.entries {
		if r.entries[i].Bound() {
			continue
		}
		if id, ok := cams.LastNamed(r.entries[i].Label); ok {
			r.entries[i].Entity = id
			n++
		}
	}
	return n
}
