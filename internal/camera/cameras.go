package camera

import (
	"github.com/l1jgo/camcycle/internal/component"
	"github.com/l1jgo/camcycle/internal/core/ecs"
)

// Cameras gives access to the camera entities of a scene: the entities
// carrying both a slot Tag and a component.Camera.
type Cameras struct {
	Tags    *ecs.Store[Tag]
	Cameras *ecs.Store[component.Camera]
}

// Get returns the tag and camera of id.
func (c Cameras) Get(id ecs.EntityID) (*Tag, *component.Camera, bool) {
	tag, ok := c.Tags.Get(id)
	if !ok {
		return nil, nil, false
	}
	cam, ok := c.Cameras.Get(id)
	if !ok {
		return nil, nil, false
	}
	return tag, cam, true
}

// Each calls fn for every camera entity in store order.
func (c Cameras) Each(fn func(ecs.EntityID, *Tag, *component.Camera)) {
	ecs.Each2(c.Tags, c.Cameras, fn)
}

// LastNamed returns the last camera entity whose Name is name.
func (c Cameras) LastNamed(name string) (ecs.EntityID, bool) {
	return ecs.Last2(c.Tags, c.Cameras, func(_ *Tag, cam *component.Camera) bool {
		return cam.Name == name
	})
}

// LastInSlot returns the last camera entity tagged with slot.
func (c Cameras) LastInSlot(slot Slot) (ecs.EntityID, bool) {
	return ecs.Last2(c.Tags, c.Cameras, func(tag *Tag, _ *component.Camera) bool {
		return tag.Slot == slot
	})
}
