// Package scene builds the demo scene in an ECS world and owns its
// component stores.
package scene

import (
	"math"

	"github.com/l1jgo/camcycle/internal/camera"
	"github.com/l1jgo/camcycle/internal/component"
	"github.com/l1jgo/camcycle/internal/core/ecs"
	"github.com/l1jgo/camcycle/internal/linear"
)

const (
	defaultFovY   = 45 // degrees
	defaultAspect = 16.0 / 9
	defaultNear   = 0.1
	defaultFar    = 1000
)

// Scene holds the world and every component store of the demo.
// Accessed only from the game loop goroutine.
type Scene struct {
	World      *ecs.World
	Transforms *ecs.Store[component.Transform]
	Meshes     *ecs.Store[component.Mesh]
	Materials  *ecs.Store[component.Material]
	Lights     *ecs.Store[component.PointLight]
	Cameras    *ecs.Store[component.Camera]
	Slots      *ecs.Store[camera.Tag]
}

// New creates an empty scene.
func New() *Scene {
	w := ecs.NewWorld()
	return &Scene{
		World:      w,
		Transforms: ecs.NewRegisteredStore[component.Transform](w),
		Meshes:     ecs.NewRegisteredStore[component.Mesh](w),
		Materials:  ecs.NewRegisteredStore[component.Material](w),
		Lights:     ecs.NewRegisteredStore[component.PointLight](w),
		Cameras:    ecs.NewRegisteredStore[component.Camera](w),
		Slots:      ecs.NewRegisteredStore[camera.Tag](w),
	}
}

// CameraQuery returns the camera view of the scene.
func (s *Scene) CameraQuery() camera.Cameras {
	return camera.Cameras{Tags: s.Slots, Cameras: s.Cameras}
}

// Setup spawns the entities of d and registers the active-camera labels.
//
// The camera in the initial slot is spawned last and is the only one
// named camera.RenderLabel; the others start unlabelled. The registry
// gets the host labels camera.OverlayLabel and camera.RenderLabel plus
// one label per other slot, and the render label is bound right away.
func (s *Scene) Setup(d *Description, initial camera.Slot, reg *camera.Registry) error {
	if err := d.Validate(); err != nil {
		return err
	}

	s.spawnShape(component.ShapePlane, &d.Plane)
	s.spawnShape(component.ShapeCube, &d.Cube)

	light := s.World.CreateEntity()
	s.Transforms.Set(light, &component.Transform{Translation: d.Light.Position, Up: linear.V3{0, 1, 0}})
	s.Lights.Set(light, &component.PointLight{
		Intensity: d.Light.Intensity,
		Range:     d.Light.Range,
		R:         d.Light.Color[0],
		G:         d.Light.Color[1],
		B:         d.Light.Color[2],
	})

	var last *CameraEntry
	for i := range d.Cameras {
		c := &d.Cameras[i]
		if c.Slot == initial {
			last = c
			continue
		}
		s.spawnCamera(c, "")
	}
	if last != nil {
		s.spawnCamera(last, camera.RenderLabel)
	}

	reg.Add(camera.OverlayLabel)
	reg.Add(camera.RenderLabel)
	for _, slot := range camera.Slots {
		if slot != initial {
			reg.Add(slot.String())
		}
	}
	reg.Bind(s.CameraQuery())
	return nil
}

// Despawn queues every scene entity for destruction and unbinds the
// registry labels that pointed at them. Entities go away at the next
// FlushDestroyQueue. It returns the number of entities queued.
func (s *Scene) Despawn(reg *camera.Registry) int {
	n := 0
	for id := range s.Transforms.All() {
		s.World.MarkForDestruction(id)
		n++
	}
	for _, a := range reg.All() {
		if a.Bound() {
			reg.Set(a.Label, ecs.Nil)
		}
	}
	return n
}

func (s *Scene) spawnShape(shape component.MeshShape, e *ShapeEntry) ecs.EntityID {
	id := s.World.CreateEntity()
	s.Transforms.Set(id, &component.Transform{Translation: e.Position, Up: linear.V3{0, 1, 0}})
	s.Meshes.Set(id, &component.Mesh{Shape: shape, Size: e.Size})
	s.Materials.Set(id, &component.Material{R: e.Color[0], G: e.Color[1], B: e.Color[2]})
	return id
}

func (s *Scene) spawnCamera(c *CameraEntry, name string) ecs.EntityID {
	fovy, aspect, near, far := c.FovY, c.Aspect, c.Near, c.Far
	if fovy <= 0 {
		fovy = defaultFovY
	}
	if aspect <= 0 {
		aspect = defaultAspect
	}
	if near <= 0 {
		near = defaultNear
	}
	if far <= near {
		far = defaultFar
	}
	id := s.World.CreateEntity()
	s.Transforms.Set(id, &component.Transform{
		Translation: c.Position,
		Target:      c.LookAt,
		Up:          linear.V3{0, 1, 0},
		LooksAt:     true,
	})
	s.Cameras.Set(id, &component.Camera{
		Name: name,
		FovY:   fovy * math.Pi / 180,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	})
	s.Slots.Set(id, &camera.Tag{Slot: c.Slot})
	return id
}

// View returns the world-to-view matrix of the entity's transform.
func View(t *component.Transform) linear.M4 {
	var m linear.M4
	if !t.LooksAt {
		m.Translate(linear.ScaleV3(-1, t.Translation))
		return m
	}
	m.LookAt(t.Translation, t.Target, t.Up)
	return m
}

// Forward returns the unit direction the entity faces.
// Entities that do not look at a target face -z.
func Forward(t *component.Transform) linear.V3 {
	if !t.LooksAt {
		return linear.V3{0, 0, -1}
	}
	return linear.NormV3(linear.SubV3(t.Target, t.Translation))
}

// Projection returns the perspective projection of cam.
func Projection(cam *component.Camera) linear.M4 {
	var m linear.M4
	m.Perspective(cam.FovY, cam.Aspect, cam.Near, cam.Far)
	return m
}

// Project maps the world point p to normalized device coordinates as seen
// through cam placed at t. Depth is in [0, 1] between the clip planes.
// ok is false when p is at or behind the eye.
func Project(t *component.Transform, cam *component.Camera, p linear.V3) (ndc linear.V3, ok bool) {
	view, proj := View(t), Projection(cam)
	var vp linear.M4
	vp.Mul(&proj, &view)
	c := vp.MulV4(linear.Point(p))
	if c[3] <= 0 {
		return linear.V3{}, false
	}
	return linear.V3{c[0] / c[3], c[1] / c[3], c[2] / c[3]}, true
}
