package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/l1jgo/camcycle/internal/camera"
	"github.com/l1jgo/camcycle/internal/linear"
)

// Description is the YAML form of a scene.
type Description struct {
	Plane   ShapeEntry    `yaml:"plane"`
	Cube    ShapeEntry    `yaml:"cube"`
	Light   LightEntry    `yaml:"light"`
	Cameras []CameraEntry `yaml:"cameras"`
}

// ShapeEntry describes a built-in mesh placed at Position.
type ShapeEntry struct {
	Size     float32    `yaml:"size"`
	Color    [3]float32 `yaml:"color"`
	Position linear.V3  `yaml:"position"`
}

// LightEntry describes a point light.
type LightEntry struct {
	Position  linear.V3  `yaml:"position"`
	Intensity float32    `yaml:"intensity"`
	Range     float32    `yaml:"range"`
	Color     [3]float32 `yaml:"color"`
}

// CameraEntry describes a perspective camera tagged with a slot.
type CameraEntry struct {
	Slot     camera.Slot `yaml:"slot"`
	Position linear.V3   `yaml:"position"`
	LookAt   linear.V3   `yaml:"look_at"`
	FovY     float32     `yaml:"fov_y"` // degrees
	Aspect   float32     `yaml:"aspect"`
	Near     float32     `yaml:"near"`
	Far      float32     `yaml:"far"`
}

// Default returns the built-in scene: a plane, a cube, a point light and
// one camera per slot, all cameras looking at the origin.
func Default() *Description {
	return &Description{
		Plane: ShapeEntry{Size: 5, Color: [3]float32{0.3, 0.5, 0.3}},
		Cube:  ShapeEntry{Size: 1, Color: [3]float32{0.8, 0.7, 0.6}, Position: linear.V3{0, 0.5, 0}},
		Light: LightEntry{Position: linear.V3{4, 8, 4}, Intensity: 800, Range: 20, Color: [3]float32{1, 1, 1}},
		Cameras: []CameraEntry{
			{Slot: camera.Primary, Position: linear.V3{-2, 5, 5}},
			{Slot: camera.Secondary, Position: linear.V3{0, 5, -5}},
		},
	}
}

// Load reads a scene description from path.
// Fields missing from the file keep the values of Default, except for
// cameras: a file that lists cameras replaces the default ones.
func Load(path string) (*Description, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	d := Default()
	cams := d.Cameras
	d.Cameras = nil
	if err := yaml.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if d.Cameras == nil {
		d.Cameras = cams
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return d, nil
}

var errNoCamera = errors.New("no camera")

// Validate checks that every slot has exactly one camera and that each
// camera has somewhere to look.
func (d *Description) Validate() error {
	var seen [len(camera.Slots)]int
	for i := range d.Cameras {
		c := &d.Cameras[i]
		idx := -1
		for j, s := range camera.Slots {
			if s == c.Slot {
				idx = j
			}
		}
		if idx < 0 {
			return fmt.Errorf("camera %d: unknown slot %v", i, c.Slot)
		}
		seen[idx]++
		if c.Position == c.LookAt {
			return fmt.Errorf("camera %d (%v): position equals look_at", i, c.Slot)
		}
	}
	for j, n := range seen {
		switch {
		case n == 0:
			return fmt.Errorf("slot %v: %w", camera.Slots[j], errNoCamera)
		case n > 1:
			return fmt.Errorf("slot %v: %d cameras, want 1", camera.Slots[j], n)
		}
	}
	return nil
}
