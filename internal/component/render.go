package component

// MeshShape identifies a built-in mesh.
type MeshShape int

const (
	ShapePlane MeshShape = iota
	ShapeCube
)

func (s MeshShape) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeCube:
		return "cube"
	}
	return "unknown"
}

// Mesh is a built-in shape of the given edge length.
type Mesh struct {
	Shape MeshShape
	Size  float32
}

// Material is a flat base color, each channel in [0, 1].
type Material struct {
	R, G, B float32
}

// PointLight is an omnidirectional light emitted from the entity's
// translation. Range <= 0 means infinite range.
// Intensity is the luminous intensity in candela.
type PointLight struct {
	Intensity float32
	Range     float32
	R, G, B   float32
}
