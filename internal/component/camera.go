package component

// Camera is a perspective camera.
// Name is the camera's label: the active-camera registry binds a label to
// the camera carrying that name. An empty Name means unlabelled.
type Camera struct {
	Name string
	FovY   float32 // radians
	Aspect float32 // width / height
	Near   float32
	Far    float32
}
