package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// Light is a point light. Lights have no color, they only scale brightness.
type Light struct {
	Position  core.Vec3
	Intensity float64
}

// Limits bounds how many objects of each kind a world accepts. A zero
// limit means unbounded.
type Limits struct {
	MaxPlanes  int
	MaxSpheres int
	MaxLights  int
}

// DefaultLimits returns room for 3 planes, 5 spheres and 3 lights
func DefaultLimits() Limits {
	return Limits{
		MaxPlanes:  3,
		MaxSpheres: 5,
		MaxLights:  3,
	}
}

// World contains all the elements needed for rendering. A world is built
// once and must not be modified while a render is reading it.
type World struct {
	Planes     []*geometry.Plane
	Spheres    []*geometry.Sphere
	Lights     []Light
	Background core.Color
	Camera     core.CoordinateSpace

	limits Limits
}

// NewWorld creates an empty world with the given limits
func NewWorld(limits Limits) *World {
	return &World{limits: limits}
}

// Limits returns the capacity limits of the world
func (w *World) Limits() Limits {
	return w.limits
}

// PushPlane appends a plane
func (w *World) PushPlane(plane *geometry.Plane) error {
	if err := checkCapacity("plane", len(w.Planes), w.limits.MaxPlanes); err != nil {
		return err
	}
	w.Planes = append(w.Planes, plane)
	return nil
}

// PushSphere appends a sphere
func (w *World) PushSphere(sphere *geometry.Sphere) error {
	if err := checkCapacity("sphere", len(w.Spheres), w.limits.MaxSpheres); err != nil {
		return err
	}
	w.Spheres = append(w.Spheres, sphere)
	return nil
}

// PushLight appends a light
func (w *World) PushLight(light Light) error {
	if err := checkCapacity("light", len(w.Lights), w.limits.MaxLights); err != nil {
		return err
	}
	w.Lights = append(w.Lights, light)
	return nil
}

// SetCamera sets the camera coordinate space
func (w *World) SetCamera(camera core.CoordinateSpace) {
	w.Camera = camera
}

// Shapes returns every object in scan order: planes first, then spheres
func (w *World) Shapes() []geometry.Shape {
	shapes := make([]geometry.Shape, 0, len(w.Planes)+len(w.Spheres))
	for _, p := range w.Planes {
		shapes = append(shapes, p)
	}
	for _, s := range w.Spheres {
		shapes = append(shapes, s)
	}
	return shapes
}

// String summarizes the world contents for logging
func (w *World) String() string {
	return fmt.Sprintf("%d planes, %d spheres, %d lights", len(w.Planes), len(w.Spheres), len(w.Lights))
}

// Validate reports scene problems that would go unnoticed at render time
func (w *World) Validate() error {
	if !w.Camera.IsOrthonormal(1e-6) {
		return fmt.Errorf("%w: %+v", ErrCameraNotOrthonormal, w.Camera)
	}
	return nil
}

func checkCapacity(kind string, count, limit int) error {
	if limit > 0 && count >= limit {
		return fmt.Errorf("%w: cannot add %s, limit is %d", ErrCapacityExceeded, kind, limit)
	}
	return nil
}
