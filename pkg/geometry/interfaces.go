package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Hit is the outcome of a primitive ray test. When OK is false the ray
// missed and Distance is meaningless.
type Hit struct {
	Distance float64
	OK       bool
}

// Miss is the result of a ray that does not touch the shape
var Miss = Hit{}

// At builds a hit at distance t
func At(t float64) Hit {
	return Hit{Distance: t, OK: true}
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Intersect returns the distance along the ray to the surface. The
	// distance may be negative for shapes that do not filter hits behind
	// the ray origin.
	Intersect(ray core.Ray) Hit
	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	// SurfaceMaterial returns the material of the shape
	SurfaceMaterial() core.Material
}
