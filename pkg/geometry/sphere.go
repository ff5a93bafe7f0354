package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect returns the nearest positive root of |o + t·d - c|² = r².
// Grazing rays whose discriminant root is within tolerance of zero count
// as misses, and so do rays with a zero-length direction.
func (s *Sphere) Intersect(ray core.Ray) Hit {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if core.IsZero(a) {
		return Miss
	}
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Miss
	}
	sqrtD := math.Sqrt(discriminant)
	if core.IsNegative(sqrtD) {
		return Miss
	}

	denom := 2 * a
	far := (-b + sqrtD) / denom
	near := (-b - sqrtD) / denom

	switch {
	case near > 0:
		return At(near)
	case far > 0:
		// Origin is inside the sphere
		return At(far)
	default:
		return Miss
	}
}

// NormalAt returns the outward normal at a surface point
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// SurfaceMaterial returns the sphere material
func (s *Sphere) SurfaceMaterial() core.Material {
	return s.Material
}
