package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Plane is the set of points p with Normal·p = Distance
type Plane struct {
	Normal   core.Vec3     // Unit normal
	Distance float64       // Signed distance from the origin along Normal
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane, normalizing the given normal once
func NewPlane(normal core.Vec3, distance float64, material core.Material) *Plane {
	return &Plane{
		Normal:   normal.Normalize(),
		Distance: distance,
		Material: material,
	}
}

// Intersect tests if a ray intersects with the plane. Rays parallel to the
// plane miss; otherwise the signed distance is returned even when the plane
// lies behind the ray origin.
func (p *Plane) Intersect(ray core.Ray) Hit {
	denom := p.Normal.Dot(ray.Direction)
	if core.IsZero(denom) {
		return Miss
	}
	return At((p.Distance - p.Normal.Dot(ray.Origin)) / denom)
}

// NormalAt returns the stored normal; a plane faces the same way everywhere
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// SurfaceMaterial returns the plane material
func (p *Plane) SurfaceMaterial() core.Material {
	return p.Material
}
