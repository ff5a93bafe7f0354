package integrator

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Intersection is the nearest surface struck by a ray
type Intersection struct {
	Point    core.Vec3      // World-space hit point
	Normal   core.Vec3      // Outward unit normal at Point
	Material core.Material  // Material of the struck object
	Distance float64        // Distance along the ray
	Shape    geometry.Shape // The struck object
	Hit      bool           // False when the ray struck nothing
}

// Intersect finds the nearest non-negative hit across the world's shapes in
// scan order. On equal distances the object scanned first wins.
func Intersect(ray core.Ray, world *scene.World) Intersection {
	var res Intersection
	closest := math.Inf(1)
	var winner geometry.Shape

	for _, shape := range world.Shapes() {
		if hit := shape.Intersect(ray); hit.OK && hit.Distance >= 0 && hit.Distance < closest {
			closest = hit.Distance
			winner = shape
		}
	}

	if winner == nil {
		return res
	}

	res.Hit = true
	res.Distance = closest
	res.Point = ray.At(closest)
	res.Normal = winner.NormalAt(res.Point)
	res.Material = winner.SurfaceMaterial()
	res.Shape = winner
	return res
}

// Occluded reports whether the ray strikes any object at a non-negative
// distance. It does not look for the nearest hit and does not stop at the
// light, so geometry beyond a light still casts a shadow.
func Occluded(ray core.Ray, world *scene.World) bool {
	for _, shape := range world.Shapes() {
		if hit := shape.Intersect(ray); hit.OK && hit.Distance >= 0 {
			return true
		}
	}
	return false
}
