package integrator

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// DefaultMaxDepth is the deepest reflection level traced. Camera rays are
// depth 0, so a ray path is shaded at most DefaultMaxDepth+1 times.
const DefaultMaxDepth = 3

// surfaceOffset nudges shadow and reflection rays off the surface they
// start on
const surfaceOffset = 1e-3

// PhongIntegrator shades hits with per-light diffuse and specular terms,
// binary shadows, and recursive mirror reflection
type PhongIntegrator struct {
	MaxDepth int

	// Trace, when set, is called on entry to every shading invocation with
	// its depth. It runs on the render workers and must be safe for
	// concurrent use when the integrator is shared.
	Trace func(depth int)
}

// NewPhongIntegrator creates a Phong integrator with the default depth cap
func NewPhongIntegrator() *PhongIntegrator {
	return &PhongIntegrator{MaxDepth: DefaultMaxDepth}
}

// RayColor shades a camera ray, starting at depth 0
func (p *PhongIntegrator) RayColor(ray core.Ray, world *scene.World) core.Color {
	return p.castRay(ray, world, 0)
}

func (p *PhongIntegrator) castRay(ray core.Ray, world *scene.World, depth int) core.Color {
	if p.Trace != nil {
		p.Trace(depth)
	}
	if depth > p.MaxDepth {
		return world.Background
	}

	hit := Intersect(ray, world)
	if !hit.Hit {
		return world.Background
	}

	mat := hit.Material
	diffuse, specular := p.directLighting(ray, hit, world)

	// A level past the cap would only return the background, so it is not
	// traced at all
	reflected := world.Background
	if mat.IsReflective() && depth < p.MaxDepth {
		dir := core.Reflect(ray.Direction, hit.Normal)
		reflected = p.castRay(core.Offset(hit.Point, dir, surfaceOffset), world, depth+1)
	}

	return mat.Color.Scale(diffuse * mat.DiffuseContribution).
		Add(core.White.Scale(specular * mat.SpecularContribution)).
		Add(reflected.Scale(mat.Reflectance))
}

// directLighting accumulates the unoccluded diffuse and specular intensity
// of every light at the hit point
func (p *PhongIntegrator) directLighting(ray core.Ray, hit Intersection, world *scene.World) (diffuse, specular float64) {
	for _, light := range world.Lights {
		lightDir := light.Position.Subtract(hit.Point).Normalize()

		if Occluded(core.Offset(hit.Point, lightDir, surfaceOffset), world) {
			continue
		}

		diffuse += light.Intensity * math.Max(0, lightDir.Dot(hit.Normal))
		highlight := math.Max(0, core.Reflect(lightDir, hit.Normal).Dot(ray.Direction))
		specular += light.Intensity * math.Pow(highlight, hit.Material.SpecularExponent)
	}
	return diffuse, specular
}
