package integrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

var (
	red   = core.Material{Color: core.NewColor(255, 0, 0), DiffuseContribution: 1}
	green = core.Material{Color: core.NewColor(0, 255, 0), DiffuseContribution: 1}
	blue  = core.Material{Color: core.NewColor(0, 0, 255), DiffuseContribution: 1}
)

func newWorld(t *testing.T, planes []*geometry.Plane, spheres []*geometry.Sphere, lights []scene.Light) *scene.World {
	t.Helper()
	w := scene.NewWorld(scene.Limits{})
	for _, p := range planes {
		require.NoError(t, w.PushPlane(p))
	}
	for _, s := range spheres {
		require.NoError(t, w.PushSphere(s))
	}
	for _, l := range lights {
		require.NoError(t, w.PushLight(l))
	}
	w.Background = core.NewColor(10, 20, 30)
	return w
}

func TestIntersect_EmptyWorldMisses(t *testing.T) {
	w := newWorld(t, nil, nil, nil)
	res := Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), w)
	assert.False(t, res.Hit)
}

func TestIntersect_NearestWins(t *testing.T) {
	w := newWorld(t,
		[]*geometry.Plane{geometry.NewPlane(core.NewVec3(0, 0, -1), -20, red)}, // z = 20
		[]*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, 10), 1, green),
			geometry.NewSphere(core.NewVec3(0, 0, 5), 1, blue),
		},
		nil)

	res := Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), w)
	require.True(t, res.Hit)
	assert.Equal(t, blue, res.Material)
	assert.InDelta(t, 4.0, res.Distance, 1e-9)
	assert.InDelta(t, 4.0, res.Point.Z, 1e-9)
	assert.InDelta(t, -1.0, res.Normal.Z, 1e-9)
}

func TestIntersect_PlaneBehindRayIsIgnored(t *testing.T) {
	w := newWorld(t,
		[]*geometry.Plane{geometry.NewPlane(core.NewVec3(0, 0, 1), -5, red)}, // z = -5, behind
		[]*geometry.Sphere{geometry.NewSphere(core.NewVec3(0, 0, 10), 1, green)},
		nil)

	res := Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), w)
	require.True(t, res.Hit)
	assert.Equal(t, green, res.Material)
	assert.Same(t, w.Spheres[0], res.Shape)
}

func TestIntersect_TiesGoToPlanes(t *testing.T) {
	// Sphere front surface and plane both at z = 4
	w := newWorld(t,
		[]*geometry.Plane{geometry.NewPlane(core.NewVec3(0, 0, -1), -4, red)},
		[]*geometry.Sphere{geometry.NewSphere(core.NewVec3(0, 0, 5), 1, green)},
		nil)

	res := Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), w)
	require.True(t, res.Hit)
	assert.Equal(t, red, res.Material)
	assert.Equal(t, core.NewVec3(0, 0, -1), res.Normal)
	assert.Same(t, w.Planes[0], res.Shape)
}

func TestIntersect_TiesGoToFirstSphere(t *testing.T) {
	w := newWorld(t, nil,
		[]*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, 5), 1, green),
			geometry.NewSphere(core.NewVec3(0, 0, 5), 1, blue),
		},
		nil)

	res := Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), w)
	require.True(t, res.Hit)
	assert.Equal(t, green, res.Material)
}

func TestOccluded(t *testing.T) {
	w := newWorld(t, nil,
		[]*geometry.Sphere{geometry.NewSphere(core.NewVec3(0, 5, 0), 1, green)},
		nil)

	assert.True(t, Occluded(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), w))
	assert.False(t, Occluded(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), w))
	assert.False(t, Occluded(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), w))
}
