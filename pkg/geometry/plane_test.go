package geometry

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestPlane_Intersect_BasicIntersection(t *testing.T) {
	// Horizontal plane at y=-2
	plane := NewPlane(core.NewVec3(0, 1, 0), -2, core.Material{})

	// Ray shooting down from above
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	hit := plane.Intersect(ray)
	require.True(t, hit.OK)
	assert.InDelta(t, 3.0, hit.Distance, 1e-12)
	assert.InDelta(t, -2.0, ray.At(hit.Distance).Y, 1e-12)
}

func TestPlane_Intersect_BehindRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 1, 0), 0, core.Material{})

	// Plane is behind the origin: the distance is reported negative and it is
	// up to the caller to reject it
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))

	hit := plane.Intersect(ray)
	require.True(t, hit.OK)
	assert.InDelta(t, -1.0, hit.Distance, 1e-12)
}

func TestPlane_Intersect_ParallelRaysMiss(t *testing.T) {
	random := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		normal := core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, random.Float64()-0.5).Normalize()
		plane := NewPlane(normal, random.Float64()*10-5, core.Material{})

		// Any direction in the plane's tangent space
		helper := core.NewVec3(1, 0, 0)
		if normal.Cross(helper).Length() < 0.1 {
			helper = core.NewVec3(0, 1, 0)
		}
		direction := normal.Cross(helper).Normalize()
		origin := core.NewVec3(random.Float64()*10, random.Float64()*10, random.Float64()*10)

		hit := plane.Intersect(core.NewRay(origin, direction))
		assert.False(t, hit.OK, "normal=%v direction=%v", normal, direction)
	}
}

func TestNewPlane_NormalizesNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 5, 0), 1, core.Material{})
	assert.Equal(t, core.NewVec3(0, 1, 0), plane.Normal)
	assert.Equal(t, plane.Normal, plane.NormalAt(core.NewVec3(3, 1, 3)))
}
