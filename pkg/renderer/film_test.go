package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

var axisCamera = core.CoordinateSpace{
	Origin: core.NewVec3(0, 0, -10),
	XAxis:  core.NewVec3(1, 0, 0),
	YAxis:  core.NewVec3(0, 1, 0),
	ZAxis:  core.NewVec3(0, 0, 1),
}

func assertDirection(t *testing.T, expected, actual core.Vec3) {
	t.Helper()
	assert.InDelta(t, 0, expected.Normalize().Subtract(actual).Length(), 1e-9, "expected %v, got %v", expected.Normalize(), actual)
}

func TestFilm_SquareImage(t *testing.T) {
	film := NewFilm(axisCamera, 4, 4)

	ray := film.Ray(0, 0)
	assert.Equal(t, axisCamera.Origin, ray.Origin)
	assertDirection(t, core.NewVec3(-1, 1, 1), ray.Direction)

	// Pixel (2, 2) sits on the film center
	assertDirection(t, core.NewVec3(0, 0, 1), film.Ray(2, 2).Direction)
	assertDirection(t, core.NewVec3(0.5, -0.5, 1), film.Ray(3, 3).Direction)
}

func TestFilm_AspectRatio(t *testing.T) {
	wide := NewFilm(axisCamera, 8, 4)
	// Width spans [-1, 1], height is compressed to [-0.5, 0.5]
	assertDirection(t, core.NewVec3(-1, 0.5, 1), wide.Ray(0, 0).Direction)

	tall := NewFilm(axisCamera, 4, 8)
	assertDirection(t, core.NewVec3(-0.5, 1, 1), tall.Ray(0, 0).Direction)
}

func TestFilm_UsesCameraBasis(t *testing.T) {
	// Camera looking down -X with Y up
	camera := core.CoordinateSpace{
		Origin: core.NewVec3(5, 0, 0),
		XAxis:  core.NewVec3(0, 0, 1),
		YAxis:  core.NewVec3(0, 1, 0),
		ZAxis:  core.NewVec3(-1, 0, 0),
	}
	film := NewFilm(camera, 2, 2)
	assertDirection(t, core.NewVec3(-1, 0, 0), film.Ray(1, 1).Direction)
	assertDirection(t, core.NewVec3(-1, 1, -1), film.Ray(0, 0).Direction)
}
