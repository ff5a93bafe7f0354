package renderer

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// FieldOfViewDistance is how far in front of the camera the film plane sits
const FieldOfViewDistance = 1.0

// Film maps pixel coordinates to camera rays. The longer image side spans
// [-1, 1] on the film and the shorter side is compressed to keep the
// aspect ratio.
type Film struct {
	camera     core.CoordinateSpace
	plane      core.CoordinateSpace
	halfWidth  float64
	halfHeight float64
	xStep      float64
	yStep      float64
}

// NewFilm creates the film for a camera and image size
func NewFilm(camera core.CoordinateSpace, width, height int) Film {
	halfWidth, halfHeight := 1.0, 1.0
	if width > height {
		halfHeight = float64(height) / float64(width)
	} else if height > width {
		halfWidth = float64(width) / float64(height)
	}

	center := camera.Origin.Add(camera.ZAxis.Multiply(FieldOfViewDistance))
	return Film{
		camera:     camera,
		plane:      camera.Translate(center),
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		xStep:      2 / float64(width),
		yStep:      2 / float64(height),
	}
}

// Ray returns the camera ray through pixel (x, y). Row 0 is the top of the
// film.
func (f Film) Ray(x, y int) core.Ray {
	filmX := -1 + float64(x)*f.xStep
	filmY := 1 - float64(y)*f.yStep

	point := f.plane.Point(f.halfWidth*filmX, f.halfHeight*filmY, 0)
	return core.NewRay(f.camera.Origin, point.Subtract(f.camera.Origin).Normalize())
}
