package core

import "math"

// CoordinateSpace is an origin with three basis axes. The axes are expected
// to be orthonormal; nothing here checks it.
type CoordinateSpace struct {
	Origin Vec3
	XAxis  Vec3
	YAxis  Vec3
	ZAxis  Vec3
}

// Point returns the world-space position of the coordinates (x, y, z)
// expressed in this space: origin + x·X + y·Y + z·Z.
func (cs CoordinateSpace) Point(x, y, z float64) Vec3 {
	return cs.Origin.
		Add(cs.XAxis.Multiply(x)).
		Add(cs.YAxis.Multiply(y)).
		Add(cs.ZAxis.Multiply(z))
}

// Translate returns the same basis moved to a new origin
func (cs CoordinateSpace) Translate(origin Vec3) CoordinateSpace {
	cs.Origin = origin
	return cs
}

// IsOrthonormal reports whether all three axes have unit length and are
// mutually perpendicular within tol.
func (cs CoordinateSpace) IsOrthonormal(tol float64) bool {
	for _, axis := range []Vec3{cs.XAxis, cs.YAxis, cs.ZAxis} {
		if math.Abs(axis.Length()-1) > tol {
			return false
		}
	}
	return math.Abs(cs.XAxis.Dot(cs.YAxis)) <= tol &&
		math.Abs(cs.YAxis.Dot(cs.ZAxis)) <= tol &&
		math.Abs(cs.ZAxis.Dot(cs.XAxis)) <= tol
}
