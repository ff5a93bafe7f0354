package core

// Tolerance used by the intersection and shading epsilon checks
const Tolerance = 1e-4

// IsZero reports whether v lies strictly inside (-Tolerance, Tolerance)
func IsZero(v float64) bool {
	return -Tolerance < v && v < Tolerance
}

// IsNegative reports whether v is below Tolerance, so values that are
// only barely positive also count as negative.
func IsNegative(v float64) bool {
	return v < Tolerance
}
