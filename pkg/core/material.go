package core

// Material describes how a surface responds to light. The weights are
// unit-less and are not required to sum to one; Color saturation absorbs
// any overshoot.
type Material struct {
	Color                Color
	DiffuseContribution  float64
	SpecularContribution float64
	SpecularExponent     float64
	Reflectance          float64
}

// IsReflective reports whether the mirror term is large enough to trace
func (m Material) IsReflective() bool {
	return !IsZero(m.Reflectance)
}
