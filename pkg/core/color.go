package core

import "math"

// Color is an 8-bit-per-channel RGB color. Arithmetic saturates at 255.
type Color struct {
	R, G, B uint8
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum, saturating at 255
func (c Color) Add(other Color) Color {
	return Color{
		R: addChannel(c.R, other.R),
		G: addChannel(c.G, other.G),
		B: addChannel(c.B, other.B),
	}
}

// Scale multiplies every channel by f and clamps the result to [0, 255]
func (c Color) Scale(f float64) Color {
	return Color{
		R: scaleChannel(c.R, f),
		G: scaleChannel(c.G, f),
		B: scaleChannel(c.B, f),
	}
}

// RGBA implements image/color.Color with an opaque alpha channel
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func addChannel(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func scaleChannel(v uint8, f float64) uint8 {
	scaled := f * float64(v)
	// NaN fails every comparison and lands on 0
	if !(scaled > 0) {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(math.Floor(scaled))
}
