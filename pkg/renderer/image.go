package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Image is a row-major buffer of colors, one entry per pixel. It satisfies
// image.Image so it can be handed straight to the standard encoders.
type Image struct {
	Width  int
	Height int
	Pix    []core.Color
}

// NewImage allocates a width x height image filled with black
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]core.Color, width*height),
	}, nil
}

// Pixel returns the color at (x, y)
func (img *Image) Pixel(x, y int) core.Color {
	return img.Pix[y*img.Width+x]
}

// Set writes the color at (x, y)
func (img *Image) Set(x, y int, c core.Color) {
	img.Pix[y*img.Width+x] = c
}

// Row returns the pixels of row y
func (img *Image) Row(y int) []core.Color {
	return img.Pix[y*img.Width : (y+1)*img.Width]
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements image.Image
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return color.RGBA{}
	}
	return img.Pixel(x, y)
}

// ToRGBA copies the image into an opaque *image.RGBA
func (img *Image) ToRGBA() *image.RGBA {
	return img.SubRGBA(img.Bounds())
}

// SubRGBA copies the part of the image inside r into an opaque *image.RGBA
// that keeps the image's coordinates
func (img *Image) SubRGBA(r image.Rectangle) *image.RGBA {
	r = r.Intersect(img.Bounds())
	rgba := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Row(y)
		for x := r.Min.X; x < r.Max.X; x++ {
			c := row[x]
			rgba.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return rgba
}
