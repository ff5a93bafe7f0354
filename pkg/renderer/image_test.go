package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestNewImage(t *testing.T) {
	img, err := NewImage(3, 2)
	require.NoError(t, err)
	assert.Len(t, img.Pix, 6)

	_, err = NewImage(0, 2)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = NewImage(2, -1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestImage_RowMajor(t *testing.T) {
	img, err := NewImage(3, 2)
	require.NoError(t, err)

	c := core.NewColor(1, 2, 3)
	img.Set(2, 1, c)
	assert.Equal(t, c, img.Pix[5])
	assert.Equal(t, c, img.Pixel(2, 1))
	assert.Equal(t, c, img.Row(1)[2])

	rgba := img.ToRGBA()
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, rgba.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, rgba.RGBAAt(0, 0))

	r, g, b, a := img.At(2, 1).RGBA()
	assert.Equal(t, []uint32{0x101, 0x202, 0x303, 0xffff}, []uint32{r, g, b, a})
	assert.Equal(t, color.RGBA{}, img.At(10, 10))
}

func TestImage_SubRGBA(t *testing.T) {
	img, err := NewImage(4, 3)
	require.NoError(t, err)
	img.Set(1, 1, core.NewColor(7, 8, 9))
	img.Set(3, 2, core.NewColor(4, 5, 6))

	sub := img.SubRGBA(image.Rect(0, 1, 4, 2))
	assert.Equal(t, image.Rect(0, 1, 4, 2), sub.Bounds())
	assert.Equal(t, color.RGBA{7, 8, 9, 255}, sub.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, sub.RGBAAt(0, 1))

	// Rectangles past the frame are clipped to it
	clipped := img.SubRGBA(image.Rect(2, 2, 10, 10))
	assert.Equal(t, image.Rect(2, 2, 4, 3), clipped.Bounds())
	assert.Equal(t, color.RGBA{4, 5, 6, 255}, clipped.RGBAAt(3, 2))
}
