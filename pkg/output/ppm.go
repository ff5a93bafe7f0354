package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// MaxPPMPixels bounds the frame size DecodePPM will allocate for
const MaxPPMPixels = 1 << 26

// PPM writes binary P6 files: "P6\n<width> <height>\n255\n" followed by
// raw RGB triples in row-major order
type PPM struct{}

func (PPM) Encode(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}

	if src, ok := img.(*renderer.Image); ok {
		for _, c := range src.Pix {
			bw.Write([]byte{c.R, c.G, c.B})
		}
		return bw.Flush()
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			bw.Write([]byte{c.R, c.G, c.B})
		}
	}
	return bw.Flush()
}

// DecodePPM reads a binary P6 stream with a max value of 255. Header
// comments starting with '#' are skipped.
func DecodePPM(r io.Reader) (*renderer.Image, error) {
	br := bufio.NewReader(r)

	magic, err := headerToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: magic %q", ErrBadPPM, magic)
	}

	var fields [3]int
	for i := range fields {
		tok, err := headerToken(br)
		if err != nil {
			return nil, err
		}
		fields[i], err = strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPPM, err)
		}
	}
	width, height, maxVal := fields[0], fields[1], fields[2]
	if maxVal != 255 {
		return nil, fmt.Errorf("%w: max value %d", ErrBadPPM, maxVal)
	}

	if width > 0 && height > 0 && width > MaxPPMPixels/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrBadPPM, width, height, MaxPPMPixels)
	}

	img, err := renderer.NewImage(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPPM, err)
	}

	raw := make([]byte, 3*width*height)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("%w: pixel data: %v", ErrBadPPM, err)
	}
	for i := range img.Pix {
		img.Pix[i] = core.NewColor(raw[3*i], raw[3*i+1], raw[3*i+2])
	}
	return img, nil
}

// headerToken returns the next whitespace separated header field and
// consumes the single whitespace byte that ends it
func headerToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", fmt.Errorf("%w: header: %v", ErrBadPPM, err)
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: header: %v", ErrBadPPM, err)
			}
		case isSpace(b):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
