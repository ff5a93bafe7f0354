// Package output writes rendered images to disk.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	ErrUnsupportedFormat = errors.New("output: unsupported image format")
	ErrBadPPM            = errors.New("output: malformed ppm")
)

// Encoder serializes an image
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// PNG encodes images with image/png
type PNG struct{}

func (PNG) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// BMP encodes uncompressed 24-bit bitmaps
type BMP struct{}

func (BMP) Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// TIFF encodes deflate-compressed TIFF files
type TIFF struct{}

func (TIFF) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

var encoders = map[string]Encoder{
	".ppm":  PPM{},
	".png":  PNG{},
	".bmp":  BMP{},
	".tif":  TIFF{},
	".tiff": TIFF{},
}

// Formats returns the supported file extensions
func Formats() []string {
	return []string{".ppm", ".png", ".bmp", ".tif", ".tiff"}
}

// ForPath picks an encoder from the file extension
func ForPath(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return enc, nil
}

// WriteFile encodes img into path, creating parent directories as needed
func WriteFile(path string, img image.Image) error {
	enc, err := ForPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
