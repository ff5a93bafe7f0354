package renderer

import "image"

// Band is a contiguous run of full image rows rendered by one worker
type Band struct {
	Index  int
	Bounds image.Rectangle
}

// Bands splits the rows of a width x height image into n contiguous bands.
// When height does not divide evenly the first height%n bands get one extra
// row. n is clamped to [1, height] so no band is empty.
func Bands(width, height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height))

	rows := height / n
	extra := height % n

	bands := make([]Band, 0, n)
	minY := 0
	for i := 0; i < n; i++ {
		h := rows
		if i < extra {
			h++
		}
		bands = append(bands, Band{
			Index:  i,
			Bounds: image.Rect(0, minY, width, minY+h),
		})
		minY += h
	}
	return bands
}
