package renderer

import (
	"time"

	"github.com/google/uuid"
)

// BandStats describes the work done by one band worker
type BandStats struct {
	Index        int
	MinY, MaxY   int
	FramePercent float64 // Share of the frame rows covered by the band
	RenderTime   time.Duration
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	ID         uuid.UUID // Unique id of this render
	Width      int
	Height     int
	Workers    int
	Bands      []BandStats
	RenderTime time.Duration // Wall clock time for the whole frame
}

// TotalPixels returns the number of pixels rendered
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// SlowestBand returns the band that took the longest
func (s RenderStats) SlowestBand() (BandStats, bool) {
	if len(s.Bands) == 0 {
		return BandStats{}, false
	}
	slowest := s.Bands[0]
	for _, b := range s.Bands[1:] {
		if b.RenderTime > slowest.RenderTime {
			slowest = b
		}
	}
	return slowest, true
}
