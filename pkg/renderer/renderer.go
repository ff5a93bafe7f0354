package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Config contains configuration for band rendering
type Config struct {
	Workers int // Number of row bands rendered in parallel (0 = use CPU count)

	// OnBand, if set, is called from the worker goroutine as soon as its
	// band is finished. Calls for different bands may run concurrently.
	OnBand func(BandStats, *Image)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Workers: 0, // Auto-detect CPU count
	}
}

// Renderer renders a world into an image by splitting it into row bands,
// one per worker. The world is shared read-only by all workers.
type Renderer struct {
	world      *scene.World
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRenderer creates a new renderer
func NewRenderer(world *scene.World, integratorInst integrator.Integrator, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{
		world:      world,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// Workers returns the number of workers a render will use
func (r *Renderer) Workers() int {
	if r.config.Workers <= 0 {
		return runtime.NumCPU()
	}
	return r.config.Workers
}

// Render fills every pixel of img. Each band is written by exactly one
// goroutine and bands never overlap, so the image needs no locking. The
// context is only consulted before the workers start; a started render
// always runs to completion.
func (r *Renderer) Render(ctx context.Context, img *Image) (RenderStats, error) {
	if r.world == nil {
		return RenderStats{}, ErrNilWorld
	}
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return RenderStats{}, ErrInvalidDimensions
	}
	if err := ctx.Err(); err != nil {
		return RenderStats{}, fmt.Errorf("renderer: render not started: %w", err)
	}

	bands := Bands(img.Width, img.Height, r.Workers())
	stats := RenderStats{
		ID:      uuid.New(),
		Width:   img.Width,
		Height:  img.Height,
		Workers: len(bands),
		Bands:   make([]BandStats, len(bands)),
	}

	r.logger.Printf("Render %s: %dx%d, %s, %d bands\n",
		stats.ID, img.Width, img.Height, r.world, len(bands))

	film := NewFilm(r.world.Camera, img.Width, img.Height)
	start := time.Now()

	var g errgroup.Group
	for _, band := range bands {
		band := band
		g.Go(func() error {
			bandStart := time.Now()
			r.RenderBand(film, band, img)
			// Each worker owns its own stats slot
			stats.Bands[band.Index] = BandStats{
				Index:        band.Index,
				MinY:         band.Bounds.Min.Y,
				MaxY:         band.Bounds.Max.Y,
				FramePercent: 100 * float64(band.Bounds.Dy()) / float64(img.Height),
				RenderTime:   time.Since(bandStart),
			}
			if r.config.OnBand != nil {
				r.config.OnBand(stats.Bands[band.Index], img)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	stats.RenderTime = time.Since(start)
	r.logger.Printf("Render %s: completed in %v\n", stats.ID, stats.RenderTime)
	return stats, nil
}

// RenderBand shades every pixel inside the band bounds
func (r *Renderer) RenderBand(film Film, band Band, img *Image) {
	for y := band.Bounds.Min.Y; y < band.Bounds.Max.Y; y++ {
		row := img.Row(y)
		for x := band.Bounds.Min.X; x < band.Bounds.Max.X; x++ {
			row[x] = r.integrator.RayColor(film.Ray(x, y), r.world)
		}
	}
}

// RenderWorld is a convenience wrapper that allocates the image, renders
// the world with the Phong integrator and returns both
func RenderWorld(ctx context.Context, world *scene.World, width, height int, config Config, logger core.Logger) (*Image, RenderStats, error) {
	img, err := NewImage(width, height)
	if err != nil {
		return nil, RenderStats{}, err
	}
	r := NewRenderer(world, integrator.NewPhongIntegrator(), config, logger)
	stats, err := r.Render(ctx, img)
	if err != nil {
		return nil, stats, err
	}
	return img, stats, nil
}
