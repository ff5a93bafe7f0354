package renderer

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// countingIntegrator records how often it is called and returns a color
// encoding the ray direction so pixels can be told apart
type countingIntegrator struct {
	calls atomic.Int64
}

func (c *countingIntegrator) RayColor(ray core.Ray, world *scene.World) core.Color {
	c.calls.Add(1)
	return core.White.Scale(0.5 + 0.5*ray.Direction.X)
}

type recordingLogger struct {
	lines atomic.Int64
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines.Add(1)
}

func TestRenderer_WritesEveryPixelOnce(t *testing.T) {
	world, err := scene.NewSingleSphereScene()
	require.NoError(t, err)

	img, err := NewImage(31, 17)
	require.NoError(t, err)
	sentinel := core.NewColor(1, 2, 3)
	for i := range img.Pix {
		img.Pix[i] = sentinel
	}

	mock := &countingIntegrator{}
	logger := &recordingLogger{}
	r := NewRenderer(world, mock, Config{Workers: 5}, logger)

	stats, err := r.Render(context.Background(), img)
	require.NoError(t, err)

	assert.Equal(t, int64(31*17), mock.calls.Load())
	for i, c := range img.Pix {
		assert.NotEqual(t, sentinel, c, "pixel %d was not written", i)
	}
	assert.Positive(t, logger.lines.Load())

	assert.Equal(t, 5, stats.Workers)
	assert.Equal(t, 31*17, stats.TotalPixels())
	require.Len(t, stats.Bands, 5)
	percent := 0.0
	for i, b := range stats.Bands {
		assert.Equal(t, i, b.Index)
		percent += b.FramePercent
	}
	assert.InDelta(t, 100, percent, 1e-9)
	assert.NotEqual(t, uuid.Nil, stats.ID)
	_, ok := stats.SlowestBand()
	assert.True(t, ok)
}

func TestRenderer_DefaultWorkersUseCPUCount(t *testing.T) {
	r := NewRenderer(nil, &countingIntegrator{}, DefaultConfig(), nil)
	assert.Positive(t, r.Workers())
}

func TestRenderer_Errors(t *testing.T) {
	world, err := scene.NewSingleSphereScene()
	require.NoError(t, err)
	img, err := NewImage(4, 4)
	require.NoError(t, err)

	_, err = NewRenderer(nil, &countingIntegrator{}, Config{}, nil).Render(context.Background(), img)
	assert.ErrorIs(t, err, ErrNilWorld)

	_, err = NewRenderer(world, &countingIntegrator{}, Config{}, nil).Render(context.Background(), &Image{})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mock := &countingIntegrator{}
	_, err = NewRenderer(world, mock, Config{}, nil).Render(ctx, img)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, mock.calls.Load())
}

func TestRenderer_Deterministic(t *testing.T) {
	world, err := scene.NewDefaultScene()
	require.NoError(t, err)

	first, _, err := RenderWorld(context.Background(), world, 64, 36, Config{Workers: 4}, nil)
	require.NoError(t, err)
	second, _, err := RenderWorld(context.Background(), world, 64, 36, Config{Workers: 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, first.Pix, second.Pix)

	// Band layout does not change any pixel either
	single, _, err := RenderWorld(context.Background(), world, 64, 36, Config{Workers: 1}, nil)
	require.NoError(t, err)
	odd, _, err := RenderWorld(context.Background(), world, 64, 36, Config{Workers: 7}, nil)
	require.NoError(t, err)
	assert.Equal(t, single.Pix, first.Pix)
	assert.Equal(t, single.Pix, odd.Pix)
}

func TestRenderer_SingleSphereSilhouette(t *testing.T) {
	world, err := scene.NewSingleSphereScene()
	require.NoError(t, err)
	require.Len(t, world.Spheres, 1)
	sphere := world.Spheres[0]

	const width, height = 80, 60
	img, _, err := RenderWorld(context.Background(), world, width, height, Config{Workers: 3}, nil)
	require.NoError(t, err)

	film := NewFilm(world.Camera, width, height)
	inside := map[core.Color]bool{}
	insideCount, outsideCount := 0, 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ray := film.Ray(x, y)
			// Distance from the sphere center to the ray line
			oc := sphere.Center.Subtract(ray.Origin)
			approach := oc.Cross(ray.Direction).Length()
			if math.Abs(approach-sphere.Radius) < 0.05 {
				continue
			}

			c := img.Pixel(x, y)
			if approach < sphere.Radius {
				insideCount++
				inside[c] = true
				assert.NotEqual(t, world.Background, c, "pixel (%d, %d) should be on the sphere", x, y)
				// A scaled copy of the base color keeps its channel order
				assert.GreaterOrEqual(t, c.R, c.B)
				assert.GreaterOrEqual(t, c.B, c.G)
			} else {
				outsideCount++
				assert.Equal(t, world.Background, c, "pixel (%d, %d) should be background", x, y)
			}
		}
	}

	assert.Positive(t, insideCount)
	assert.Positive(t, outsideCount)
	// Diffuse shading varies across the disk
	assert.Greater(t, len(inside), 10)
}

func TestRenderer_ShadowDarkensFloor(t *testing.T) {
	lit, err := scene.NewShadowScene(false)
	require.NoError(t, err)
	shadowed, err := scene.NewShadowScene(true)
	require.NoError(t, err)

	const width, height = 40, 40
	litImg, _, err := RenderWorld(context.Background(), lit, width, height, Config{Workers: 2}, nil)
	require.NoError(t, err)
	shadowImg, _, err := RenderWorld(context.Background(), shadowed, width, height, Config{Workers: 2}, nil)
	require.NoError(t, err)

	// Find pixels that see the floor directly under the occluder
	film := NewFilm(lit.Camera, width, height)
	darker := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			hit := integrator.Intersect(film.Ray(x, y), shadowed)
			if !hit.Hit || hit.Normal != core.NewVec3(0, 1, 0) {
				continue
			}
			p := hit.Point
			if p.X*p.X+p.Z*p.Z > 0.25 {
				continue
			}
			assert.Less(t, shadowImg.Pixel(x, y).R, litImg.Pixel(x, y).R)
			darker++
		}
	}
	assert.Positive(t, darker)
}

func TestRenderer_OnBandReportsEachBand(t *testing.T) {
	world, err := scene.NewSingleSphereScene()
	require.NoError(t, err)
	img, err := NewImage(20, 10)
	require.NoError(t, err)

	var mu sync.Mutex
	seen := map[int]BandStats{}
	config := Config{
		Workers: 4,
		OnBand: func(b BandStats, frame *Image) {
			assert.Same(t, img, frame)
			mu.Lock()
			seen[b.Index] = b
			mu.Unlock()
		},
	}

	stats, err := NewRenderer(world, &countingIntegrator{}, config, nil).Render(context.Background(), img)
	require.NoError(t, err)

	require.Len(t, seen, 4)
	for _, b := range stats.Bands {
		assert.Equal(t, b, seen[b.Index])
	}
}
