package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/output"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/df07/go-phong-raytracer/pkg/timing"
)

// renderOptions collects the render command flags
type renderOptions struct {
	Scene     string
	SceneFile string
	Width     int
	Height    int
	Workers   int
	Depth     int
	Out       string
	Yaw       float64
	Pitch     float64
	Target    string
	Stats     bool
}

func renderOptionsFromContext(ctx *cli.Context) renderOptions {
	return renderOptions{
		Scene:     ctx.String("scene"),
		SceneFile: ctx.String("scene-file"),
		Width:     ctx.Int("width"),
		Height:    ctx.Int("height"),
		Workers:   ctx.Int("workers"),
		Depth:     ctx.Int("depth"),
		Out:       ctx.String("out"),
		Yaw:       ctx.Float64("yaw"),
		Pitch:     ctx.Float64("pitch"),
		Target:    ctx.String("target"),
		Stats:     ctx.Bool("stats"),
	}
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderOptionsFromContext(ctx)
	if opts.Out == "" {
		opts.Out = defaultOutputPath(sceneLabel(opts.Scene, opts.SceneFile), time.Now())
	}

	stats, err := renderToFile(context.Background(), opts)
	if err != nil {
		return err
	}

	if opts.Stats {
		displayFrameStats(stats)
	}
	return nil
}

// renderToFile renders the configured scene and writes it to opts.Out
func renderToFile(ctx context.Context, opts renderOptions) (renderer.RenderStats, error) {
	if opts.Depth < 0 {
		return renderer.RenderStats{}, errors.New("depth must not be negative")
	}

	world, err := loadWorld(opts.Scene, opts.SceneFile)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	if opts.Yaw != 0 || opts.Pitch != 0 {
		target, err := parseVec(opts.Target)
		if err != nil {
			return renderer.RenderStats{}, err
		}
		world.SetCamera(scene.OrbitAround(world.Camera, target, opts.Yaw, opts.Pitch))
		logger.Infof("orbited camera to %v", world.Camera.Origin)
	}

	img, err := renderer.NewImage(opts.Width, opts.Height)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	phong := integrator.NewPhongIntegrator()
	phong.MaxDepth = opts.Depth
	r := renderer.NewRenderer(world, phong, renderer.Config{Workers: opts.Workers}, renderLogger)

	stop := timing.Measure(renderLogger, "render")
	stats, err := r.Render(ctx, img)
	stop()
	if err != nil {
		return stats, err
	}

	if _, err := timing.Func(renderLogger, "write "+opts.Out, func() error {
		return output.WriteFile(opts.Out, img)
	}); err != nil {
		return stats, err
	}
	logger.Noticef("wrote %dx%d frame to %s", img.Width, img.Height, opts.Out)
	return stats, nil
}

func frameStatsTable(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Band", "Rows", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Bands {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Index),
			fmt.Sprintf("%d-%d", stat.MinY, stat.MaxY-1),
			fmt.Sprintf("%d", stat.MaxY-stat.MinY),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}

func displayFrameStats(stats renderer.RenderStats) {
	logger.Noticef("frame statistics for render %s (%d pixels)\n%s", stats.ID, stats.TotalPixels(), frameStatsTable(stats))
	if slowest, ok := stats.SlowestBand(); ok {
		logger.Infof("slowest band %d (rows %d-%d) took %s", slowest.Index, slowest.MinY, slowest.MaxY-1, slowest.RenderTime)
	}
}
