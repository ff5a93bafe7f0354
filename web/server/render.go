package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/df07/go-phong-raytracer/log"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/output"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// SSEEvent is one server-sent event
type SSEEvent struct {
	Type string // "console", "band", "frame", "error", "complete"
	Data string // JSON-encoded data or a plain message
}

// BandUpdate is sent as soon as a row band is finished
type BandUpdate struct {
	Index        int     `json:"index"`
	MinY         int     `json:"minY"`
	MaxY         int     `json:"maxY"`
	FramePercent float64 `json:"framePercent"`
	RenderMs     int64   `json:"renderMs"`
	ImageData    string  `json:"imageData"` // Base64 encoded PNG of just this band
}

// FrameUpdate carries the finished frame
type FrameUpdate struct {
	RenderID  string `json:"renderId"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Workers   int    `json:"workers"`
	Bands     int    `json:"bands"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	ElapsedMs int64  `json:"elapsedMs"`
}

// newRenderer wires the Phong integrator to the requested settings
func newRenderer(world *scene.World, req *RenderRequest, onBand func(renderer.BandStats, *renderer.Image), logger core.Logger) *renderer.Renderer {
	phong := integrator.NewPhongIntegrator()
	phong.MaxDepth = req.Depth
	config := renderer.Config{Workers: req.Workers, OnBand: onBand}
	return renderer.NewRenderer(world, phong, config, logger)
}

// handleFrame renders a frame and returns it as a single image. The format
// query parameter picks the encoding (png by default).
func (s *Server) handleFrame(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	format := strings.ToLower(c.QueryParam("format"))
	if format == "" {
		format = "png"
	}
	enc, err := output.ForPath("frame." + format)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	world, err := createWorld(req)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	img, err := renderer.NewImage(req.Width, req.Height)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	stats, err := newRenderer(world, req, nil, log.Printer{Logger: s.logger, Level: log.Info}).Render(c.Request().Context(), img)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Render error: "+err.Error())
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set("X-Render-Id", stats.ID.String())
	c.Response().Header().Set("X-Render-Time", stats.RenderTime.String())
	return c.Blob(http.StatusOK, contentTypes[format], buf.Bytes())
}

var contentTypes = map[string]string{
	"png":  "image/png",
	"bmp":  "image/bmp",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"ppm":  "image/x-portable-pixmap",
}

// handleRender renders a frame and streams its progress as server-sent
// events: console lines, one band event per finished band, then the frame
func (s *Server) handleRender(c echo.Context) error {
	s.setSSEHeaders(c)
	c.Response().WriteHeader(http.StatusOK)

	ctx := c.Request().Context()

	// All writes to the response happen on a single goroutine
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, c.Response(), sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: "Invalid request: " + err.Error()})
		return nil
	}

	world, err := createWorld(req)
	if err != nil {
		sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: err.Error()})
		return nil
	}

	img, err := renderer.NewImage(req.Width, req.Height)
	if err != nil {
		sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: err.Error()})
		return nil
	}

	// Setup console logging and streaming
	consoleChan := make(chan ConsoleMessage, 50)
	var streamer sync.WaitGroup
	streamer.Add(1)
	go func() {
		defer streamer.Done()
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()
	webLogger := NewWebLogger(uuid.NewString(), consoleChan, s.logger)

	onBand := func(band renderer.BandStats, frame *renderer.Image) {
		update := BandUpdate{
			Index:        band.Index,
			MinY:         band.MinY,
			MaxY:         band.MaxY,
			FramePercent: band.FramePercent,
			RenderMs:     band.RenderTime.Milliseconds(),
		}
		// Each band only reads the rows it has just written
		rows := image.Rect(0, band.MinY, frame.Width, band.MaxY)
		data, encErr := imageToBase64PNG(frame.SubRGBA(rows))
		if encErr != nil {
			s.logger.Warningf("encode band %d: %v", band.Index, encErr)
			return
		}
		update.ImageData = data
		sendJSON(ctx, sseEventChan, "band", update)
	}

	startTime := time.Now()
	stats, err := newRenderer(world, req, onBand, webLogger).Render(ctx, img)

	close(consoleChan)
	streamer.Wait()

	if err != nil {
		sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: "Render error: " + err.Error()})
		return nil
	}

	frameData, err := imageToBase64PNG(img.ToRGBA())
	if err != nil {
		sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: "Failed to encode image: " + err.Error()})
		return nil
	}
	sendJSON(ctx, sseEventChan, "frame", FrameUpdate{
		RenderID:  stats.ID.String(),
		Width:     stats.Width,
		Height:    stats.Height,
		Workers:   stats.Workers,
		Bands:     len(stats.Bands),
		ImageData: frameData,
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
	sendEvent(ctx, sseEventChan, SSEEvent{Type: "complete", Data: "Rendering completed"})
	return nil
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(c echo.Context) {
	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
}

// writeSSEEvents writes events until the channel is closed. Once the client
// has gone away the remaining events are drained without writing.
func (s *Server) writeSSEEvents(ctx context.Context, w *echo.Response, sseEventChan <-chan SSEEvent) {
	for event := range sseEventChan {
		if ctx.Err() != nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			continue
		}
		w.Flush()
	}
}

// streamConsoleMessages forwards render log lines until consoleChan is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		sendJSON(ctx, sseEventChan, "console", consoleMsg)
	}
}

func sendJSON(ctx context.Context, sseEventChan chan<- SSEEvent, eventType string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: err.Error()})
		return
	}
	sendEvent(ctx, sseEventChan, SSEEvent{Type: eventType, Data: string(data)})
}

func sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, event SSEEvent) {
	select {
	case sseEventChan <- event:
	case <-ctx.Done():
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
