package server

import (
	"fmt"
	"net/url"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Request defaults and limits
const (
	defaultScene  = "default"
	defaultWidth  = 400
	defaultHeight = 300
	defaultDepth  = integrator.DefaultMaxDepth
	minSize       = 16
	maxSize       = 2000
	maxDepth      = 10
	maxWorkers    = 256
)

// Cameras orbit around the world origin
var orbitTarget = core.Vec3{}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string  `json:"scene"`   // Built-in scene name
	Width   int     `json:"width"`   // Image width
	Height  int     `json:"height"`  // Image height
	Workers int     `json:"workers"` // Row bands rendered in parallel, 0 for every CPU
	Depth   int     `json:"depth"`   // Maximum reflection depth
	Yaw     float64 `json:"yaw"`     // Camera orbit around the origin, degrees
	Pitch   float64 `json:"pitch"`   // Camera elevation change, degrees
}

// parseRenderRequest parses the scene parameters shared by every render
// and inspect endpoint
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = defaultScene
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", defaultWidth, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", defaultHeight, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(values, "workers", 0, 0, maxWorkers); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(values, "depth", defaultDepth, 0, maxDepth); err != nil {
		return nil, err
	}
	if req.Yaw, err = parseFloatParam(values, "yaw", 0, -360, 360); err != nil {
		return nil, err
	}
	if req.Pitch, err = parseFloatParam(values, "pitch", 0, -89, 89); err != nil {
		return nil, err
	}
	return req, nil
}

// createWorld builds the requested scene and applies the camera orbit
func createWorld(req *RenderRequest) (*scene.World, error) {
	world, err := scene.Builtin(req.Scene)
	if err != nil {
		return nil, err
	}
	if req.Yaw != 0 || req.Pitch != 0 {
		world.SetCamera(scene.OrbitAround(world.Camera, orbitTarget, req.Yaw, req.Pitch))
	}
	if err := world.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", req.Scene, err)
	}
	return world, nil
}
