package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-phong-raytracer/log"
	"github.com/df07/go-phong-raytracer/pkg/output"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Server exposes the raytracer over HTTP
type Server struct {
	port   int
	echo   *echo.Echo
	logger log.Logger
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{
		port:   port,
		echo:   echo.New(),
		logger: log.New("web"),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(corsMiddleware)

	// API endpoints
	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/system", s.handleSystem)
	s.echo.GET("/api/scenes", s.handleScenes)
	s.echo.GET("/api/scene-config", s.handleSceneConfig)
	s.echo.GET("/api/render", s.handleRender)
	s.echo.GET("/api/frame", s.handleFrame)
	s.echo.GET("/api/inspect", s.handleInspect)
	return s
}

// Handler returns the HTTP handler serving every endpoint
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until the server is shut down
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Noticef("starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for active ones to finish
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SceneSummary describes a built-in scene
type SceneSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Contents    string `json:"contents"`
}

func (s *Server) handleScenes(c echo.Context) error {
	var summaries []SceneSummary
	for _, info := range scene.List() {
		world, err := scene.Builtin(info.Name)
		if err != nil {
			return errorJSON(c, http.StatusInternalServerError, err.Error())
		}
		summaries = append(summaries, SceneSummary{
			Name:        info.Name,
			Description: info.Description,
			Contents:    world.String(),
		})
	}
	return c.JSON(http.StatusOK, summaries)
}

// handleSceneConfig returns a scene in scene file form together with the
// request parameter limits
func (s *Server) handleSceneConfig(c echo.Context) error {
	sceneName := c.QueryParam("scene")
	if sceneName == "" {
		sceneName = defaultScene
	}

	world, err := scene.Builtin(sceneName)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	response := map[string]interface{}{
		"scene":   sceneName,
		"config":  scene.NewFileConfig(world),
		"formats": output.Formats(),
		"defaults": map[string]int{
			"width":  defaultWidth,
			"height": defaultHeight,
			"depth":  defaultDepth,
		},
		"limits": map[string]interface{}{
			"width":   map[string]int{"min": minSize, "max": maxSize},
			"height":  map[string]int{"min": minSize, "max": maxSize},
			"depth":   map[string]int{"min": 0, "max": maxDepth},
			"workers": map[string]int{"min": 0, "max": maxWorkers},
			"yaw":     map[string]float64{"min": -360, "max": 360},
			"pitch":   map[string]float64{"min": -89, "max": 89},
		},
	}
	return c.JSON(http.StatusOK, response)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
