package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// shadowOffset matches the offset the shading engine uses for shadow rays
const shadowOffset = 1e-3

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	VisibleLight []int                  `json:"visibleLights"` // Indices of the lights not in shadow
	PixelColor   string                 `json:"pixelColor"`    // Shaded color of the pixel
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecJSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func colorHex(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// extractMaterialInfo describes a material
func extractMaterialInfo(mat core.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"color":     colorHex(mat.Color),
		"diffuse":   mat.DiffuseContribution,
		"specular":  mat.SpecularContribution,
		"shininess": mat.SpecularExponent,
	}
	if mat.IsReflective() {
		properties["reflectance"] = mat.Reflectance
		return "reflective", properties
	}
	return "phong", properties
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecJSON(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["normal"] = vecJSON(geom.Normal)
		properties["distance"] = geom.Distance
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// visibleLights returns the indices of the lights that reach point
// unobstructed
func visibleLights(world *scene.World, point core.Vec3) []int {
	visible := []int{}
	for i, light := range world.Lights {
		dir := light.Position.Subtract(point).Normalize()
		if !integrator.Occluded(core.Offset(point, dir, shadowOffset), world) {
			visible = append(visible, i)
		}
	}
	return visible
}

// inspectPixel casts the camera ray through a pixel and describes the first
// object it hits
func inspectPixel(world *scene.World, req *RenderRequest, pixelX, pixelY int) InspectResponse {
	ray := renderer.NewFilm(world.Camera, req.Width, req.Height).Ray(pixelX, pixelY)

	phong := integrator.NewPhongIntegrator()
	phong.MaxDepth = req.Depth
	response := InspectResponse{
		PixelColor:   colorHex(phong.RayColor(ray, world)),
		VisibleLight: []int{},
	}

	hit := integrator.Intersect(ray, world)
	if !hit.Hit {
		return response
	}

	materialType, materialProps := extractMaterialInfo(hit.Material)
	geometryType, geometryProps := extractGeometryInfo(hit.Shape)

	response.Hit = true
	response.MaterialType = materialType
	response.GeometryType = geometryType
	response.Point = vecJSON(hit.Point)
	response.Normal = vecJSON(hit.Normal)
	response.Distance = hit.Distance
	response.VisibleLight = visibleLights(world, hit.Point)
	response.Properties = map[string]interface{}{
		"material": materialProps,
		"geometry": geometryProps,
	}
	return response
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
	}

	pixelX, err := strconv.Atoi(c.QueryParam("x"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid x coordinate")
	}
	pixelY, err := strconv.Atoi(c.QueryParam("y"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid y coordinate")
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		return errorJSON(c, http.StatusBadRequest, "Pixel coordinates out of bounds")
	}

	world, err := createWorld(req)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, inspectPixel(world, req, pixelX, pixelY))
}
