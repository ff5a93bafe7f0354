package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Vec is a vector written as a JSON array [x, y, z]
type Vec [3]float64

func (v Vec) vec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

func toVec(v core.Vec3) Vec { return Vec{v.X, v.Y, v.Z} }

// RGB is a color written as a JSON array [r, g, b]
type RGB [3]uint8

func (c RGB) color() core.Color { return core.NewColor(c[0], c[1], c[2]) }

func toRGB(c core.Color) RGB { return RGB{c.R, c.G, c.B} }

// FileConfig is the on-disk JSON representation of a world
type FileConfig struct {
	Limits     *LimitsConfig  `json:"limits,omitempty"`
	Background RGB            `json:"background"`
	Camera     CameraConfig   `json:"camera"`
	Planes     []PlaneConfig  `json:"planes,omitempty"`
	Spheres    []SphereConfig `json:"spheres,omitempty"`
	Lights     []LightConfig  `json:"lights,omitempty"`
}

// LimitsConfig overrides the default capacity limits. Zero means unbounded.
type LimitsConfig struct {
	MaxPlanes  int `json:"maxPlanes"`
	MaxSpheres int `json:"maxSpheres"`
	MaxLights  int `json:"maxLights"`
}

// CameraConfig describes the camera as a look-at triple
type CameraConfig struct {
	Origin Vec `json:"origin"`
	LookAt Vec `json:"lookAt"`
	Up     Vec `json:"up"`
}

type MaterialConfig struct {
	Color       RGB     `json:"color"`
	Diffuse     float64 `json:"diffuse"`
	Specular    float64 `json:"specular"`
	Shininess   float64 `json:"shininess"`
	Reflectance float64 `json:"reflectance,omitempty"`
}

type PlaneConfig struct {
	Normal   Vec            `json:"normal"`
	Distance float64        `json:"distance"`
	Material MaterialConfig `json:"material"`
}

type SphereConfig struct {
	Center   Vec            `json:"center"`
	Radius   float64        `json:"radius"`
	Material MaterialConfig `json:"material"`
}

type LightConfig struct {
	Position  Vec     `json:"position"`
	Intensity float64 `json:"intensity"`
}

func (m MaterialConfig) material() core.Material {
	return core.Material{
		Color:                m.Color.color(),
		DiffuseContribution:  m.Diffuse,
		SpecularContribution: m.Specular,
		SpecularExponent:     m.Shininess,
		Reflectance:          m.Reflectance,
	}
}

func toMaterialConfig(m core.Material) MaterialConfig {
	return MaterialConfig{
		Color:       toRGB(m.Color),
		Diffuse:     m.DiffuseContribution,
		Specular:    m.SpecularContribution,
		Shininess:   m.SpecularExponent,
		Reflectance: m.Reflectance,
	}
}

// Build creates a world from the config, enforcing its limits
func (fc *FileConfig) Build() (*World, error) {
	limits := DefaultLimits()
	if fc.Limits != nil {
		limits = Limits{
			MaxPlanes:  fc.Limits.MaxPlanes,
			MaxSpheres: fc.Limits.MaxSpheres,
			MaxLights:  fc.Limits.MaxLights,
		}
	}

	b := &builder{world: NewWorld(limits)}
	b.world.Background = fc.Background.color()
	b.world.SetCamera(LookAt(fc.Camera.Origin.vec3(), fc.Camera.LookAt.vec3(), fc.Camera.Up.vec3()))

	for _, p := range fc.Planes {
		b.plane(p.Normal.vec3(), p.Distance, p.Material.material())
	}
	for _, s := range fc.Spheres {
		b.sphere(s.Center.vec3(), s.Radius, s.Material.material())
	}
	for _, l := range fc.Lights {
		b.light(l.Position.vec3(), l.Intensity)
	}

	world, err := b.done()
	if err != nil {
		return nil, err
	}
	if err := world.Validate(); err != nil {
		return nil, err
	}
	return world, nil
}

// NewFileConfig converts a world into its on-disk form
func NewFileConfig(w *World) FileConfig {
	limits := w.Limits()
	fc := FileConfig{
		Limits: &LimitsConfig{
			MaxPlanes:  limits.MaxPlanes,
			MaxSpheres: limits.MaxSpheres,
			MaxLights:  limits.MaxLights,
		},
		Background: toRGB(w.Background),
		Camera: CameraConfig{
			Origin: toVec(w.Camera.Origin),
			LookAt: toVec(w.Camera.Origin.Add(w.Camera.ZAxis)),
			Up:     toVec(w.Camera.YAxis),
		},
	}
	for _, p := range w.Planes {
		fc.Planes = append(fc.Planes, PlaneConfig{
			Normal:   toVec(p.Normal),
			Distance: p.Distance,
			Material: toMaterialConfig(p.Material),
		})
	}
	for _, s := range w.Spheres {
		fc.Spheres = append(fc.Spheres, SphereConfig{
			Center:   toVec(s.Center),
			Radius:   s.Radius,
			Material: toMaterialConfig(s.Material),
		})
	}
	for _, l := range w.Lights {
		fc.Lights = append(fc.Lights, LightConfig{
			Position:  toVec(l.Position),
			Intensity: l.Intensity,
		})
	}
	return fc
}

// Decode reads a JSON world
func Decode(r io.Reader) (*World, error) {
	var fc FileConfig
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return fc.Build()
}

// Encode writes a world as indented JSON
func Encode(w io.Writer, world *World) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewFileConfig(world)); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// Load reads a world from a JSON file
func Load(path string) (*World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Save writes a world to a JSON file
func Save(path string, world *World) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	if err := Encode(f, world); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
