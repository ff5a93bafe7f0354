package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// Palette used by the built-in scenes
var (
	AliceBlue   = core.NewColor(240, 248, 255)
	Redish      = core.NewColor(203, 65, 84)
	AeroBlue    = core.NewColor(124, 185, 232)
	LightPurple = core.NewColor(124, 105, 232)
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       func() (*World, error)
}

var builtins = map[string]SceneInfo{
	"default": {
		Name:        "default",
		Description: "five spheres over a ground plane lit by three point lights",
		build:       NewDefaultScene,
	},
	"single-sphere": {
		Name:        "single-sphere",
		Description: "one matte sphere of radius 3 at the origin under an overhead light",
		build:       NewSingleSphereScene,
	},
	"mirror": {
		Name:        "mirror",
		Description: "two facing mirror spheres above a plane",
		build:       NewMirrorScene,
	},
	"shadow": {
		Name:        "shadow",
		Description: "a sphere casting a shadow onto a plane",
		build:       func() (*World, error) { return NewShadowScene(true) },
	},
}

// Builtin returns the built-in scene registered under name
func Builtin(name string) (*World, error) {
	info, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return info.build()
}

// List returns the built-in scenes sorted by name
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, info := range builtins {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// builder collects the first push error so scene literals stay readable
type builder struct {
	world *World
	err   error
}

func (b *builder) plane(normal core.Vec3, distance float64, mat core.Material) {
	if b.err == nil {
		b.err = b.world.PushPlane(geometry.NewPlane(normal, distance, mat))
	}
}

func (b *builder) sphere(center core.Vec3, radius float64, mat core.Material) {
	if b.err == nil {
		b.err = b.world.PushSphere(geometry.NewSphere(center, radius, mat))
	}
}

func (b *builder) light(position core.Vec3, intensity float64) {
	if b.err == nil {
		b.err = b.world.PushLight(Light{Position: position, Intensity: intensity})
	}
}

func (b *builder) done() (*World, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.world, nil
}

// NewDefaultScene creates five spheres over a ground plane. The spheres
// have radius √3, which is 3 when squared.
func NewDefaultScene() (*World, error) {
	b := &builder{world: NewWorld(DefaultLimits())}
	b.world.Background = AliceBlue
	b.world.SetCamera(LookAt(core.NewVec3(0, 6, -8), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)))

	radius := math.Sqrt(3)

	b.sphere(core.NewVec3(0, 0, 0), radius, core.Material{
		Color: Redish, SpecularContribution: 0.1, DiffuseContribution: 0.9, SpecularExponent: 10,
	})
	b.sphere(core.NewVec3(-3, 0, 4), radius, core.Material{
		Color: AeroBlue, SpecularContribution: 0.4, DiffuseContribution: 0.7, SpecularExponent: 50,
	})
	b.sphere(core.NewVec3(-4, 2, 0), radius, core.Material{
		Color: LightPurple, SpecularContribution: 0.2, DiffuseContribution: 0.8, SpecularExponent: 70,
	})
	b.sphere(core.NewVec3(4, 2, 0), radius, core.Material{
		Color: core.White, SpecularExponent: 100, Reflectance: 0.8,
	})
	b.sphere(core.NewVec3(2, 0, 5), radius, core.Material{
		Color: core.Black, SpecularExponent: 100, Reflectance: 0.8,
	})

	b.plane(core.NewVec3(0, 1, 0), -7, core.Material{
		Color: AliceBlue, SpecularContribution: 0.3, DiffuseContribution: 0.7, SpecularExponent: 20, Reflectance: 0.1,
	})

	b.light(core.NewVec3(-7, 15, -7), 1.5)
	b.light(core.NewVec3(27, 15, 10), 1.5)
	b.light(core.NewVec3(0, -15, 0), 1.5)

	return b.done()
}

// NewSingleSphereScene creates a matte sphere of radius 3 at the origin
// seen by a camera on the -Z axis looking down +Z
func NewSingleSphereScene() (*World, error) {
	b := &builder{world: NewWorld(DefaultLimits())}
	b.world.Background = AliceBlue
	b.world.SetCamera(LookAt(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)))

	b.sphere(core.NewVec3(0, 0, 0), 3, core.Material{
		Color: Redish, DiffuseContribution: 1, SpecularExponent: 10,
	})
	b.light(core.NewVec3(0, 20, -5), 1)

	return b.done()
}

// NewMirrorScene creates two fully reflective spheres facing each other
func NewMirrorScene() (*World, error) {
	b := &builder{world: NewWorld(DefaultLimits())}
	b.world.Background = AliceBlue
	b.world.SetCamera(LookAt(core.NewVec3(0, 2, -12), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)))

	b.sphere(core.NewVec3(-2.5, 0, 0), 2, core.Material{
		Color: core.Black, SpecularContribution: 0.2, SpecularExponent: 80, Reflectance: 1,
	})
	b.sphere(core.NewVec3(2.5, 0, 0), 2, core.Material{
		Color: core.Black, SpecularContribution: 0.2, SpecularExponent: 80, Reflectance: 1,
	})
	b.plane(core.NewVec3(0, 1, 0), -2, core.Material{
		Color: AeroBlue, DiffuseContribution: 0.8, SpecularExponent: 10,
	})
	b.light(core.NewVec3(0, 15, -10), 1.2)

	return b.done()
}

// NewShadowScene creates a ground plane lit from straight above. With
// occluder set, a sphere hangs between the light and the plane.
func NewShadowScene(occluder bool) (*World, error) {
	b := &builder{world: NewWorld(DefaultLimits())}
	b.world.Background = core.Black
	b.world.SetCamera(LookAt(core.NewVec3(0, 8, -10), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)))

	b.plane(core.NewVec3(0, 1, 0), 0, core.Material{
		Color: core.White, DiffuseContribution: 0.8, SpecularExponent: 10,
	})
	if occluder {
		b.sphere(core.NewVec3(0, 3, 0), 1, core.Material{
			Color: Redish, DiffuseContribution: 0.9, SpecularExponent: 10,
		})
	}
	b.light(core.NewVec3(0, 10, 0), 1)

	return b.done()
}
