package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. World and Lights are
// read-only once built and may be shared by any number of workers.
type Scene struct {
	Name             string
	World            *geometry.HittableList // Objects in the scene
	Lights           *geometry.HittableList // Shapes sampled by the light PDF, also present in World
	CameraConfig     renderer.CameraConfig
	IntegratorConfig integrator.IntegratorConfig
}

// Options carries optional inputs some scenes make use of
type Options struct {
	Texture *material.ImageTexture // Image mapped onto a feature sphere, if the scene has one
}

type builder func(opts Options) *Scene

var builders = map[string]builder{
	"cornell":      NewCornellScene,
	"sphere-light": NewSphereLightScene,
	"default":      NewDefaultScene,
	"spheregrid":   NewSphereGridScene,
	"textures":     NewTexturesScene,
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the named scene
func Create(name string, opts Options) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return build(opts), nil
}

func newScene(name string, cameraConfig renderer.CameraConfig, integratorConfig integrator.IntegratorConfig) *Scene {
	return &Scene{
		Name:             name,
		World:            geometry.NewHittableList(),
		Lights:           geometry.NewHittableList(),
		CameraConfig:     cameraConfig,
		IntegratorConfig: integratorConfig,
	}
}

// Add appends objects to the world
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.World.Add(objects...)
}

// AddLight adds a shape to both the world and the light set
func (s *Scene) AddLight(object geometry.Hittable) {
	s.World.Add(object)
	s.Lights.Add(object)
}

// AddQuadLight adds an emissive quad to the world and the light set
func (s *Scene) AddQuadLight(corner, u, v, emission core.Vec3) *geometry.Quad {
	light := geometry.NewQuad(corner, u, v, material.NewEmissive(emission))
	s.AddLight(light)
	return light
}

// NewGroundQuad creates a large horizontal quad centered at center with normal +Y
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) points up
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}
