package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewSphereLightScene creates a single diffuse sphere on a ground quad lit by
// one quad light, with a dim sky
func NewSphereLightScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 64,
		VFov:            30,
		LookFrom:        core.NewVec3(0, 2, 9),
		LookAt:          core.NewVec3(0, 1, 0),
		VUp:             core.NewVec3(0, 1, 0),
		FocusDist:       9,
	}
	integratorConfig := integrator.IntegratorConfig{
		MaxDepth:         20,
		BackgroundTop:    core.NewVec3(0.05, 0.07, 0.1),
		BackgroundBottom: core.NewVec3(0.01, 0.01, 0.01),
	}

	s := newScene("sphere-light", cameraConfig, integratorConfig)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 40, ground))

	sphereAlbedo := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.2))
	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, sphereAlbedo))

	// 2x2 light facing down
	s.AddQuadLight(
		core.NewVec3(-1, 4, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(8, 8, 8),
	)

	return s
}
