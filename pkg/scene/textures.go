package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTexturesScene lines up shapes showing UV-mapped and spatial textures.
// opts.Texture replaces the checkerboard on the right-hand panel.
func NewTexturesScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      800,
		SamplesPerPixel: 100,
		VFov:            50,
		LookFrom:        core.NewVec3(0, 2, 10),
		LookAt:          core.NewVec3(0, 1, 0),
		VUp:             core.NewVec3(0, 1, 0),
		FocusDist:       10,
	}
	integratorConfig := integrator.IntegratorConfig{
		MaxDepth:         10,
		BackgroundTop:    core.NewVec3(0.3, 0.4, 0.6),
		BackgroundBottom: core.NewVec3(0.2, 0.2, 0.2),
	}

	s := newScene("textures", cameraConfig, integratorConfig)

	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.2, 0.8),
	)
	brick := material.NewCheckerboardTexture(512, 512, 16,
		core.NewVec3(0.7, 0.3, 0.1),
		core.NewVec3(0.5, 0.2, 0.05),
	)
	solidChecker := material.NewCheckerTexture(0.25,
		core.NewVec3(0.1, 0.1, 0.1),
		core.NewVec3(0.8, 0.8, 0.2),
	)

	var panelTexture material.ColorSource = checkerboard
	if opts.Texture != nil {
		panelTexture = opts.Texture
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(-3, 1, 0), 1, material.NewTexturedLambertian(checkerboard)),
		geometry.NewTranslate(
			geometry.NewRotateY(geometry.NewBox(core.NewVec3(-0.8, 0, -0.8), core.NewVec3(0.8, 1.6, 0.8), material.NewTexturedLambertian(solidChecker)), 30),
			core.NewVec3(0, 0, 0.5),
		),
		geometry.NewQuad(core.NewVec3(2, 0, 0.2), core.NewVec3(2, 0, -0.3), core.NewVec3(0, 2, 0), material.NewTexturedLambertian(panelTexture)),
		NewGroundQuad(core.NewVec3(0, 0, 2.5), 20, material.NewTexturedLambertian(brick)),
	)

	// Round area light above and in front of the row
	s.AddLight(geometry.NewSphere(core.NewVec3(0, 8, 5), 2, material.NewEmissive(core.NewVec3(20, 20, 20))))

	return s
}
