package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates an outdoor scene: a checkered ground, spheres of each
// material under a sky gradient, a bouncing sphere with motion blur and a small
// quad light. opts.Texture, when set, is wrapped around the center sphere.
func NewDefaultScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		VFov:            40,
		LookFrom:        core.NewVec3(0, 0.75, 2),
		LookAt:          core.NewVec3(0, 0.5, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0.6,
		FocusDist:       3.01, // Distance to the center sphere
	}
	integratorConfig := integrator.IntegratorConfig{
		MaxDepth:         50,
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0),
	}

	s := newScene("default", cameraConfig, integratorConfig)

	checker := material.NewCheckerTexture(0.32,
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	)
	s.Add(NewGroundQuad(core.NewVec3(0, 0, -1), 100, material.NewTexturedLambertian(checker)))

	var centerMaterial material.Material = material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	if opts.Texture != nil {
		centerMaterial = material.NewTexturedLambertian(opts.Texture)
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, centerMaterial),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.4, material.NewDielectric(1.0/1.5)), // hollow glass
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
		geometry.NewMovingSphere(core.NewVec3(0.5, 0.2, 0), core.NewVec3(0.5, 0.35, 0), 0.2,
			material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))),
	)

	// Small warm lamp above and behind the camera's focus
	s.AddQuadLight(
		core.NewVec3(-0.5, 2.5, -1.5),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(6, 5, 4),
	)

	return s
}
