package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewCornellScene creates the classic Cornell box with a rotated white box and
// a glass sphere. The glass sphere is part of the light set so caustic paths
// get sampled toward it.
func NewCornellScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      600,
		SamplesPerPixel: 100,
		VFov:            40.0,
		LookFrom:        core.NewVec3(278, 278, -800), // Outside the open side of the box
		LookAt:          core.NewVec3(278, 278, 0),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
	integratorConfig := integrator.IntegratorConfig{
		MaxDepth: 50,
		// Black background: all light comes from the ceiling lamp
	}

	s := newScene("cornell", cameraConfig, integratorConfig)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Standard 555x555x555 box
	const boxSize = 555.0

	rightWall := geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green)
	leftWall := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red)
	floor := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	ceiling := geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white)
	backWall := geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)
	s.Add(rightWall, leftWall, floor, ceiling, backWall)

	// Ceiling lamp, facing down, slightly below the ceiling
	s.AddQuadLight(
		core.NewVec3(343, 554, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		core.NewVec3(15, 15, 15),
	)

	// Tall box, turned toward the red wall
	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	s.Add(geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295)))

	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))
	s.AddLight(glassSphere)

	return s
}
