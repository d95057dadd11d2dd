package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// oklchToLinear converts an OKLCH color to clamped linear RGB.
// l: lightness (0-1), c: chroma (0-0.4), h: hue in degrees
func oklchToLinear(l, c, h float64) core.Vec3 {
	hRad := core.DegreesToRadians(h)
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB -> cone response, cubed
	lc := math.Pow(l+0.3963377774*a+0.2158037573*b, 3)
	mc := math.Pow(l-0.1055613458*a-0.0638541728*b, 3)
	sc := math.Pow(l-0.0894841775*a-1.2914855480*b, 3)

	rgb := core.NewVec3(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
	)
	return rgb.Clamp(0, 1)
}

// NewSphereGridScene creates a grid of fuzzy metal spheres whose hue varies
// along X and chroma along Z, lit by a large spherical sun
func NewSphereGridScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      800,
		SamplesPerPixel: 100,
		VFov:            40,
		LookFrom:        core.NewVec3(4.5, 6, 18),
		LookAt:          core.NewVec3(4.5, 0.8, 4.5),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0.2,
		FocusDist:       14.5,
	}
	integratorConfig := integrator.IntegratorConfig{
		MaxDepth:         40,
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0),
	}

	s := newScene("spheregrid", cameraConfig, integratorConfig)

	// Sun high and to the side
	s.AddLight(geometry.NewSphere(core.NewVec3(20, 25, 20), 8, material.NewEmissive(core.NewVec3(12, 11.5, 10))))

	s.Add(NewGroundQuad(core.NewVec3(4.5, 0, 4.5), 60, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	const (
		gridSize   = 10
		gridExtent = 9.0
		minChroma  = 0.05
		maxChroma  = 0.25
	)
	spacing := gridExtent / float64(gridSize-1)
	radius := spacing * 0.35

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - gridExtent/2 + 4.5
			z := float64(j)*spacing - gridExtent/2 + 4.5

			hue := float64(i) / float64(gridSize-1) * 360
			chroma := minChroma + float64(j)/float64(gridSize-1)*(maxChroma-minChroma)
			lightness := 0.65 + 0.1*math.Sin(float64(i+j)*0.5)
			fuzz := 0.05 + 0.05*float64((i+j)%3)

			metal := material.NewMetal(oklchToLinear(lightness, chroma, hue), fuzz)
			s.Add(geometry.NewSphere(core.NewVec3(x, radius, z), radius, metal))
		}
	}

	return s
}
