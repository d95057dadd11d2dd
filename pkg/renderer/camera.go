package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	AspectRatio     float64   // Ratio of image width over height
	ImageWidth      int       // Rendered image width in pixels
	SamplesPerPixel int       // Requested samples; rounded down to a perfect square
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	VUp             core.Vec3 // Camera-relative "up" direction
	DefocusAngle    float64   // Variation angle of rays through each pixel, in degrees
	FocusDist       float64   // Distance from LookFrom to the plane of perfect focus
}

// Camera generates rays for rendering. Its derived fields are computed once by
// Initialize and are read-only afterwards, so one camera serves every worker.
type Camera struct {
	config CameraConfig

	imageHeight       int
	sqrtSpp           int
	pixelSamplesScale float64

	center      core.Vec3
	pixel00     core.Vec3 // Location of pixel 0, 0 (upper left)
	pixelDeltaU core.Vec3 // Offset to pixel to the right
	pixelDeltaV core.Vec3 // Offset to pixel below
	u, v, w     core.Vec3 // Camera frame basis vectors

	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera creates an initialized camera from config
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}
	c.Initialize()
	return c
}

// Initialize derives the viewport and sampling parameters. Degenerate inputs are
// clamped to usable values instead of failing.
func (c *Camera) Initialize() {
	cfg := &c.config
	if cfg.ImageWidth < 1 {
		cfg.ImageWidth = 1
	}
	if cfg.AspectRatio <= 0 || math.IsNaN(cfg.AspectRatio) {
		cfg.AspectRatio = 1
	}
	if cfg.SamplesPerPixel < 1 {
		cfg.SamplesPerPixel = 1
	}
	if cfg.VFov <= 0 || cfg.VFov >= 180 {
		cfg.VFov = 90
	}
	if cfg.FocusDist <= 0 {
		cfg.FocusDist = 1
	}

	c.imageHeight = int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	c.sqrtSpp = int(math.Sqrt(float64(cfg.SamplesPerPixel)))
	c.pixelSamplesScale = 1.0 / float64(c.sqrtSpp*c.sqrtSpp)

	c.center = cfg.LookFrom

	// Viewport dimensions use the real image ratio, not the requested one
	theta := core.DegreesToRadians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDist
	viewportWidth := viewportHeight * float64(cfg.ImageWidth) / float64(c.imageHeight)

	c.w = cfg.LookFrom.Subtract(cfg.LookAt)
	if c.w.NearZero() {
		c.w = core.NewVec3(0, 0, 1)
	}
	c.w = c.w.Normalize()

	up := cfg.VUp
	if up.Cross(c.w).NearZero() {
		// VUp parallel to the view direction leaves the frame undefined
		up = core.NewVec3(0, 1, 0)
		if math.Abs(c.w.Y) > 0.9 {
			up = core.NewVec3(0, 0, -1)
		}
	}
	c.u = up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(cfg.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(cfg.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDist * math.Tan(core.DegreesToRadians(cfg.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)
}

// GetRay returns a ray toward a random point in sub-cell (si, sj) of pixel (i, j).
// The ray starts on the defocus disk and carries a random shutter time in [0, 1).
func (c *Camera) GetRay(i, j, si, sj int, sampler core.Sampler) core.Ray {
	offset := c.SampleSquareStratified(si, sj, sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// SampleSquareStratified returns an offset inside sub-cell (si, sj) of [-0.5,0.5]²
func (c *Camera) SampleSquareStratified(si, sj int, sampler core.Sampler) core.Vec3 {
	return core.SampleSquareStratified(si, sj, c.sqrtSpp, sampler.Get2D())
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// ImageWidth returns the rendered width in pixels
func (c *Camera) ImageWidth() int { return c.config.ImageWidth }

// ImageHeight returns the rendered height in pixels
func (c *Camera) ImageHeight() int { return c.imageHeight }

// SqrtSpp returns the side of the stratification grid
func (c *Camera) SqrtSpp() int { return c.sqrtSpp }

// PixelSamplesScale returns the weight of one sample in the pixel average
func (c *Camera) PixelSamplesScale() float64 { return c.pixelSamplesScale }

// Center returns the camera position
func (c *Camera) Center() core.Vec3 { return c.center }
