package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray with at most depth bounces
	RayColor(ray core.Ray, depth int, world geometry.Hittable, lightSet lights.Target, sampler core.Sampler) core.Vec3

	// MaxDepth is the bounce budget a camera ray starts with
	MaxDepth() int
}

// IntegratorConfig holds the estimator settings shared by all samples of a render
type IntegratorConfig struct {
	MaxDepth         int       // Maximum ray bounce depth
	BackgroundTop    core.Vec3 // Sky color for rays pointing straight up
	BackgroundBottom core.Vec3 // Sky color for rays pointing straight down
}
