package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// shadowAcneEpsilon is the minimum hit distance, avoiding self-intersection at the origin surface
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing, sampling each
// diffuse bounce from an even mixture of the light set and the material
type PathTracingIntegrator struct {
	config IntegratorConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config IntegratorConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// MaxDepth returns the configured bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.config.MaxDepth
}

// RayColor computes the color for a single ray using unidirectional path tracing.
// Non-finite values are passed through; they are masked when the pixel is packed.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, depth int, world geometry.Hittable, lightSet lights.Target, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	colorEmitted := hit.Material.Emitted(ray, hit, hit.UV, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	if scatter.SkipPDF {
		return scatter.Attenuation.MultiplyVec(
			pt.RayColor(scatter.SkipPDFRay, depth-1, world, lightSet, sampler))
	}

	return colorEmitted.Add(pt.calculateDiffuseColor(ray, hit, scatter, depth, world, lightSet, sampler))
}

// calculateDiffuseColor draws the next direction from the light/material mixture
// and weights the incoming radiance by scatteringPDF / pdfValue
func (pt *PathTracingIntegrator) calculateDiffuseColor(ray core.Ray, hit *material.HitRecord, scatter material.ScatterRecord, depth int, world geometry.Hittable, lightSet lights.Target, sampler core.Sampler) core.Vec3 {
	var sampling pdf.PDF = scatter.PDF
	if !lights.IsEmpty(lightSet) {
		sampling = pdf.NewMixture(lights.NewPDF(lightSet, hit.Point), scatter.PDF)
	}

	scattered := core.NewRayAtTime(hit.Point, sampling.Generate(sampler), ray.Time)
	pdfValue := sampling.Value(scattered.Direction)
	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)

	colorFromScatter := pt.RayColor(scattered, depth-1, world, lightSet, sampler)

	return scatter.Attenuation.MultiplyVec(colorFromScatter).Multiply(scatteringPDF / pdfValue)
}

// backgroundGradient blends bottom to top by the ray's vertical direction
func (pt *PathTracingIntegrator) backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(pt.config.BackgroundBottom, pt.config.BackgroundTop, a)
}
