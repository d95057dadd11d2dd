// Package pdf provides probability densities over directions, each paired with
// a way to draw directions from it, for importance sampling.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF is a probability density over directions together with a sampler for it
type PDF interface {
	// Value returns the density of generating direction
	Value(direction core.Vec3) float64
	// Generate draws a direction distributed according to Value
	Generate(sampler core.Sampler) core.Vec3
}

// Cosine is the cosine-weighted hemisphere density around a surface normal
type Cosine struct {
	uvw core.ONB
}

// NewCosine creates a cosine PDF around normal w
func NewCosine(w core.Vec3) Cosine {
	return Cosine{uvw: core.NewONB(w)}
}

// Value returns cos(θ)/π, or zero below the surface
func (c Cosine) Value(direction core.Vec3) float64 {
	cosTheta := direction.Normalize().Dot(c.uvw.W)
	return math.Max(0, cosTheta/math.Pi)
}

// Generate returns a cosine-weighted direction in the hemisphere around the normal
func (c Cosine) Generate(sampler core.Sampler) core.Vec3 {
	return c.uvw.Transform(core.SampleCosineDirection(sampler.Get2D()))
}

// Mixture blends two densities with equal weight
type Mixture struct {
	p [2]PDF
}

// NewMixture creates a 50/50 mixture of p0 and p1
func NewMixture(p0, p1 PDF) Mixture {
	return Mixture{p: [2]PDF{p0, p1}}
}

// Value returns 0.5*p0(d) + 0.5*p1(d)
func (m Mixture) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate picks one of the two components with probability 1/2 and samples it
func (m Mixture) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}
