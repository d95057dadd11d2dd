package lights

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF importance-samples directions from a fixed origin toward a light set
type PDF struct {
	lights Target
	origin core.Vec3
}

// NewPDF creates a light-directed PDF anchored at origin
func NewPDF(lights Target, origin core.Vec3) PDF {
	return PDF{lights: lights, origin: origin}
}

// Value returns the density the light set assigns to direction
func (p PDF) Value(direction core.Vec3) float64 {
	return p.lights.PDFValue(p.origin, direction)
}

// Generate returns a direction toward a random point on the light set
func (p PDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.lights.Random(p.origin, sampler)
}
