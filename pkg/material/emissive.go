package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Emissive represents a light-emitting material. It emits from its front face only.
type Emissive struct {
	Emission ColorSource // Emitted light color/intensity
}

// NewEmissive creates a new emissive material with a constant emission
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: NewSolidColor(emission)}
}

// NewTexturedEmissive creates an emissive material whose radiance varies over the surface
func NewTexturedEmissive(emission ColorSource) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements the Material interface for emissive materials.
// Emissive materials don't scatter, they absorb every incoming ray.
func (e *Emissive) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the emission when the front face is seen, black otherwise
func (e *Emissive) Emitted(rayIn core.Ray, hit *HitRecord, uv core.Vec2, point core.Vec3) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return e.Emission.Evaluate(uv, point)
}

// ScatteringPDF is zero since nothing scatters
func (e *Emissive) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}
