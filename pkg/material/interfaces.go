package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Material interface for surfaces that scatter and/or emit light.
// Implementations are shared by every render worker and must not mutate themselves.
type Material interface {
	// Scatter decides how an incoming ray leaves the surface. Returns false when
	// the ray is absorbed.
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// Emitted returns the radiance the surface emits at point, possibly zero
	Emitted(rayIn core.Ray, hit *HitRecord, uv core.Vec2, point core.Vec3) core.Vec3

	// ScatteringPDF is the physical density of scattering rayIn into scattered
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64
}

// ScatterRecord contains the result of material scattering
type ScatterRecord struct {
	Attenuation core.Vec3 // Color attenuation
	PDF         pdf.PDF   // Sampling density for the outgoing direction, nil when SkipPDF is set

	// SkipPDF marks specular transport that follows SkipPDFRay directly
	SkipPDF    bool
	SkipPDFRay core.Ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, always against the ray
	UV        core.Vec2 // Surface texture coordinates
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
