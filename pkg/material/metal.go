package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	reflected := reflect(rayIn.Direction, hit.Normal).Normalize()

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.SampleOnUnitSphere(sampler.Get2D()).Multiply(m.Fuzzness))
	}

	// Fuzz can push the ray below the surface, which absorbs it
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		Attenuation: m.Albedo,
		SkipPDF:     true,
		SkipPDFRay:  core.NewRayAtTime(hit.Point, reflected, rayIn.Time),
	}, true
}

// Emitted returns black: metals do not emit
func (m *Metal) Emitted(rayIn core.Ray, hit *HitRecord, uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is zero: reflection is a delta distribution handled through SkipPDF
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
