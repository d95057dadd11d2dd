package lights

import "github.com/df07/go-pathtracer/pkg/core"

// Target is a set of emissive shapes that can be importance sampled from a point.
// Implementations must be safe for concurrent use.
type Target interface {
	// PDFValue returns the solid-angle density of choosing direction from origin
	// when sampling toward this target
	PDFValue(origin, direction core.Vec3) float64

	// Random returns a (not necessarily normalized) direction from origin toward
	// a random point on the target
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// Counter is implemented by light sets that know how many lights they hold
type Counter interface {
	Len() int
}

// IsEmpty reports whether a light set has nothing to sample
func IsEmpty(t Target) bool {
	if t == nil {
		return true
	}
	if c, ok := t.(Counter); ok {
		return c.Len() == 0
	}
	return false
}
