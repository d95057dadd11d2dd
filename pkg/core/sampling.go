package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
// A RandomSampler is not safe for concurrent use; give each worker its own
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic generator
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// IntN returns a uniformly distributed integer in [0, n)
func IntN(sampler Sampler, n int) int {
	i := int(sampler.Get1D() * float64(n))
	if i >= n {
		// Guards against rounding when Get1D is very close to 1
		i = n - 1
	}
	return i
}

// SampleSquareStratified returns a random offset inside sub-cell (si, sj) of an
// n×n grid laid over the unit square [-0.5,0.5]²
func SampleSquareStratified(si, sj, n int, sample Vec2) Vec3 {
	recip := 1.0 / float64(n)
	px := (float64(si)+sample.X)*recip - 0.5
	py := (float64(sj)+sample.Y)*recip - 0.5
	return NewVec3(px, py, 0)
}

// SampleCosineDirection returns a cosine-weighted direction around +Z
func SampleCosineDirection(sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	r2 := sample.Y

	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1.0 - r2)
	return NewVec3(x, y, z)
}

// SampleCosineHemisphere generates a cosine-weighted random direction in hemisphere around normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	return NewONB(normal).Transform(SampleCosineDirection(sample))
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// SampleToSphere returns a direction toward a sphere of the given radius whose
// center lies distanceSquared away along +Z, uniform over the subtended cone
func SampleToSphere(radius, distanceSquared float64, sample Vec2) Vec3 {
	z := 1 + sample.Y*(math.Sqrt(math.Max(0, 1-radius*radius/distanceSquared))-1)

	phi := 2 * math.Pi * sample.X
	s := math.Sqrt(math.Max(0, 1-z*z))
	x := math.Cos(phi) * s
	y := math.Sin(phi) * s

	return NewVec3(x, y, z)
}

// SamplePointInUnitDisk generates a random point in a unit disk using concentric mapping
// This avoids rejection sampling by mapping a square uniformly to a disk
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	// Apply concentric mapping to point
	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}
