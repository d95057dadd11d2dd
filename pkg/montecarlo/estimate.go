// Package montecarlo estimates one-dimensional integrals by importance sampling,
// the same estimator the path tracer applies per bounce.
package montecarlo

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Estimate returns (1/n) Σ f(x)/pdf(x) with x = icd(z) for uniform z in [0, 1).
// Draws of exactly zero are skipped but still counted in n.
func Estimate(n int, sampler core.Sampler, icd, pdf, f func(float64) float64) float64 {
	if n <= 0 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		z := sampler.Get1D()
		if z == 0 {
			continue
		}

		x := icd(z)
		sum += f(x) / pdf(x)
	}
	return sum / float64(n)
}

// XSquared estimates ∫₀² x² dx = 8/3 sampling x with density x/2
func XSquared(n int, sampler core.Sampler) float64 {
	return Estimate(n, sampler,
		func(z float64) float64 { return math.Sqrt(4 * z) },
		func(x float64) float64 { return x / 2 },
		func(x float64) float64 { return x * x },
	)
}
