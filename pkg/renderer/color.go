package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// intensity is the range a linear channel is clamped to before quantization
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma applies gamma 2
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// PackColor tone-maps a linear color to 8 bits per channel packed as
// a<<24 | b<<16 | g<<8 | r, which is R,G,B,A byte order in little-endian memory.
// NaN channels become 0.
func PackColor(c core.Vec3) uint32 {
	r := quantize(c.X)
	g := quantize(c.Y)
	b := quantize(c.Z)
	return uint32(0xff)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

func quantize(x float64) uint8 {
	if math.IsNaN(x) {
		x = 0
	}
	return uint8(256 * intensity.Clamp(LinearToGamma(x)))
}

// UnpackColor splits a packed pixel into its channels
func UnpackColor(p uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}
