package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Checker is a solid (3D) checkerboard alternating between two color sources
type Checker struct {
	InvScale float64
	Even     ColorSource
	Odd      ColorSource
}

// NewCheckerTexture creates a checker with cells of the given world-space size
func NewCheckerTexture(scale float64, even, odd core.Vec3) *Checker {
	return &Checker{
		InvScale: 1.0 / scale,
		Even:     NewSolidColor(even),
		Odd:      NewSolidColor(odd),
	}
}

// Evaluate picks Even or Odd from the integer cell containing point
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.InvScale * point.X))
	y := int(math.Floor(c.InvScale * point.Y))
	z := int(math.Floor(c.InvScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}

// NewCheckerboardTexture creates a procedural checkerboard image texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			var color core.Vec3
			if (checkX+checkY)%2 == 0 {
				color = color1
			} else {
				color = color2
			}

			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}
