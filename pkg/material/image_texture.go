package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// missingTexture is returned by textures without pixel data so the gap is obvious in renders
var missingTexture = core.NewVec3(0, 1, 1)

var unitInterval = core.NewInterval(0, 1)

// ImageTexture looks up linear colors from a row-major pixel grid, row 0 at the top
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate returns the nearest pixel to uv. Coordinates are clamped to [0,1];
// v=0 is the bottom row of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return missingTexture
	}

	u := unitInterval.Clamp(uv.X)
	v := 1.0 - unitInterval.Clamp(uv.Y)

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
