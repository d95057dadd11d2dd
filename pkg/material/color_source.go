package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials.
// UV drives image textures, the hit point drives procedural ones.
type ColorSource interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor is a ColorSource with one color everywhere
type SolidColor struct {
	Color core.Vec3
}

func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}
