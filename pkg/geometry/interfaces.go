package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect. Hit must be safe for concurrent use
// and must not mutate the receiver.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}
