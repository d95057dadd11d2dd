package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate instances an object displaced by Offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate wraps object so that it appears moved by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into object space, intersects, then moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	rec, ok := t.Object.Hit(offsetRay, rayT)
	if !ok {
		return nil, false
	}

	rec.Point = rec.Point.Add(t.Offset)
	return rec, true
}

// PDFValue delegates to the wrapped object in object space
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	target, ok := t.Object.(lights.Target)
	if !ok {
		return 0
	}
	return target.PDFValue(origin.Subtract(t.Offset), direction)
}

// Random delegates to the wrapped object in object space
func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	target, ok := t.Object.(lights.Target)
	if !ok {
		return core.NewVec3(1, 0, 0)
	}
	return target.Random(origin.Subtract(t.Offset), sampler)
}

// RotateY instances an object rotated about the Y axis
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
}

// NewRotateY wraps object rotated by angle degrees about the Y axis
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	return &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// toObject rotates a world-space vector into object space
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector back into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, intersects, then rotates the record back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	rec, ok := r.Object.Hit(rotated, rayT)
	if !ok {
		return nil, false
	}

	rec.Point = r.toWorld(rec.Point)
	rec.Normal = r.toWorld(rec.Normal)
	return rec, true
}

// PDFValue delegates to the wrapped object in object space
func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	target, ok := r.Object.(lights.Target)
	if !ok {
		return 0
	}
	return target.PDFValue(r.toObject(origin), r.toObject(direction))
}

// Random samples in object space and returns the direction in world space
func (r *RotateY) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	target, ok := r.Object.(lights.Target)
	if !ok {
		return core.NewVec3(1, 0, 0)
	}
	return r.toWorld(target.Random(r.toObject(origin), sampler))
}
