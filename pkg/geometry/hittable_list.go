package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is a linear collection of objects. As a light set it samples
// each member with equal probability.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest intersection among all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if rec, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, closest != nil
}

// PDFValue averages the densities of all members that can be sampled
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		if target, ok := object.(lights.Target); ok {
			sum += weight * target.PDFValue(origin, direction)
		}
	}
	return sum
}

// Random samples a direction toward one uniformly chosen member
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	object := l.Objects[core.IntN(sampler, len(l.Objects))]
	if target, ok := object.(lights.Target); ok {
		return target.Random(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}
