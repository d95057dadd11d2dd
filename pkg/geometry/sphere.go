package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly over the shutter interval
type Sphere struct {
	Center   core.Ray // Center at time 0 plus displacement reached at time 1
	Radius   float64
	Material material.Material
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   core.NewRay(center, core.Vec3{}),
		Radius:   math.Max(0, radius),
		Material: material,
	}
}

// NewMovingSphere creates a sphere that moves from center1 at time 0 to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   math.Max(0, radius),
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	center := s.Center.At(ray.Time)
	oc := center.Subtract(ray.Origin)

	// Quadratic equation coefficients: at² - 2ht + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Find the nearest root that lies in the acceptable range
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(outwardNormal)

	return hitRecord, true
}

// PDFValue returns the density of direction when sampling uniformly over the
// cone the sphere subtends from origin. Moving spheres are sampled at time 0.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1))); !ok {
		return 0
	}

	distanceSquared := s.Center.At(0).Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distanceSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)

	return 1 / solidAngle
}

// Random returns a direction from origin toward the sphere, uniform over the subtended cone
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.At(0).Subtract(origin)
	distanceSquared := direction.LengthSquared()
	uvw := core.NewONB(direction)
	return uvw.Transform(core.SampleToSphere(s.Radius, distanceSquared, sampler.Get2D()))
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting at X=-1, v runs from Y=-1 to Y=+1.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
