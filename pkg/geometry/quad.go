package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Normal vector (computed from U × V)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: ax + by + cz = d
	W        core.Vec3         // Cached n / (n·n) for planar coordinates
	Area     float64           // |U × V|
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        n.Multiply(1.0 / n.Dot(n)),
		Area:     n.Length(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	// Planar coordinates of the hit point relative to the corner
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// PDFValue converts the uniform area density 1/Area into solid angle as seen from origin
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	rec, ok := q.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())

	return distanceSquared / (cosine * q.Area)
}

// Random returns the vector from origin to a uniformly chosen point on the quad
func (q *Quad) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	p := q.Corner.Add(q.U.Multiply(s.X)).Add(q.V.Multiply(s.Y))
	return p.Subtract(origin)
}
