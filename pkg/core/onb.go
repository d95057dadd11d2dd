package core

import "math"

// ONB is an orthonormal basis built around a single direction (W)
type ONB struct {
	U, V, W Vec3
}

// NewONB builds a basis whose W axis is the normalized n
func NewONB(n Vec3) ONB {
	w := n.Normalize()

	// Pick any axis that is not nearly parallel to w
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Transform maps a vector from basis-local coordinates to world coordinates
func (o ONB) Transform(local Vec3) Vec3 {
	return o.U.Multiply(local.X).Add(o.V.Multiply(local.Y)).Add(o.W.Multiply(local.Z))
}
