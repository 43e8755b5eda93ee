package core

import "math"

// ONB is an orthonormal basis built around a single unit vector.
// W is the local Z axis; U and V span the tangent plane.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis with w (normalized) as the local Z axis
func NewONB(w Vec3) ONB {
	unitW := w.Normalize()

	// Pick a helper axis that is not parallel to w
	var a Vec3
	if math.Abs(unitW.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := unitW.Cross(a).Normalize()
	u := unitW.Cross(v)

	return ONB{U: u, V: v, W: unitW}
}

// Local maps a vector expressed in basis coordinates into world space
func (o ONB) Local(v Vec3) Vec3 {
	return o.U.Multiply(v.X).Add(o.V.Multiply(v.Y)).Add(o.W.Multiply(v.Z))
}
