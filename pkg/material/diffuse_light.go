package material

import "go-pathtracer/pkg/core"

// DiffuseLight is an emissive material. It never scatters; it only emits.
type DiffuseLight struct {
	Emission core.Texture
}

// NewDiffuseLight creates a light with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light with a textured emission
func NewTexturedDiffuseLight(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter absorbs all incoming rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF is zero: lights do not scatter
func (dl *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emit returns the emission texture value
func (dl *DiffuseLight) Emit(u, v float64, point core.Vec3) core.Vec3 {
	return dl.Emission.Value(u, v, point)
}
