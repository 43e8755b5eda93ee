package material

import (
	"math"

	"go-pathtracer/pkg/core"
	"go-pathtracer/pkg/pdf"
)

// Isotropic is the phase material of a participating medium: scattering
// is uniform over the full sphere of directions.
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic phase material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Scatter produces a uniform-sphere PDF
func (iso *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: iso.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         pdf.NewSpherePDF(),
	}, true
}

// ScatteringPDF is the constant 1/4π, matching the uniform sphere density
func (iso *Isotropic) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
