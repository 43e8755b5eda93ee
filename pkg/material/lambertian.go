package material

import (
	"math"

	"go-pathtracer/pkg/core"
	"go-pathtracer/pkg/pdf"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a lambertian material with a texture
func NewTexturedLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter always succeeds, producing a cosine-weighted PDF around the
// surface normal. Attenuation is the albedo; the integrator's estimator
// multiplies by ScatteringPDF and divides by the sampled density.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         pdf.NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns cos(θ)/π, matching the density the CosinePDF assigns
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}
