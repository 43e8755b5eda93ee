package material

import "go-pathtracer/pkg/core"

// Metal represents a metallic material with fuzzy specular reflection
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a metal material, clamping fuzz to [0,1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming direction about the normal and perturbs it
// by the fuzz factor. A perturbed direction that points below the surface
// is absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterRecord{}, false
	}

	specular := core.NewRay(hit.Point, reflected)
	return core.ScatterRecord{
		Attenuation: m.Albedo,
		SpecularRay: &specular,
	}, true
}

// ScatteringPDF is zero: specular scattering is a delta function
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// reflect calculates the reflection of v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
