package material

import (
	"math"

	"go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter chooses stochastically between reflection and refraction using
// the Schlick approximation of Fresnel reflectance. Always returns a
// specular ray; clear glass absorbs nothing.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	unitDirection := rayIn.Direction.Normalize()

	// Normals point outward, so a positive dot product means the ray is
	// exiting the material
	outwardNormal := hit.Normal
	refractionRatio := 1.0 / d.RefractiveIndex
	if unitDirection.Dot(hit.Normal) > 0 {
		outwardNormal = hit.Normal.Negate()
		refractionRatio = d.RefractiveIndex
	}

	cosTheta := math.Min(-unitDirection.Dot(outwardNormal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = reflect(unitDirection, outwardNormal)
	} else {
		direction = refract(unitDirection, outwardNormal, refractionRatio)
	}

	specular := core.NewRay(hit.Point, direction)
	return core.ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		SpecularRay: &specular,
	}, true
}

// ScatteringPDF is zero: specular scattering is a delta function
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// refract calculates the refraction of uv through a surface with normal n
// using Snell's law
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// reflectance calculates the Fresnel reflectance using Schlick's approximation
func reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
