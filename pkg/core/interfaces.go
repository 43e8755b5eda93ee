package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Unit surface normal, oriented per the primitive's definition
	U, V     float64  // Surface parametrization coordinates in [0,1]
	Material Material // Material of the hit object
}

// Shape interface for objects that can be hit by rays. The sampler feeds
// probabilistic intersections (participating media); deterministic shapes
// ignore it, and callers that only test geometry may pass nil.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool)
	BoundingBox() AABB
}

// LightShape extends Shape with solid-angle sampling toward the shape,
// used for emissive-object importance sampling.
type LightShape interface {
	Shape

	// PDFValue returns the solid-angle density of sampling direction from origin
	PDFValue(origin, direction Vec3) float64

	// RandomDirection draws a direction from origin toward a random point on the shape
	RandomDirection(origin Vec3, sampler Sampler) Vec3
}

// ScatterRecord contains the result of material scattering.
// Exactly one of SpecularRay and PDF is set.
type ScatterRecord struct {
	Attenuation Vec3 // Color attenuation
	SpecularRay *Ray // Scattered ray for specular materials (metal, dielectric)
	PDF         PDF  // Direction distribution for diffuse-type materials
}

// IsSpecular returns true if this is specular scattering
func (s ScatterRecord) IsSpecular() bool {
	return s.SpecularRay != nil
}

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter produces a scattered ray or sampling PDF for the hit.
	// Returns false when the ray is absorbed.
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterRecord, bool)

	// ScatteringPDF returns the density the material's BRDF assigns to the
	// scattered direction. The integrator multiplies by this term while
	// dividing by the externally sampled density, so for PDF materials the
	// two must agree.
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(u, v float64, point Vec3) Vec3
}

// Texture supplies color by surface coordinate and point
type Texture interface {
	Value(u, v float64, point Vec3) Vec3
}

// PDF is a direction-sampling strategy plus its associated density
type PDF interface {
	// Value returns the probability density for the given direction
	Value(direction Vec3) float64

	// Generate draws a direction from the distribution
	Generate(sampler Sampler) Vec3
}
