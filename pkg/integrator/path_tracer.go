// Package integrator implements the recursive Monte Carlo radiance
// estimator that combines scene intersection, material scattering and
// importance-sampled direction generation.
package integrator

import (
	"math"

	"go-pathtracer/pkg/core"
	"go-pathtracer/pkg/pdf"
)

// PathTracer estimates radiance along camera rays by recursive path tracing
// with multiple importance sampling between the material's PDF and direct
// sampling of a designated light shape.
type PathTracer struct {
	MaxDepth int       // Fixed recursion cutoff (no Russian roulette)
	Top      core.Vec3 // Background gradient color at +Y
	Bottom   core.Vec3 // Background gradient color at -Y
}

// NewPathTracer creates a path tracer with the given depth cutoff and
// background gradient. Enclosed scenes pass zero for both colors.
func NewPathTracer(maxDepth int, top, bottom core.Vec3) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth, Top: top, Bottom: bottom}
}

// RayColor computes the radiance along a ray. world is the scene's
// intersection structure; light, when non-nil, is the shape sampled for
// direct lighting. depth counts bounces taken so far.
//
// Individual samples can come back non-finite when the mixture density is
// near zero; callers sanitize before accumulating into the image.
func (pt *PathTracer) RayColor(ray core.Ray, world core.Shape, light core.LightShape, sampler core.Sampler, depth int) core.Vec3 {
	// The lower bound avoids self-intersection at the previous hit point
	hit, isHit := world.Hit(ray, 0.001, math.Inf(1), sampler)
	if !isHit {
		return pt.background(ray)
	}

	var emitted core.Vec3
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		emitted = emitter.Emit(hit.U, hit.V, hit.Point)
	}

	if depth >= pt.MaxDepth {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular() {
		return scatter.Attenuation.MultiplyVec(
			pt.RayColor(*scatter.SpecularRay, world, light, sampler, depth+1))
	}

	// Mix the material's own PDF with direct sampling toward the light
	samplePDF := scatter.PDF
	if light != nil {
		samplePDF = pdf.NewMixturePDF(pdf.NewShapePDF(light, hit.Point), scatter.PDF)
	}

	direction := samplePDF.Generate(sampler)
	scattered := core.NewRay(hit.Point, direction)
	pdfValue := samplePDF.Value(direction)
	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)

	incoming := pt.RayColor(scattered, world, light, sampler, depth+1)
	return emitted.Add(
		scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue))
}

// background returns a vertical gradient based on the ray direction
func (pt *PathTracer) background(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return pt.Bottom.Multiply(1.0 - t).Add(pt.Top.Multiply(t))
}
