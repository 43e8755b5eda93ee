// Package pdf provides direction-sampling distributions for Monte Carlo
// importance sampling: cosine-weighted hemisphere sampling for diffuse
// surfaces, solid-angle sampling toward light shapes, and the 50/50
// mixture that combines them for multiple importance sampling.
package pdf

import (
	"math"

	"go-pathtracer/pkg/core"
)

// CosinePDF samples directions on the hemisphere with density cos(θ)/π,
// where θ is measured against the basis normal
type CosinePDF struct {
	basis core.ONB
}

// NewCosinePDF creates a cosine-weighted PDF around the given normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{basis: core.NewONB(normal)}
}

// Value returns cos(θ)/π, clamped to zero below the hemisphere
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.basis.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction and maps it through the basis
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.basis.Local(core.SampleCosineDirection(sampler.Get2D()))
}

// ShapePDF samples directions from a fixed origin toward a light shape,
// with the shape's solid-angle density
type ShapePDF struct {
	shape  core.LightShape
	origin core.Vec3
}

// NewShapePDF creates a PDF that samples toward the given shape
func NewShapePDF(shape core.LightShape, origin core.Vec3) *ShapePDF {
	return &ShapePDF{shape: shape, origin: origin}
}

// Value asks the shape for the solid-angle density of the direction
func (p *ShapePDF) Value(direction core.Vec3) float64 {
	return p.shape.PDFValue(p.origin, direction)
}

// Generate asks the shape for a direction toward a random point on itself
func (p *ShapePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.shape.RandomDirection(p.origin, sampler)
}

// MixturePDF combines two PDFs with fixed 0.5/0.5 weighting. This is the
// multiple-importance-sampling combinator between material-driven and
// light-driven sampling.
type MixturePDF struct {
	p0, p1 core.PDF
}

// NewMixturePDF creates an unweighted two-way mixture
func NewMixturePDF(p0, p1 core.PDF) *MixturePDF {
	return &MixturePDF{p0: p0, p1: p1}
}

// Value averages the two component densities
func (p *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*p.p0.Value(direction) + 0.5*p.p1.Value(direction)
}

// Generate flips an unbiased coin to choose which component to sample
func (p *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.p0.Generate(sampler)
	}
	return p.p1.Generate(sampler)
}

// SpherePDF samples directions uniformly over the full sphere, used as the
// phase function of isotropic participating media
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere PDF
func NewSpherePDF() *SpherePDF {
	return &SpherePDF{}
}

// Value is the constant 1/4π
func (p *SpherePDF) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a uniform direction on the unit sphere
func (p *SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}
