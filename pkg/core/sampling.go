package core

import (
	"math"
	"math/rand"
)

// Sampler is the source of uniform variates for all stochastic decisions.
// Implementations may be pseudo-random or fixed sequences for tests.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler draws variates from a seeded math/rand generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler wraps an existing generator without reseeding it
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D draws one uniform variate from [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D draws a pair of uniform variates from [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D draws three uniform variates from [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleCosineDirection generates a cosine-weighted direction in the local
// hemisphere (+Z up). Combine with an ONB to orient it around a normal.
func SampleCosineDirection(sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)

	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	z := math.Sqrt(1.0 - sample.Y)

	return NewVec3(x, y, z)
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SampleCone samples a direction uniformly within a cone around direction
func SampleCone(direction Vec3, cosThetaMax float64, sample Vec2) Vec3 {
	cosTheta := 1.0 - sample.X*(1.0-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	local := NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return NewONB(direction).Local(local)
}

// RandomInUnitSphere generates a random point inside the unit sphere
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}
