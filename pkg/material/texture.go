package material

import (
	"math"
	"math/rand"

	"go-pathtracer/pkg/core"
)

// SolidColor is a uniform texture
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of coordinates
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two textures in a 3D checker pattern
type CheckerTexture struct {
	Even core.Texture
	Odd  core.Texture
}

// NewCheckerTexture creates a checker pattern from two textures
func NewCheckerTexture(even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// Value selects even or odd based on the sign of a sine product over the point
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}

// perlin holds the permutation tables for Perlin-style value noise
type perlin struct {
	ranFloat [256]float64
	permX    [256]int
	permY    [256]int
	permZ    [256]int
}

func newPerlin(random *rand.Rand) *perlin {
	p := &perlin{}
	for i := range p.ranFloat {
		p.ranFloat[i] = random.Float64()
	}
	generatePerm(&p.permX, random)
	generatePerm(&p.permY, random)
	generatePerm(&p.permZ, random)
	return p
}

func generatePerm(perm *[256]int, random *rand.Rand) {
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// noise returns smoothed value noise in [0,1) at the given point
func (p *perlin) noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	// Hermite smoothing removes grid artifacts
	u = u * u * (3 - 2*u)
	v = v * v * (3 - 2*v)
	w = w * w * (3 - 2*w)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var accum float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				corner := p.ranFloat[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
				accum += (float64(di)*u + float64(1-di)*(1-u)) *
					(float64(dj)*v + float64(1-dj)*(1-v)) *
					(float64(dk)*w + float64(1-dk)*(1-w)) * corner
			}
		}
	}

	return accum
}

// NoiseTexture is a grayscale Perlin value-noise texture
type NoiseTexture struct {
	noise *perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture with the given frequency scale
func NewNoiseTexture(scale float64, random *rand.Rand) *NoiseTexture {
	return &NoiseTexture{noise: newPerlin(random), Scale: scale}
}

// Value returns white scaled by the noise value at the point
func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	return core.NewVec3(1, 1, 1).Multiply(n.noise.noise(point.Multiply(n.Scale)))
}
