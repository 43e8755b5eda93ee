package pdf

import (
	"math"
	"math/rand"
	"testing"

	"go-pathtracer/pkg/core"
)

func testSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestCosinePDF_GeneratedDirectionsAboveSurface(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	p := NewCosinePDF(normal)
	sampler := testSampler(42)

	for i := 0; i < 1000; i++ {
		direction := p.Generate(sampler)
		if direction.Dot(normal) < 0 {
			t.Fatalf("Generated direction below the surface: %v", direction)
		}
		if p.Value(direction) <= 0 {
			t.Fatalf("Generated direction has zero density: %v", direction)
		}
	}
}

func TestCosinePDF_Value(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	p := NewCosinePDF(normal)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  float64
	}{
		{"along normal", core.NewVec3(0, 0, 1), 1.0 / math.Pi},
		{"45 degrees", core.NewVec3(1, 0, 1), math.Sqrt(0.5) / math.Pi},
		{"tangent", core.NewVec3(1, 0, 0), 0},
		{"below surface", core.NewVec3(0, 0, -1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Value(tt.direction); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected density %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestCosinePDF_IntegratesToOne(t *testing.T) {
	// The density integrates to one over the hemisphere. Estimate the
	// integral by uniform sphere sampling: E[p/q] with q = 1/4π.
	p := NewCosinePDF(core.NewVec3(0.3, 0.8, -0.1))
	sampler := testSampler(42)

	var sum float64
	const n = 200000
	for i := 0; i < n; i++ {
		direction := core.SampleOnUnitSphere(sampler.Get2D())
		sum += p.Value(direction) * 4.0 * math.Pi
	}

	integral := sum / n
	if math.Abs(integral-1.0) > 0.02 {
		t.Errorf("Expected density to integrate to 1, got %f", integral)
	}
}

func TestSpherePDF_Uniform(t *testing.T) {
	p := NewSpherePDF()
	sampler := testSampler(42)
	uniform := 1.0 / (4.0 * math.Pi)

	for i := 0; i < 100; i++ {
		direction := p.Generate(sampler)
		if math.Abs(direction.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", direction.Length())
		}
		if got := p.Value(direction); got != uniform {
			t.Fatalf("Expected constant density 1/4π, got %f", got)
		}
	}
}

// fixedPDF returns a constant density and a fixed direction, for
// exercising the mixture combinator deterministically
type fixedPDF struct {
	density   float64
	direction core.Vec3
}

func (f fixedPDF) Value(direction core.Vec3) float64 { return f.density }
func (f fixedPDF) Generate(s core.Sampler) core.Vec3 { return f.direction }

func TestMixturePDF_ValueIsAverage(t *testing.T) {
	mixture := NewMixturePDF(
		fixedPDF{density: 0.2, direction: core.NewVec3(1, 0, 0)},
		fixedPDF{density: 0.6, direction: core.NewVec3(0, 1, 0)},
	)

	if got := mixture.Value(core.NewVec3(0, 0, 1)); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("Expected averaged density 0.4, got %f", got)
	}
}

func TestMixturePDF_GeneratesFromBothComponents(t *testing.T) {
	a := core.NewVec3(1, 0, 0)
	b := core.NewVec3(0, 1, 0)
	mixture := NewMixturePDF(
		fixedPDF{density: 1, direction: a},
		fixedPDF{density: 1, direction: b},
	)
	sampler := testSampler(42)

	fromA, fromB := 0, 0
	const n = 2000
	for i := 0; i < n; i++ {
		switch mixture.Generate(sampler) {
		case a:
			fromA++
		case b:
			fromB++
		default:
			t.Fatal("Mixture generated a direction from neither component")
		}
	}

	// An unbiased coin should land far from all-or-nothing
	if fromA < n/4 || fromB < n/4 {
		t.Errorf("Mixture selection looks biased: %d vs %d", fromA, fromB)
	}
}

// pointLight is a minimal light shape whose sampling density is a constant
type pointLight struct {
	density   float64
	direction core.Vec3
}

func (p pointLight) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return nil, false
}
func (p pointLight) BoundingBox() core.AABB                       { return core.AABB{} }
func (p pointLight) PDFValue(origin, direction core.Vec3) float64 { return p.density }
func (p pointLight) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return p.direction
}

func TestShapePDF_Delegates(t *testing.T) {
	light := pointLight{density: 0.125, direction: core.NewVec3(0, 0, 1)}
	p := NewShapePDF(light, core.NewVec3(1, 2, 3))
	sampler := testSampler(42)

	if got := p.Value(core.NewVec3(0, 1, 0)); got != 0.125 {
		t.Errorf("Expected delegated density 0.125, got %f", got)
	}
	if got := p.Generate(sampler); got != light.direction {
		t.Errorf("Expected delegated direction %v, got %v", light.direction, got)
	}
}
