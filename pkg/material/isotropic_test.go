package material

import (
	"math"
	"testing"

	"go-pathtracer/pkg/core"
)

func TestIsotropic_ScattersUniformly(t *testing.T) {
	iso := NewIsotropic(core.NewVec3(0.9, 0.9, 0.9))
	sampler := testSampler(42)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(1, 0, 0)}
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := iso.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Isotropic phase material must always scatter")
	}
	if scatter.IsSpecular() {
		t.Fatal("Isotropic scattering is not specular")
	}
	if scatter.Attenuation != core.NewVec3(0.9, 0.9, 0.9) {
		t.Errorf("Expected albedo attenuation, got %v", scatter.Attenuation)
	}

	uniform := 1.0 / (4.0 * math.Pi)
	for i := 0; i < 200; i++ {
		direction := scatter.PDF.Generate(sampler)
		if math.Abs(direction.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", direction.Length())
		}
		if got := scatter.PDF.Value(direction); math.Abs(got-uniform) > 1e-12 {
			t.Fatalf("Expected density 1/4π, got %f", got)
		}
		scattered := core.NewRay(hit.Point, direction)
		if got := iso.ScatteringPDF(rayIn, hit, scattered); math.Abs(got-uniform) > 1e-12 {
			t.Fatalf("Expected scattering density 1/4π, got %f", got)
		}
	}
}
