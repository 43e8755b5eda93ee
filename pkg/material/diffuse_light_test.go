package material

import (
	"testing"

	"go-pathtracer/pkg/core"
)

func TestDiffuseLight_NeverScatters(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(15, 15, 15))
	sampler := testSampler(42)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, didScatter := light.Scatter(rayIn, hit, sampler); didScatter {
		t.Error("Lights must absorb incoming rays")
	}
	if got := light.ScatteringPDF(rayIn, hit, rayIn); got != 0 {
		t.Errorf("Expected zero scattering density, got %f", got)
	}
}

func TestDiffuseLight_Emit(t *testing.T) {
	emission := core.NewVec3(7, 6, 5)
	light := NewDiffuseLight(emission)

	if got := light.Emit(0.3, 0.7, core.NewVec3(1, 2, 3)); got != emission {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}

	// The material satisfies the emitter interface used by the integrator
	var _ core.Emitter = light
}

func TestTexturedDiffuseLight_Emit(t *testing.T) {
	checker := NewCheckerTexture(
		NewSolidColor(core.NewVec3(1, 0, 0)),
		NewSolidColor(core.NewVec3(0, 0, 1)),
	)
	light := NewTexturedDiffuseLight(checker)
	point := core.NewVec3(0.05, 0.05, 0.05)

	if got := light.Emit(0, 0, point); got != checker.Value(0, 0, point) {
		t.Errorf("Expected textured emission %v, got %v", checker.Value(0, 0, point), got)
	}
}
