package material

import (
	"math"
	"math/rand"
	"testing"

	"go-pathtracer/pkg/core"
)

func TestSolidColor_IgnoresCoordinates(t *testing.T) {
	color := core.NewVec3(0.2, 0.4, 0.6)
	texture := NewSolidColor(color)

	points := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(100, -50, 3.7),
	}
	for _, p := range points {
		if got := texture.Value(0.9, 0.1, p); got != color {
			t.Errorf("Expected %v at %v, got %v", color, p, got)
		}
	}
}

func TestCheckerTexture_Alternates(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	checker := NewCheckerTexture(NewSolidColor(white), NewSolidColor(black))

	// sin(10x)sin(10y)sin(10z) is positive at (0.05,0.05,0.05) and flips
	// sign moving one half-period along a single axis
	even := checker.Value(0, 0, core.NewVec3(0.05, 0.05, 0.05))
	odd := checker.Value(0, 0, core.NewVec3(0.05+math.Pi/10, 0.05, 0.05))

	if even != white {
		t.Errorf("Expected even cell %v, got %v", white, even)
	}
	if odd != black {
		t.Errorf("Expected odd cell %v, got %v", black, odd)
	}
}

func TestNoiseTexture_Range(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	texture := NewNoiseTexture(4.0, random)

	for i := 0; i < 1000; i++ {
		point := core.NewVec3(
			random.Float64()*20-10,
			random.Float64()*20-10,
			random.Float64()*20-10,
		)
		value := texture.Value(0, 0, point)

		if value.X < 0 || value.X > 1 {
			t.Fatalf("Noise out of range at %v: %f", point, value.X)
		}
		// Grayscale: all channels equal
		if value.X != value.Y || value.Y != value.Z {
			t.Fatalf("Expected grayscale noise, got %v", value)
		}
	}
}

func TestNoiseTexture_Deterministic(t *testing.T) {
	a := NewNoiseTexture(2.0, rand.New(rand.NewSource(7)))
	b := NewNoiseTexture(2.0, rand.New(rand.NewSource(7)))

	point := core.NewVec3(1.3, -2.7, 0.4)
	if a.Value(0, 0, point) != b.Value(0, 0, point) {
		t.Error("Same seed must produce the same noise")
	}
}
