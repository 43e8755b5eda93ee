package core

import (
	"math/rand"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		ray       Ray
		expectHit bool
	}{
		{"straight through center", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), true},
		{"negative direction", NewRay(NewVec3(5, 0, 0), NewVec3(-1, 0, 0)), true},
		{"diagonal hit", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), true},
		{"misses above", NewRay(NewVec3(-5, 2, 0), NewVec3(1, 0, 0)), false},
		{"points away", NewRay(NewVec3(-5, 0, 0), NewVec3(-1, 0, 0)), false},
		{"parallel inside slab", NewRay(NewVec3(-5, 0.5, 0.5), NewVec3(1, 0, 0)), true},
		{"parallel outside slab", NewRay(NewVec3(-5, 3, 0.5), NewVec3(1, 0, 0)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.001, 1000.0); got != tt.expectHit {
				t.Errorf("Expected hit=%t, got %t", tt.expectHit, got)
			}
		})
	}
}

func TestAABB_Hit_ZeroDirectionComponent(t *testing.T) {
	// Division by a zero component must produce ±Inf, not panic
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	// Ray travels along X only; Y and Z components are exactly zero
	inside := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))
	if !box.Hit(inside, 0.001, 1000.0) {
		t.Error("Expected hit for axis-parallel ray through box")
	}

	outside := NewRay(NewVec3(-1, 2.0, 0.5), NewVec3(1, 0, 0))
	if box.Hit(outside, 0.001, 1000.0) {
		t.Error("Expected miss for axis-parallel ray outside slab")
	}
}

func TestAABB_Hit_NarrowedInterval(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-2, 0.5, 0.5), NewVec3(1, 0, 0))

	// Box lies in t ∈ [2, 3]; an interval ending before it must miss
	if box.Hit(ray, 0.001, 1.5) {
		t.Error("Expected miss when tMax excludes the box")
	}
	if box.Hit(ray, 3.5, 1000.0) {
		t.Error("Expected miss when tMin excludes the box")
	}
	if !box.Hit(ray, 0.001, 1000.0) {
		t.Error("Expected hit for unrestricted interval")
	}
}

func TestAABB_Surround(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 2, 3))
	b := NewAABB(NewVec3(-1, 1, 1), NewVec3(0.5, 4, 2))

	union := a.Surround(b)

	if !union.Contains(a) || !union.Contains(b) {
		t.Errorf("Surround %v does not contain both inputs", union)
	}

	expected := NewAABB(NewVec3(-1, 0, 0), NewVec3(1, 4, 3))
	if union != expected {
		t.Errorf("Expected smallest box %v, got %v", expected, union)
	}
}

func TestAABB_Surround_RandomBoxesProperty(t *testing.T) {
	// For random boxes: the surround contains both and is componentwise tight
	random := rand.New(rand.NewSource(7))

	randomBox := func() AABB {
		p := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		q := p.Add(NewVec3(random.Float64()*3, random.Float64()*3, random.Float64()*3))
		return NewAABB(p, q)
	}

	for i := 0; i < 100; i++ {
		a, b := randomBox(), randomBox()
		union := a.Surround(b)

		if !union.IsValid() {
			t.Fatalf("Invalid surround %v", union)
		}
		if !union.Contains(a) || !union.Contains(b) {
			t.Fatalf("Surround %v does not contain inputs %v, %v", union, a, b)
		}

		// Tightness: every face of the union touches one of the inputs
		for axis := 0; axis < 3; axis++ {
			if union.Min.Axis(axis) != a.Min.Axis(axis) && union.Min.Axis(axis) != b.Min.Axis(axis) {
				t.Fatalf("Surround min not tight on axis %d", axis)
			}
			if union.Max.Axis(axis) != a.Max.Axis(axis) && union.Max.Axis(axis) != b.Max.Axis(axis) {
				t.Fatalf("Surround max not tight on axis %d", axis)
			}
		}
	}
}
