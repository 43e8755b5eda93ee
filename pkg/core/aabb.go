package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects this AABB using the slab method.
// Division by a zero direction component yields ±Inf, which propagates
// correctly through the comparisons; no parallel-ray branch is needed.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Axis(axis)
		t0 := (aabb.Min.Axis(axis) - ray.Origin.Axis(axis)) * invD
		t1 := (aabb.Max.Axis(axis) - ray.Origin.Axis(axis)) * invD

		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Surround returns the smallest AABB containing both this box and another
func (aabb AABB) Surround(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Contains reports whether other lies entirely inside this AABB
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && other.Max.X <= aabb.Max.X &&
		aabb.Min.Y <= other.Min.Y && other.Max.Y <= aabb.Max.Y &&
		aabb.Min.Z <= other.Min.Z && other.Max.Z <= aabb.Max.Z
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
