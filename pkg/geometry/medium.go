package geometry

import (
	"math"

	"go-pathtracer/pkg/core"
)

// ConstantMedium models an isotropic participating medium of uniform
// density bounded by another shape. Rays scatter at an exponentially
// distributed free-flight distance inside the boundary.
type ConstantMedium struct {
	Boundary core.Shape
	Density  float64
	Phase    core.Material
}

// NewConstantMedium creates a medium bounded by the given shape
func NewConstantMedium(boundary core.Shape, density float64, phase core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary: boundary,
		Density:  density,
		Phase:    phase,
	}
}

// Hit samples a scattering event inside the boundary. The entry hit is
// found over the unrestricted range, the exit just past it; the interval
// is clamped to [tMin, tMax] before the free-flight test. The sampler
// supplies the free-flight variate, keeping seeded renders reproducible.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	entry, isHit := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}

	exit, isHit := m.Boundary.Hit(ray, entry.T+1e-4, math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}

	tEntry := math.Max(entry.T, tMin)
	tExit := math.Min(exit.T, tMax)
	if tEntry >= tExit {
		return nil, false
	}
	if tEntry < 0 {
		tEntry = 0
	}

	// Free-flight distance is in world units; divide by the direction
	// length to convert back to a ray parameter.
	directionLength := ray.Direction.Length()
	distanceInside := (tExit - tEntry) * directionLength
	hitDistance := -math.Log(sampler.Get1D()) / m.Density
	if hitDistance >= distanceInside {
		return nil, false
	}

	t := tEntry + hitDistance/directionLength
	return &core.HitRecord{
		T:     t,
		Point: ray.At(t),
		// Isotropic media have no surface normal; this is a placeholder
		Normal:   core.NewVec3(1, 0, 0),
		U:        0,
		V:        0,
		Material: m.Phase,
	}, true
}

// BoundingBox delegates to the boundary shape
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
