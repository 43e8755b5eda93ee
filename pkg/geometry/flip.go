package geometry

import "go-pathtracer/pkg/core"

// FlipNormals inverts the normals of the wrapped shape. Used to make a
// rectangle's front face point inward for box interiors.
type FlipNormals struct {
	Shape core.Shape
}

// NewFlipNormals wraps a shape with inverted normals
func NewFlipNormals(shape core.Shape) *FlipNormals {
	return &FlipNormals{Shape: shape}
}

// Hit delegates to the wrapped shape and negates the returned normal
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	hit, isHit := f.Shape.Hit(ray, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

// BoundingBox delegates to the wrapped shape
func (f *FlipNormals) BoundingBox() core.AABB {
	return f.Shape.BoundingBox()
}
