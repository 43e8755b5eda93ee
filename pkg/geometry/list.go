package geometry

import "go-pathtracer/pkg/core"

// List is an unordered group of shapes intersected by linear scan
type List struct {
	Shapes []core.Shape
}

// NewList creates a list from the given shapes
func NewList(shapes ...core.Shape) *List {
	return &List{Shapes: shapes}
}

// Add appends shapes to the list
func (l *List) Add(shapes ...core.Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Hit returns the closest intersection among all shapes in the list,
// narrowing tMax as closer hits are found
func (l *List) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar, sampler); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all child bounding boxes
func (l *List) BoundingBox() core.AABB {
	if len(l.Shapes) == 0 {
		return core.AABB{}
	}

	bbox := l.Shapes[0].BoundingBox()
	for _, shape := range l.Shapes[1:] {
		bbox = bbox.Surround(shape.BoundingBox())
	}
	return bbox
}
