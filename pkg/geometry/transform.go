package geometry

import (
	"math"

	"go-pathtracer/pkg/core"
)

// Translate moves the wrapped shape by a fixed offset
type Translate struct {
	Offset core.Vec3
	Shape  core.Shape
}

// NewTranslate wraps a shape with a translation
func NewTranslate(offset core.Vec3, shape core.Shape) *Translate {
	return &Translate{Offset: offset, Shape: shape}
}

// Hit intersects the shape in local space by shifting the ray origin,
// then shifts the hit point back to world space
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	movedRay := core.NewRay(ray.Origin.Subtract(tr.Offset), ray.Direction)
	hit, isHit := tr.Shape.Hit(movedRay, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}
	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox is the child's box shifted by the offset
func (tr *Translate) BoundingBox() core.AABB {
	bbox := tr.Shape.BoundingBox()
	return core.NewAABB(bbox.Min.Add(tr.Offset), bbox.Max.Add(tr.Offset))
}

// RotateY rotates the wrapped shape about the Y axis
type RotateY struct {
	Shape    core.Shape
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps a shape with a rotation of angle degrees about Y.
// The world-space bounding box is precomputed by rotating all eight
// corners of the child's box and taking componentwise extrema.
func NewRotateY(angle float64, shape core.Shape) *RotateY {
	radians := angle * math.Pi / 180.0
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	childBox := shape.BoundingBox()
	minPoint := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxPoint := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*childBox.Max.X + float64(1-i)*childBox.Min.X
				y := float64(j)*childBox.Max.Y + float64(1-j)*childBox.Min.Y
				z := float64(k)*childBox.Max.Z + float64(1-k)*childBox.Min.Z

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z

				minPoint.X = math.Min(minPoint.X, newX)
				minPoint.Y = math.Min(minPoint.Y, y)
				minPoint.Z = math.Min(minPoint.Z, newZ)
				maxPoint.X = math.Max(maxPoint.X, newX)
				maxPoint.Y = math.Max(maxPoint.Y, y)
				maxPoint.Z = math.Max(maxPoint.Z, newZ)
			}
		}
	}

	return &RotateY{
		Shape:    shape,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		bbox:     core.NewAABB(minPoint, maxPoint),
	}
}

// Hit rotates the ray into local space by the inverse rotation, delegates,
// then rotates the hit point and normal back to world space
func (rot *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	origin := ray.Origin
	direction := ray.Direction

	origin.X = rot.cosTheta*ray.Origin.X - rot.sinTheta*ray.Origin.Z
	origin.Z = rot.sinTheta*ray.Origin.X + rot.cosTheta*ray.Origin.Z
	direction.X = rot.cosTheta*ray.Direction.X - rot.sinTheta*ray.Direction.Z
	direction.Z = rot.sinTheta*ray.Direction.X + rot.cosTheta*ray.Direction.Z

	rotatedRay := core.NewRay(origin, direction)
	hit, isHit := rot.Shape.Hit(rotatedRay, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	point := hit.Point
	normal := hit.Normal
	point.X = rot.cosTheta*hit.Point.X + rot.sinTheta*hit.Point.Z
	point.Z = -rot.sinTheta*hit.Point.X + rot.cosTheta*hit.Point.Z
	normal.X = rot.cosTheta*hit.Normal.X + rot.sinTheta*hit.Normal.Z
	normal.Z = -rot.sinTheta*hit.Normal.X + rot.cosTheta*hit.Normal.Z

	hit.Point = point
	hit.Normal = normal
	return hit, true
}

// BoundingBox returns the precomputed world-space box
func (rot *RotateY) BoundingBox() core.AABB {
	return rot.bbox
}
