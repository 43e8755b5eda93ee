package geometry

import (
	"math/rand"
	"sort"

	"go-pathtracer/pkg/core"
)

// BVHNode is a binary bounding-volume-hierarchy node. Construction picks a
// random axis, sorts by bounding-box minimum and splits at the median; the
// cached box is the surround of both children. Single-element partitions
// duplicate the element into both children.
type BVHNode struct {
	left  core.Shape
	right core.Shape
	bbox  core.AABB
}

// NewBVHNode builds a BVH over the given shapes. The shape slice is copied
// before sorting so callers keep their ordering. The random source drives
// only axis selection; passing a seeded generator makes builds reproducible.
// Panics on an empty list: that is a malformed scene and should fail before
// any ray is traced.
func NewBVHNode(shapes []core.Shape, random *rand.Rand) *BVHNode {
	if len(shapes) == 0 {
		panic("geometry: BVH built from empty shape list")
	}

	sorted := make([]core.Shape, len(shapes))
	copy(sorted, shapes)
	return buildBVH(sorted, random)
}

func buildBVH(shapes []core.Shape, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	sort.Slice(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Min.Axis(axis) < shapes[j].BoundingBox().Min.Axis(axis)
	})

	var left, right core.Shape
	switch len(shapes) {
	case 1:
		left, right = shapes[0], shapes[0]
	case 2:
		left, right = shapes[0], shapes[1]
	default:
		mid := len(shapes) / 2
		left = buildBVH(shapes[:mid], random)
		right = buildBVH(shapes[mid:], random)
	}

	return &BVHNode{
		left:  left,
		right: right,
		bbox:  left.BoundingBox().Surround(right.BoundingBox()),
	}
}

// Hit tests the node's box first, then both children, returning the closer hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	if !n.bbox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	hitLeft, okLeft := n.left.Hit(ray, tMin, tMax, sampler)
	hitRight, okRight := n.right.Hit(ray, tMin, tMax, sampler)

	switch {
	case okLeft && okRight:
		if hitLeft.T < hitRight.T {
			return hitLeft, true
		}
		return hitRight, true
	case okLeft:
		return hitLeft, true
	case okRight:
		return hitRight, true
	default:
		return nil, false
	}
}

// BoundingBox returns the cached surround of both children
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
