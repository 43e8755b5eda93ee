package geometry

import (
	"math"

	"go-pathtracer/pkg/core"
)

// Rectangle bounding boxes are extruded by this much along the constant
// axis; a degenerate flat box breaks BVH partitioning and slab tests.
const rectThickness = 1e-4

// RectXY is an axis-aligned rectangle in the z=K plane
type RectXY struct {
	X0, X1   float64
	Y0, Y1   float64
	K        float64
	Material core.Material
}

// NewRectXY creates a rectangle spanning [x0,x1]×[y0,y1] at z=k
func NewRectXY(x0, x1, y0, y1, k float64, material core.Material) *RectXY {
	return &RectXY{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit tests if a ray intersects with the rectangle
func (r *RectXY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	// An in-plane ray yields t = 0/0 = NaN; the inverted comparison
	// rejects it, since every comparison with NaN is false
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}

	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(0, 0, 1),
		U:        (x - r.X0) / (r.X1 - r.X0),
		V:        (y - r.Y0) / (r.Y1 - r.Y0),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle extruded slightly along Z
func (r *RectXY) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectThickness),
		core.NewVec3(r.X1, r.Y1, r.K+rectThickness),
	)
}

// RectYZ is an axis-aligned rectangle in the x=K plane
type RectYZ struct {
	Y0, Y1   float64
	Z0, Z1   float64
	K        float64
	Material core.Material
}

// NewRectYZ creates a rectangle spanning [y0,y1]×[z0,z1] at x=k
func NewRectYZ(y0, y1, z0, z1, k float64, material core.Material) *RectYZ {
	return &RectYZ{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray intersects with the rectangle
func (r *RectYZ) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(1, 0, 0),
		U:        (y - r.Y0) / (r.Y1 - r.Y0),
		V:        (z - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle extruded slightly along X
func (r *RectYZ) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(r.K-rectThickness, r.Y0, r.Z0),
		core.NewVec3(r.K+rectThickness, r.Y1, r.Z1),
	)
}

// RectXZ is an axis-aligned rectangle in the y=K plane
type RectXZ struct {
	X0, X1   float64
	Z0, Z1   float64
	K        float64
	Material core.Material
}

// NewRectXZ creates a rectangle spanning [x0,x1]×[z0,z1] at y=k
func NewRectXZ(x0, x1, z0, z1, k float64, material core.Material) *RectXZ {
	return &RectXZ{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray intersects with the rectangle
func (r *RectXZ) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(0, 1, 0),
		U:        (x - r.X0) / (r.X1 - r.X0),
		V:        (z - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle extruded slightly along Y
func (r *RectXZ) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectThickness, r.Z0),
		core.NewVec3(r.X1, r.K+rectThickness, r.Z1),
	)
}

// PDFValue returns the solid-angle density of sampling direction from origin.
// Used when the rectangle is an area light.
func (r *RectXZ) PDFValue(origin, direction core.Vec3) float64 {
	hit, isHit := r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil)
	if !isHit {
		return 0
	}

	area := (r.X1 - r.X0) * (r.Z1 - r.Z0)
	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	if cosine == 0 {
		return 0
	}

	return distanceSquared / (cosine * area)
}

// RandomDirection draws a direction from origin toward a uniformly sampled
// point on the rectangle
func (r *RectXZ) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	point := core.NewVec3(
		r.X0+s.X*(r.X1-r.X0),
		r.K,
		r.Z0+s.Y*(r.Z1-r.Z0),
	)
	return point.Subtract(origin)
}
