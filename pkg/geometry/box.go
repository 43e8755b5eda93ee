package geometry

import "go-pathtracer/pkg/core"

// Box is an axis-aligned box assembled from six rectangles, two per axis
// with the near face flipped so all normals point outward
type Box struct {
	PMin, PMax core.Vec3
	faces      *List
}

// NewBox creates a box spanning the corners p0 (min) and p1 (max)
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	faces := NewList(
		NewRectXY(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material),
		NewFlipNormals(NewRectXY(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material)),
		NewRectXZ(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material),
		NewFlipNormals(NewRectXZ(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material)),
		NewRectYZ(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material),
		NewFlipNormals(NewRectYZ(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material)),
	)

	return &Box{PMin: p0, PMax: p1, faces: faces}
}

// Hit delegates to the six faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox is taken directly from the corner points, which is exact
func (b *Box) BoundingBox() core.AABB {
	return core.NewAABB(b.PMin, b.PMax)
}
