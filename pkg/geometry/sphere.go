package geometry

import (
	"math"

	"go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	// Quadratic equation coefficients: at² + 2bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}

	// Try the closer root first, then the farther one
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(normal)

	return &core.HitRecord{
		T:        root,
		Point:    point,
		Normal:   normal,
		U:        u,
		V:        v,
		Material: s.Material,
	}, true
}

// sphereUV maps a point on the unit sphere to (u,v) in [0,1]²
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}

// PDFValue returns the solid-angle density of sampling direction from origin
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, isHit := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil); !isHit {
		return 0
	}

	distSquared := s.Center.Subtract(origin).LengthSquared()
	if distSquared <= s.Radius*s.Radius {
		// Origin inside the sphere: directions are uniform over the full sphere
		return 1.0 / (4.0 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distSquared)
	solidAngle := 2.0 * math.Pi * (1.0 - cosThetaMax)
	return 1.0 / solidAngle
}

// RandomDirection draws a direction from origin toward the sphere, uniform
// over the cone of directions that subtend it
func (s *Sphere) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	distSquared := toCenter.LengthSquared()
	if distSquared <= s.Radius*s.Radius {
		return core.SampleOnUnitSphere(sampler.Get2D())
	}

	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distSquared)
	return core.SampleCone(toCenter, cosThetaMax, sampler.Get2D())
}
