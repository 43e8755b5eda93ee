package renderer

import (
	"math"

	"go-pathtracer/pkg/core"
)

// CameraConfig describes a positionable camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // 0 means focus at the look-at point
}

// Camera generates world-space rays for normalized screen coordinates
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from a config
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.LookAt.Subtract(config.LookFrom).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDistance),
		vertical:        v.Multiply(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for screen coordinates (s, t) in [0,1]², jittering
// the ray origin within the lens disk when depth of field is enabled
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	offset := core.NewVec3(0, 0, 0)
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
