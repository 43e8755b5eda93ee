// Package scene assembles hardcoded object lists into renderable scenes:
// camera, primitive tree with materials, optional light shape for direct
// sampling, and background colors.
package scene

import (
	"math/rand"

	"go-pathtracer/pkg/core"
	"go-pathtracer/pkg/geometry"
	"go-pathtracer/pkg/renderer"
)

// Scene contains everything needed to render a frame. Immutable once built.
type Scene struct {
	camera *renderer.Camera
	world  core.Shape
	light  core.LightShape
	top    core.Vec3
	bottom core.Vec3
}

// newScene builds the BVH over the object list and finalizes the scene.
// The random source drives BVH axis selection only.
func newScene(cameraConfig renderer.CameraConfig, objects *geometry.List, light core.LightShape, top, bottom core.Vec3, random *rand.Rand) *Scene {
	return &Scene{
		camera: renderer.NewCamera(cameraConfig),
		world:  geometry.NewBVHNode(objects.Shapes, random),
		light:  light,
		top:    top,
		bottom: bottom,
	}
}

// Camera returns the scene's camera
func (s *Scene) Camera() *renderer.Camera { return s.camera }

// World returns the intersection structure for the whole scene
func (s *Scene) World() core.Shape { return s.world }

// Light returns the shape sampled for direct lighting, or nil
func (s *Scene) Light() core.LightShape { return s.light }

// Background returns the sky gradient colors (both zero for enclosed scenes)
func (s *Scene) Background() (top, bottom core.Vec3) { return s.top, s.bottom }
