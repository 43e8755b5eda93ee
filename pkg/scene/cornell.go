package scene

import (
	"math/rand"

	"go-pathtracer/pkg/core"
	"go-pathtracer/pkg/geometry"
	"go-pathtracer/pkg/material"
	"go-pathtracer/pkg/renderer"
)

// cornellCamera is shared by the Cornell box variants
func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	}
}

// cornellWalls builds the five walls of the standard 555-unit Cornell box.
// Walls whose front face must point into the box interior are flipped.
func cornellWalls(objects *geometry.List) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	objects.Add(
		geometry.NewFlipNormals(geometry.NewRectYZ(0, 555, 0, 555, 555, green)), // left
		geometry.NewRectYZ(0, 555, 0, 555, 0, red),                              // right
		geometry.NewRectXZ(0, 555, 0, 555, 0, white),                            // floor
		geometry.NewFlipNormals(geometry.NewRectXZ(0, 555, 0, 555, 555, white)), // ceiling
		geometry.NewFlipNormals(geometry.NewRectXY(0, 555, 0, 555, 555, white)), // back
	)
}

// NewCornellScene creates the classic Cornell box with two rotated boxes
// and a ceiling area light sampled directly by the integrator.
func NewCornellScene(random *rand.Rand) *Scene {
	objects := geometry.NewList()
	cornellWalls(objects)

	lightMaterial := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	lightRect := geometry.NewRectXZ(213, 343, 227, 332, 554, lightMaterial)
	objects.Add(geometry.NewFlipNormals(lightRect))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	objects.Add(
		geometry.NewTranslate(core.NewVec3(130, 0, 65),
			geometry.NewRotateY(-18,
				geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white))),
		geometry.NewTranslate(core.NewVec3(265, 0, 295),
			geometry.NewRotateY(15,
				geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white))),
	)

	// Enclosed scene: black background, all light comes from the ceiling
	black := core.NewVec3(0, 0, 0)
	return newScene(cornellCamera(), objects, lightRect, black, black, random)
}

// NewCornellSmokeScene creates the Cornell box variant with the two boxes
// replaced by participating media (white fog and black smoke).
func NewCornellSmokeScene(random *rand.Rand) *Scene {
	objects := geometry.NewList()
	cornellWalls(objects)

	lightMaterial := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	lightRect := geometry.NewRectXZ(113, 443, 127, 432, 554, lightMaterial)
	objects.Add(geometry.NewFlipNormals(lightRect))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	fogBoundary := geometry.NewTranslate(core.NewVec3(130, 0, 65),
		geometry.NewRotateY(-18,
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)))
	smokeBoundary := geometry.NewTranslate(core.NewVec3(265, 0, 295),
		geometry.NewRotateY(15,
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)))

	objects.Add(
		geometry.NewConstantMedium(fogBoundary, 0.01, material.NewIsotropic(core.NewVec3(1, 1, 1))),
		geometry.NewConstantMedium(smokeBoundary, 0.01, material.NewIsotropic(core.NewVec3(0, 0, 0))),
	)

	black := core.NewVec3(0, 0, 0)
	return newScene(cornellCamera(), objects, lightRect, black, black, random)
}
