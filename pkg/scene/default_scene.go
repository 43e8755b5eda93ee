package scene

import (
	"math/rand"

	"go-pathtracer/pkg/core"
	"go-pathtracer/pkg/geometry"
	"go-pathtracer/pkg/material"
	"go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates an open scene lit by a sky gradient: a checkered
// ground sphere with diffuse, glass, metal and noise-textured spheres.
func NewDefaultScene(aspectRatio float64, random *rand.Rand) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        25.0,
		AspectRatio: aspectRatio,
	}

	checker := material.NewCheckerTexture(
		material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
	)
	ground := material.NewTexturedLambertian(checker)
	diffuse := material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.05)
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4.0, random))

	objects := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, diffuse),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, metal),
		geometry.NewSphere(core.NewVec3(0, 1, -4), 1.0, marble),
	)

	top := core.NewVec3(0.5, 0.7, 1.0)
	bottom := core.NewVec3(1.0, 1.0, 1.0)

	// No explicit light: the sky gradient illuminates everything
	return newScene(cameraConfig, objects, nil, top, bottom, random)
}
