package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"go-pathtracer/pkg/core"
	"go-pathtracer/pkg/integrator"
)

// Scene is the view of a scene the renderer needs. Defined here to keep
// the scene package free to depend on the renderer's camera.
type Scene interface {
	Camera() *Camera
	World() core.Shape
	Light() core.LightShape
	Background() (top, bottom core.Vec3)
}

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Independent samples averaged per pixel
	MaxDepth        int   // Recursion cutoff for the integrator
	NumWorkers      int   // 0 means runtime.NumCPU()
	Seed            int64 // Base seed for per-row generators
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Renderer drives the per-pixel sample loop over a read-only scene
type Renderer struct {
	scene  Scene
	config Config
	tracer *integrator.PathTracer
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(scene Scene, config Config) *Renderer {
	top, bottom := scene.Background()
	return &Renderer{
		scene:  scene,
		config: config,
		tracer: integrator.NewPathTracer(config.MaxDepth, top, bottom),
	}
}

// Render traces the full frame and returns the assembled image. Rows are
// rendered in parallel; the scene is read-only so no synchronization is
// needed beyond the disjoint row writes.
func (r *Renderer) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))
	r.renderRows(img)
	return img
}

// renderRow traces every pixel of row j with an independent sampler
func (r *Renderer) renderRow(img *image.RGBA, j int, sampler core.Sampler) {
	camera := r.scene.Camera()
	world := r.scene.World()
	light := r.scene.Light()

	for i := 0; i < r.config.Width; i++ {
		accum := core.NewVec3(0, 0, 0)

		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			jitter := sampler.Get2D()
			s := (float64(i) + jitter.X) / float64(r.config.Width)
			t := (float64(j) + jitter.Y) / float64(r.config.Height)

			ray := camera.GetRay(s, t, sampler)
			sampleColor := r.tracer.RayColor(ray, world, light, sampler, 0)

			// Near-zero PDF samples can be non-finite; drop them here
			accum = accum.Add(sampleColor.Sanitize())
		}

		colorVec := accum.Multiply(1.0 / float64(r.config.SamplesPerPixel))
		img.SetRGBA(i, r.config.Height-1-j, vec3ToColor(colorVec))
	}
}

// rowSampler builds the deterministic sampler for row j. Seeding by row
// rather than by worker keeps output independent of scheduling.
func (r *Renderer) rowSampler(j int) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(r.config.Seed + int64(j)*9781)))
}

// vec3ToColor converts linear color to 8-bit RGBA with gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
