package main

import (
	"flag"
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"time"

	"go-pathtracer/pkg/renderer"
	"go-pathtracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene: 'default', 'cornell' or 'cornell-smoke'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels (0 picks the scene's aspect ratio)")
	samples := flag.Int("samples", 100, "Samples per pixel")
	maxDepth := flag.Int("max-depth", 50, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = all CPUs)")
	seed := flag.Int64("seed", 42, "Random seed")
	output := flag.String("output", "render.png", "Output PNG file")
	flag.Parse()

	random := rand.New(rand.NewSource(*seed))

	var selected *scene.Scene
	switch *sceneType {
	case "cornell":
		selected = scene.NewCornellScene(random)
		if *height == 0 {
			*height = *width
		}
	case "cornell-smoke":
		selected = scene.NewCornellSmokeScene(random)
		if *height == 0 {
			*height = *width
		}
	case "default":
		if *height == 0 {
			*height = *width * 9 / 16
		}
		selected = scene.NewDefaultScene(float64(*width)/float64(*height), random)
	default:
		fmt.Fprintf(os.Stderr, "Unknown scene type: %s\n", *sceneType)
		os.Exit(1)
	}

	config := renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *maxDepth,
		NumWorkers:      *workers,
		Seed:            *seed,
	}

	fmt.Printf("Rendering %s scene at %dx%d, %d samples/pixel...\n",
		*sceneType, config.Width, config.Height, config.SamplesPerPixel)

	start := time.Now()
	img := renderer.NewRenderer(selected, config).Render()
	fmt.Printf("Render completed in %v\n", time.Since(start))

	file, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s\n", *output)
}
