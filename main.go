package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/lmavr/go-whitted-raytracer/pkg/ppm"
	"github.com/lmavr/go-whitted-raytracer/pkg/renderer"
	"github.com/lmavr/go-whitted-raytracer/pkg/scene"
)

// Config holds all the configuration for the raytracer
type Config struct {
	SceneName  string
	MaxDepth   int
	NumWorkers int
	Output     string
	Format     string
	Help       bool
	CPUProfile string
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			fmt.Printf("Could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("Could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	logger := renderer.NewDefaultLogger()

	sc, err := createScene(config.SceneName)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	depth := config.MaxDepth
	if depth <= 0 {
		depth = sc.MaxDepth
	}

	rt := renderer.NewRaytracer(sc.Camera, sc.Lights, logger)
	for _, obj := range sc.Objects {
		rt.AddObject(obj)
	}

	logger.Printf("Rendering %dx%d, depth %d...\n", sc.Camera.Width(), sc.Camera.Height(), depth)
	startTime := time.Now()
	stats := rt.TraceParallel(depth, config.NumWorkers)
	renderTime := time.Since(startTime)

	logger.Printf("Render completed in %v\n", renderTime)
	logger.Printf("Primary rays: %d, hits: %d (%.1f%%)\n",
		stats.PrimaryRays, stats.Hits, 100*float64(stats.Hits)/float64(max(stats.PrimaryRays, 1)))

	output := config.Output
	format := outputFormat(config.Format, output)
	if err := saveImage(rt.Image(), output, format); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Render saved as %s\n", output)
}

// parseFlags parses command line flags and returns configuration
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneName, "scene", "default", "Built-in scene name or YAML file path")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum recursion depth (0 = scene default)")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.Output, "output", "render.ppm", "Output file path")
	flag.StringVar(&config.Format, "format", "", "Output format: 'ppm' or 'png' (default: from extension)")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.StringVar(&config.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	flag.Parse()
	return config
}

// showHelp displays help information
func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  default       - Matte, mirror and glass spheres under mixed lighting")
	fmt.Println("  single-sphere - One red sphere under pure ambient light")
	fmt.Println("  shadow        - Occluder casting a soft shadow from a point light")
	fmt.Println("  mirror        - Fully reflective sphere next to a green one")
	fmt.Println("  glass         - Backlit glass sphere with total internal reflection")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  raytracer -scene=default -output=render.ppm")
	fmt.Println("  raytracer -scene=mirror -depth=4 -workers=4")
	fmt.Println("  raytracer -scene=scenes/my-scene.yaml -output=render.png")
}

// createScene resolves a built-in scene name or a YAML file path
func createScene(name string) (*scene.Scene, error) {
	if sc, ok := scene.Builtin(name); ok {
		return sc, nil
	}
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".yaml" || ext == ".yml" {
		return scene.Load(name)
	}
	return nil, fmt.Errorf("unknown scene %q (not a built-in name or YAML file)", name)
}

// outputFormat picks the output format from the flag or the file
// extension, defaulting to ppm.
func outputFormat(format, output string) string {
	if format != "" {
		return format
	}
	if strings.ToLower(filepath.Ext(output)) == ".png" {
		return "png"
	}
	return "ppm"
}

func saveImage(img *renderer.Image, output, format string) error {
	switch format {
	case "png":
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer f.Close()
		if err := png.Encode(f, img.ToRGBA()); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
		return nil
	case "ppm":
		return ppm.Save(output, img)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
