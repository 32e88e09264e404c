package renderer

import (
	"testing"

	"github.com/lmavr/go-whitted-raytracer/pkg/core"
	"github.com/lmavr/go-whitted-raytracer/pkg/geometry"
	"github.com/lmavr/go-whitted-raytracer/pkg/material"
)

func testScene() []geometry.Sphere {
	return []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, 2000), 500, material.Matte(core.NewColor(255, 0, 0))),
		geometry.NewSphere(core.NewVec3(600, 0, 1800), 200, material.Mirror()),
		geometry.NewSphere(core.NewVec3(-450, -100, 1300), 180, material.Glass(1.5, 0.2)),
	}
}

func imagesEqual(a, b *Image) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for row := 0; row < a.Height(); row++ {
		for col := 0; col < a.Width(); col++ {
			if a.At(row, col) != b.At(row, col) {
				return false
			}
		}
	}
	return true
}

func TestParallelMatchesSequential(t *testing.T) {
	sequential := testRaytracer(testScene()...)
	parallel := testRaytracer(testScene()...)

	sequential.Trace(4)
	parallel.TraceParallel(4, 4)

	if !imagesEqual(sequential.Image(), parallel.Image()) {
		t.Error("parallel render differs from sequential render")
	}
}

func TestTraceStatsAccounting(t *testing.T) {
	rt := testRaytracer(testScene()...)
	stats := rt.TraceParallel(3, 2)

	wantPixels := rt.camera.Width() * rt.camera.Height()
	if stats.TotalPixels != wantPixels {
		t.Errorf("TotalPixels = %d, want %d", stats.TotalPixels, wantPixels)
	}
	// one primary ray per plane coordinate actually traced
	if stats.PrimaryRays == 0 || stats.PrimaryRays > wantPixels {
		t.Errorf("PrimaryRays = %d, want in (0, %d]", stats.PrimaryRays, wantPixels)
	}
	if stats.Hits <= 0 || stats.Hits > stats.PrimaryRays {
		t.Errorf("Hits = %d out of %d primary rays", stats.Hits, stats.PrimaryRays)
	}
}

func TestRepeatedTraceIsDeterministic(t *testing.T) {
	first := testRaytracer(testScene()...)
	second := testRaytracer(testScene()...)

	first.TraceParallel(4, 3)
	second.TraceParallel(4, 3)

	if !imagesEqual(first.Image(), second.Image()) {
		t.Error("two renders of the same scene differ")
	}
}
