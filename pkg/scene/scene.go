// Package scene assembles cameras, lights and objects into renderable
// scenes, either hard-coded or loaded from YAML files.
package scene

import (
	"github.com/lmavr/go-whitted-raytracer/pkg/camera"
	"github.com/lmavr/go-whitted-raytracer/pkg/geometry"
	"github.com/lmavr/go-whitted-raytracer/pkg/lights"
)

// Scene holds everything one render needs
type Scene struct {
	Camera   *camera.Camera
	Lights   *lights.Set
	Objects  []geometry.Sphere
	MaxDepth int
}
