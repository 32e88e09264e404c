package scene

import (
	"github.com/lmavr/go-whitted-raytracer/pkg/camera"
	"github.com/lmavr/go-whitted-raytracer/pkg/core"
	"github.com/lmavr/go-whitted-raytracer/pkg/geometry"
	"github.com/lmavr/go-whitted-raytracer/pkg/lights"
	"github.com/lmavr/go-whitted-raytracer/pkg/material"
)

// defaultCamera is the camera shared by the built-in scenes
func defaultCamera() *camera.Camera {
	return camera.New(camera.Config{
		FocalLength: 400,
		FovXDegrees: 100,
		FovYDegrees: 80,
		Center:      core.NewVec3(0, 0, -200),
	})
}

// NewDefaultScene builds the showcase scene: a matte red sphere flanked
// by a mirror and a tinted glass sphere, under mixed lighting.
func NewDefaultScene() *Scene {
	ls := &lights.Set{}
	ls.AddAmbient(0.3)
	ls.AddPoint(0.5, core.NewVec3(0, -1000, 1500))
	ls.AddDirectional(0.2, core.NewVec3(-0.1, -0.2, 0.3))

	glass := material.Glass(1.5, 0.2)
	glass.Color = core.NewColor(80, 160, 255)

	return &Scene{
		Camera: defaultCamera(),
		Lights: ls,
		Objects: []geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, 2000), 500, material.Matte(core.NewColor(255, 40, 40))),
			geometry.NewSphere(core.NewVec3(600, 0, 1800), 200, material.Mirror()),
			geometry.NewSphere(core.NewVec3(-450, -100, 1300), 180, glass),
			geometry.NewSphere(core.NewVec3(0, 550, 1600), 150, material.Shiny(core.NewColor(40, 220, 40))),
		},
		MaxDepth: 5,
	}
}

// NewSingleSphereScene builds one matte red sphere under pure ambient
// light: its silhouette renders exactly red, everything else black.
func NewSingleSphereScene() *Scene {
	ls := &lights.Set{}
	ls.AddAmbient(1.0)

	return &Scene{
		Camera: defaultCamera(),
		Lights: ls,
		Objects: []geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, 2000), 500, material.Material{
				Color:           core.NewColor(255, 0, 0),
				RefractiveIndex: 1,
			}),
		},
		MaxDepth: 3,
	}
}

// NewShadowScene puts a small opaque sphere between a point light and
// a large sphere, casting a soft shadow.
func NewShadowScene() *Scene {
	ls := &lights.Set{}
	ls.AddAmbient(0.2)
	ls.AddPoint(0.8, core.NewVec3(0, -1000, 1500))

	return &Scene{
		Camera: defaultCamera(),
		Lights: ls,
		Objects: []geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, 2000), 500, material.Matte(core.NewColor(220, 220, 220))),
			geometry.NewSphere(core.NewVec3(0, -400, 1500), 150, material.Matte(core.NewColor(120, 120, 120))),
		},
		MaxDepth: 3,
	}
}

// NewMirrorScene places a fully reflective sphere next to a green one;
// the reflection only appears at depth 2 or more.
func NewMirrorScene() *Scene {
	ls := &lights.Set{}
	ls.AddAmbient(0.2)
	ls.AddDirectional(0.8, core.NewVec3(-0.1, -0.2, 0.3))

	return &Scene{
		Camera: defaultCamera(),
		Lights: ls,
		Objects: []geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, 2000), 500, material.Mirror()),
			geometry.NewSphere(core.NewVec3(600, 0, 1800), 200, material.Matte(core.NewColor(0, 255, 0))),
		},
		MaxDepth: 4,
	}
}

// NewGlassScene backlights a clear glass sphere with a directional
// light so grazing rays go through total internal reflection.
func NewGlassScene() *Scene {
	ls := &lights.Set{}
	ls.AddAmbient(0.1)
	ls.AddDirectional(0.9, core.NewVec3(0, 0, -1))

	return &Scene{
		Camera: defaultCamera(),
		Lights: ls,
		Objects: []geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, 1200), 200, material.Glass(1.5, 0)),
			geometry.NewSphere(core.NewVec3(0, 300, 2500), 400, material.Matte(core.NewColor(200, 60, 200))),
		},
		MaxDepth: 6,
	}
}

// Builtin returns the named built-in scene, or false if the name is
// unknown.
func Builtin(name string) (*Scene, bool) {
	switch name {
	case "default":
		return NewDefaultScene(), true
	case "single-sphere":
		return NewSingleSphereScene(), true
	case "shadow":
		return NewShadowScene(), true
	case "mirror":
		return NewMirrorScene(), true
	case "glass":
		return NewGlassScene(), true
	default:
		return nil, false
	}
}
