// Package material defines surface properties for scene objects.
package material

import (
	"github.com/lmavr/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to light.
type Material struct {
	Color Color

	// Specular is the Phong exponent: 10 is matte, 100 is shiny.
	// Zero disables the specular highlight.
	Specular float32

	// Reflective is the mirror reflection weight in [0, 1]
	Reflective float32

	// Transparency is the transmitted light fraction in [0, 1]
	Transparency float32

	// RefractiveIndex is >= 1 (1 = air, 1.5 = glass)
	RefractiveIndex float32

	// Tint biases refracted light toward the surface color, in [0, 0.5]
	Tint float32
}

// Color aliases the core RGB8 type so scene code can stay in one import.
type Color = core.Color

// Default returns the fallback material: a matte teal surface
func Default() Material {
	return Material{
		Color:           core.NewColor(50, 235, 220),
		Specular:        20,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
		Tint:            0.1,
	}
}

// Matte returns a diffuse material with a soft highlight
func Matte(color Color) Material {
	m := Default()
	m.Color = color
	m.Specular = 10
	return m
}

// Shiny returns a diffuse material with a tight highlight
func Shiny(color Color) Material {
	m := Default()
	m.Color = color
	m.Specular = 100
	return m
}

// Mirror returns a fully reflective material
func Mirror() Material {
	m := Default()
	m.Color = core.NewColor(255, 255, 255)
	m.Reflective = 1
	return m
}

// Glass returns a fully transparent material with the given index of
// refraction and tint.
func Glass(refractiveIndex, tint float32) Material {
	m := Default()
	m.Color = core.NewColor(255, 255, 255)
	m.Transparency = 1
	m.RefractiveIndex = refractiveIndex
	m.Tint = tint
	return m
}
