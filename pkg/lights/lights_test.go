package lights

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmavr/go-whitted-raytracer/pkg/core"
	"github.com/lmavr/go-whitted-raytracer/pkg/geometry"
	"github.com/lmavr/go-whitted-raytracer/pkg/material"
)

func TestNormalizeSumsToOne(t *testing.T) {
	var s Set
	s.AddAmbient(2)
	s.AddPoint(3, core.NewVec3(0, -100, 0))
	s.AddDirectional(5, core.NewVec3(0, 0, 1))
	s.Normalize()

	var total float32
	for _, l := range s.Lights() {
		total += l.Intensity
	}
	assert.InDelta(t, 1.0, total, 1e-5)
}

func TestNormalizeLeavesTinyTotalAlone(t *testing.T) {
	var s Set
	s.AddAmbient(1e-4)
	s.Normalize()
	assert.InDelta(t, 1e-4, s.Lights()[0].Intensity, 1e-8)
}

func TestAddDirectionalNormalizesDirection(t *testing.T) {
	var s Set
	s.AddDirectional(1, core.NewVec3(0, 0, 10))
	assert.InDelta(t, 1.0, s.Lights()[0].Dir.Length(), 1e-5)
}

func TestColorAtAmbientOnly(t *testing.T) {
	var s Set
	s.AddAmbient(1)
	s.Normalize()

	objects := []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, 2000), 500, material.Matte(core.NewColor(255, 0, 0))),
	}
	p := core.NewVec3(0, 0, 1500) // point nearest the camera
	got := s.ColorAt(objects, 0, p, core.NewVec3(0, 0, -200))
	assert.Equal(t, core.NewColor(255, 0, 0), got)
}

func TestColorAtPointLightLambert(t *testing.T) {
	var s Set
	s.AddPoint(1, core.NewVec3(0, 0, 0))
	s.Normalize()

	objects := []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, 1000), 100, material.Material{
			Color:           core.NewColor(200, 200, 200),
			RefractiveIndex: 1,
		}),
	}
	// facing the light head-on: N·L = 1, full diffuse
	facing := s.ColorAt(objects, 0, core.NewVec3(0, 0, 900), core.NewVec3(0, 0, 0))
	assert.Equal(t, uint8(200), facing.R)

	// on the far side: N·L <= 0, no contribution
	dark := s.ColorAt(objects, 0, core.NewVec3(0, 0, 1100), core.NewVec3(0, 0, 0))
	assert.Equal(t, core.Color{}, dark)
}

func TestShadowFactorRange(t *testing.T) {
	occluder := geometry.NewSphere(core.NewVec3(0, -400, 1500), 150, material.Default())
	lit := geometry.NewSphere(core.NewVec3(0, 0, 1500), 300, material.Default())
	objects := []geometry.Sphere{lit, occluder}

	lights := []Light{
		{Type: Point, Intensity: 1, Pos: core.NewVec3(0, -1000, 1500)},
		{Type: Directional, Intensity: 1, Dir: core.NewVec3(0, -1, 0)},
	}

	// sample points around the lit sphere
	for _, l := range lights {
		for _, ang := range []float32{0, 0.5, 1, 1.5, 2, 2.5, 3} {
			p := lit.Center.Add(core.NewVec3(300*math32.Sin(ang), -300*math32.Cos(ang), 0))
			n := lit.NormalAt(p)
			f := shadowFactor(l, objects, 0, p, n)
			require.GreaterOrEqual(t, f, float32(0), "angle %v", ang)
			require.LessOrEqual(t, f, float32(1), "angle %v", ang)
		}
	}
}

func TestPointLightShadowDarkens(t *testing.T) {
	var s Set
	s.AddPoint(1, core.NewVec3(0, -1000, 1500))
	s.Normalize()

	sphere := geometry.NewSphere(core.NewVec3(0, 0, 1500), 300, material.Matte(core.NewColor(255, 255, 255)))
	occluder := geometry.NewSphere(core.NewVec3(0, -500, 1500), 100, material.Default())

	// top of the sphere, directly under the light
	p := core.NewVec3(0, -300, 1500)
	n := sphere.NormalAt(p)

	unshadowed := shadowFactor(s.Lights()[0], []geometry.Sphere{sphere}, 0, p, n)
	shadowed := shadowFactor(s.Lights()[0], []geometry.Sphere{sphere, occluder}, 0, p, n)

	assert.Equal(t, float32(1), unshadowed)
	assert.Less(t, shadowed, unshadowed)
	assert.GreaterOrEqual(t, shadowed, float32(0))
}

func TestSelfNeverOccludes(t *testing.T) {
	var s Set
	s.AddPoint(1, core.NewVec3(0, -1000, 0))
	s.Normalize()

	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 100, material.Default())
	p := core.NewVec3(0, -100, 0)
	f := shadowFactor(s.Lights()[0], []geometry.Sphere{sphere}, 0, p, sphere.NormalAt(p))
	assert.Equal(t, float32(1), f)
}

func TestSpecularHighlight(t *testing.T) {
	var s Set
	s.AddPoint(1, core.NewVec3(0, 0, 0))
	s.Normalize()

	shiny := material.Shiny(core.NewColor(10, 10, 10))
	matte := shiny
	matte.Specular = 0

	sphere := geometry.NewSphere(core.NewVec3(0, 0, 1000), 100, shiny)
	p := core.NewVec3(0, 0, 900)

	// viewer on the mirror direction of the light: strong highlight
	withSpec := s.ColorAt([]geometry.Sphere{sphere}, 0, p, core.NewVec3(0, 0, 0))

	sphere.Material = matte
	withoutSpec := s.ColorAt([]geometry.Sphere{sphere}, 0, p, core.NewVec3(0, 0, 0))

	assert.Greater(t, withSpec.R, withoutSpec.R)
}
