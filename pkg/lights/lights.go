// Package lights implements the light set and the direct illumination
// model: Lambertian diffuse plus Phong specular, attenuated by
// per-light shadow factors.
package lights

import (
	"github.com/chewxy/math32"

	"github.com/lmavr/go-whitted-raytracer/pkg/core"
	"github.com/lmavr/go-whitted-raytracer/pkg/geometry"
)

// Type discriminates the light variants
type Type int

const (
	Ambient Type = iota
	Point
	Directional
)

// Light is a tagged light source. Pos is valid for point lights, Dir
// (unit) for directional lights.
type Light struct {
	Type      Type
	Intensity float32
	Pos       core.Vec3
	Dir       core.Vec3
}

// Set aggregates the scene's lights
type Set struct {
	lights []Light
}

// AddAmbient appends an ambient light
func (s *Set) AddAmbient(intensity float32) {
	s.lights = append(s.lights, Light{Type: Ambient, Intensity: intensity})
}

// AddPoint appends a point light at a world position
func (s *Set) AddPoint(intensity float32, pos core.Vec3) {
	s.lights = append(s.lights, Light{Type: Point, Intensity: intensity, Pos: pos})
}

// AddDirectional appends a directional light; dir is normalized
func (s *Set) AddDirectional(intensity float32, dir core.Vec3) {
	s.lights = append(s.lights, Light{Type: Directional, Intensity: intensity, Dir: dir.Unit()})
}

// Len returns the number of lights in the set
func (s *Set) Len() int { return len(s.lights) }

// Lights returns a copy of the light slice
func (s *Set) Lights() []Light {
	out := make([]Light, len(s.lights))
	copy(out, s.lights)
	return out
}

// Normalize scales intensities so they sum to 1. Call it once after all
// lights are added; a near-zero total is left unchanged.
func (s *Set) Normalize() {
	var total float32
	for _, l := range s.lights {
		total += l.Intensity
	}
	if math32.Abs(total) < 1e-3 {
		return
	}
	for i := range s.lights {
		s.lights[i].Intensity /= total
	}
}

// ColorAt computes the Phong-shaded color of the sphere at index self
// at surface point p, viewed from viewFrom. Diffuse and specular
// accumulators are clamped to 1 before being applied to the surface
// color.
func (s *Set) ColorAt(objects []geometry.Sphere, self int, p, viewFrom core.Vec3) core.Color {
	obj := &objects[self]
	mat := obj.Material

	var diffuse, specular float32
	n := obj.NormalAt(p)
	v := viewFrom.Sub(p).Unit()

	for _, l := range s.lights {
		if l.Type == Ambient {
			diffuse += l.Intensity
			continue
		}

		shadow := shadowFactor(l, objects, self, p, n)
		if shadow < core.EpsCmp {
			continue
		}

		var ldir core.Vec3
		if l.Type == Point {
			ldir = l.Pos.Sub(p).Unit()
		} else {
			ldir = l.Dir
		}

		if cosNL := n.Dot(ldir); cosNL > 0 {
			diffuse += l.Intensity * cosNL * shadow
			if mat.Specular > 0 {
				r := ldir.ReflectAbout(n).Unit()
				if cosRV := r.Dot(v); cosRV > 0 {
					specular += l.Intensity * math32.Pow(cosRV, mat.Specular) * shadow
				}
			}
		}
	}

	diffuse = math32.Min(diffuse, 1)
	specular = math32.Min(specular, 1)

	return core.Color{
		R: core.ClampChannel(float32(mat.Color.R)*diffuse + 255*specular),
		G: core.ClampChannel(float32(mat.Color.G)*diffuse + 255*specular),
		B: core.ClampChannel(float32(mat.Color.B)*diffuse + 255*specular),
	}
}

// shadowFactor returns the light attenuation in [0, 1] at p due to
// occluders between p and the light. 1 means fully lit. The shadow ray
// origin is pushed off the surface along the normal hemisphere that
// faces the light, so the shaded object never occludes itself.
func shadowFactor(l Light, objects []geometry.Sphere, self int, p, n core.Vec3) float32 {
	switch l.Type {
	case Point:
		toLight := l.Pos.Sub(p)
		dist := toLight.Length()
		ldir := toLight.Unit()

		ray := core.Ray{Origin: offsetOrigin(p, n, ldir), Dir: ldir}
		nearest := math32.Inf(1)
		for i := range objects {
			if i == self {
				continue
			}
			hit := objects[i].Intersect(ray)
			if hit.Hit && hit.T > 0 && hit.T < dist && hit.T < nearest {
				nearest = hit.T
			}
		}
		if math32.IsInf(nearest, 1) {
			return 1
		}
		// softer the closer the occluder sits to the light, and the
		// more grazing the surface
		return clamp01(n.Dot(ldir) * (nearest / dist))

	case Directional:
		dir := l.Dir.Negate()
		ray := core.Ray{Origin: offsetOrigin(p, n, l.Dir), Dir: dir}
		for i := range objects {
			if i == self {
				continue
			}
			hit := objects[i].Intersect(ray)
			if !hit.Hit || hit.T <= 0 {
				continue
			}
			occluderN := objects[i].NormalAt(hit.Point)
			if n.Dot(dir) > 0 && occluderN.Dot(dir) > 0 {
				// both surfaces face away from the shadow ray
				return 1
			}
			return clamp01(n.Dot(l.Dir))
		}
		return 1

	default:
		return 1
	}
}

// offsetOrigin pushes p off the surface along the normal hemisphere
// facing the light direction
func offsetOrigin(p, n, towardLight core.Vec3) core.Vec3 {
	hemi := n
	if n.Dot(towardLight) < 0 {
		hemi = n.Negate()
	}
	return p.Add(hemi.Mul(4 * core.Eps))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
