// Package geometry provides the analytic primitives the tracer renders.
package geometry

import (
	"github.com/chewxy/math32"

	"github.com/lmavr/go-whitted-raytracer/pkg/core"
	"github.com/lmavr/go-whitted-raytracer/pkg/material"
)

// HitRecord is the result of a ray/object intersection in world
// coordinates. The zero value is not a hit; T is the ray parameter of
// the intersection, +Inf when there is none.
type HitRecord struct {
	Point core.Vec3
	Hit   bool
	T     float32
}

// NoHit returns a record for a ray that missed
func NoHit() HitRecord {
	return HitRecord{T: math32.Inf(1)}
}

// Sphere is an analytic sphere with a surface material
type Sphere struct {
	Center   core.Vec3
	Radius   float32
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, mat material.Material) Sphere {
	return Sphere{Center: center, Radius: radius, Material: mat}
}

// NormalAt returns the outward unit normal, assuming p is on the sphere
func (s Sphere) NormalAt(p core.Vec3) core.Vec3 {
	return p.Sub(s.Center).Unit()
}

// Contains reports whether p is strictly inside the sphere
func (s Sphere) Contains(p core.Vec3) bool {
	pc := p.Sub(s.Center)
	return pc.Dot(pc) < s.Radius*s.Radius
}

// Intersect solves the ray/sphere quadratic and returns the nearest
// strictly positive root. Tangent rays (zero discriminant) miss. A ray
// that starts inside the sphere yields the positive exit root, which
// refraction from the inside relies on.
func (s Sphere) Intersect(ray core.Ray) HitRecord {
	rec := NoHit()

	l := ray.Origin.Sub(s.Center)
	a := ray.Dir.Dot(ray.Dir)
	b := 2 * ray.Dir.Dot(l)
	c := l.Dot(l) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return rec
	}

	sqrtDisc := math32.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	switch {
	case t1 > 0 && t2 > 0:
		rec.T = math32.Min(t1, t2)
	case t1 > 0:
		rec.T = t1
	case t2 > 0:
		rec.T = t2
	default:
		// both roots behind the origin
		return rec
	}

	rec.Hit = true
	rec.Point = ray.At(rec.T)
	return rec
}
