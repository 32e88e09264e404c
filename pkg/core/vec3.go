package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 represents a 3D vector of float32 components
type Vec3 struct {
	X, Y, Z float32
}

// Vec3i represents a 3D vector of integer components
type Vec3i struct {
	X, Y, Z int
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("[%.4g, %.4g, %.4g]", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference of two vectors
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns the vector scaled by a scalar
func (v Vec3) Mul(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Div returns the vector divided by a scalar
func (v Vec3) Div(scalar float32) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// MulVec returns the element-wise product of two vectors
func (v Vec3) MulVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// DivVec returns the element-wise quotient of two vectors
func (v Vec3) DivVec(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Negate returns the vector with all components negated
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared magnitude of the vector
func (v Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Unit returns a unit vector in the same direction
func (v Vec3) Unit() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// ReflectAbout returns the reflection of v about the given axis,
// 2*(v·n̂)*n̂ − v. The axis is normalized internally.
func (v Vec3) ReflectAbout(axis Vec3) Vec3 {
	n := axis.Unit()
	d := v.Dot(n)
	return n.Mul(2 * d).Sub(v)
}

// Cos returns the cosine of the angle between two vectors
func (v Vec3) Cos(other Vec3) float32 {
	return v.Dot(other) / (v.Length() * other.Length())
}

// Angle returns the angle between two vectors in radians
func (v Vec3) Angle(other Vec3) float32 {
	return math32.Acos(v.Cos(other))
}

// ApproxEqual reports whether two vectors are equal within an
// absolute per-component tolerance of Eps.
func (v Vec3) ApproxEqual(other Vec3) bool {
	return math32.Abs(v.X-other.X) < Eps &&
		math32.Abs(v.Y-other.Y) < Eps &&
		math32.Abs(v.Z-other.Z) < Eps
}
