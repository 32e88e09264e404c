package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Mat3 is a 3x3 row-major matrix
type Mat3 struct {
	Rows [3]Vec3
}

// Identity returns the 3x3 identity matrix
func Identity() Mat3 {
	return Mat3{Rows: [3]Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// NewRotation builds a rotation matrix from Euler angles (radians).
// Rotations are applied to the identity in Z, then Y, then X order,
// yielding Rx(ax)·Ry(ay)·Rz(az).
func NewRotation(ax, ay, az float32) Mat3 {
	m := Identity()
	m = rotationZ(az).Mul(m)
	m = rotationY(ay).Mul(m)
	m = rotationX(ax).Mul(m)
	return m
}

func rotationX(angle float32) Mat3 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat3{Rows: [3]Vec3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}}
}

func rotationY(angle float32) Mat3 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat3{Rows: [3]Vec3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}}
}

func rotationZ(angle float32) Mat3 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat3{Rows: [3]Vec3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}}
}

// MulVec multiplies the matrix by a column vector
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.Rows[0].Dot(v),
		Y: m.Rows[1].Dot(v),
		Z: m.Rows[2].Dot(v),
	}
}

// Mul returns the matrix product m * other
func (m Mat3) Mul(other Mat3) Mat3 {
	t := other.Transposed() // rows of t are columns of other
	var out Mat3
	for i := 0; i < 3; i++ {
		out.Rows[i] = Vec3{
			X: m.Rows[i].Dot(t.Rows[0]),
			Y: m.Rows[i].Dot(t.Rows[1]),
			Z: m.Rows[i].Dot(t.Rows[2]),
		}
	}
	return out
}

// Transposed returns the transpose, which is also the inverse for
// orthonormal rotation matrices.
func (m Mat3) Transposed() Mat3 {
	return Mat3{Rows: [3]Vec3{
		{m.Rows[0].X, m.Rows[1].X, m.Rows[2].X},
		{m.Rows[0].Y, m.Rows[1].Y, m.Rows[2].Y},
		{m.Rows[0].Z, m.Rows[1].Z, m.Rows[2].Z},
	}}
}

func (m Mat3) String() string {
	return fmt.Sprintf("[%v\n %v\n %v]", m.Rows[0], m.Rows[1], m.Rows[2])
}
