package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var matApprox = cmpopts.EquateApprox(1e-5, 1e-5)

func TestIdentityMulVec(t *testing.T) {
	v := NewVec3(3, -2, 7)
	if got := Identity().MulVec(v); got != v {
		t.Errorf("I*v = %v, want %v", got, v)
	}
}

func TestRotationComposition(t *testing.T) {
	ax, ay, az := float32(math.Pi/4), float32(math.Pi/6), float32(math.Pi/3)
	got := NewRotation(ax, ay, az)
	want := rotationX(ax).Mul(rotationY(ay).Mul(rotationZ(az)))
	if diff := cmp.Diff(got, want, matApprox); diff != "" {
		t.Errorf("NewRotation != Rx·Ry·Rz (-got +want):\n%s", diff)
	}
}

func TestRotationOrthonormal(t *testing.T) {
	tests := []struct {
		name       string
		ax, ay, az float32
	}{
		{"x only", math.Pi / 4, 0, 0},
		{"y only", 0, math.Pi / 7, 0},
		{"z only", 0, 0, math.Pi / 3},
		{"combined", 0.3, -1.2, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRotation(tt.ax, tt.ay, tt.az)
			got := r.Mul(r.Transposed())
			if diff := cmp.Diff(got, Identity(), matApprox); diff != "" {
				t.Errorf("R·Rᵀ != I (-got +want):\n%s", diff)
			}
		})
	}
}

func TestRotationZ90(t *testing.T) {
	r := NewRotation(0, 0, math.Pi/2)
	got := r.MulVec(NewVec3(1, 0, 0))
	want := NewVec3(0, 1, 0)
	if diff := cmp.Diff(got, want, matApprox); diff != "" {
		t.Errorf("Rz(90°)·x mismatch (-got +want):\n%s", diff)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	r := NewRotation(0.7, -0.4, 1.9)
	v := NewVec3(3, -5, 2)
	got := r.MulVec(v).Length()
	if diff := cmp.Diff(got, v.Length(), matApprox); diff != "" {
		t.Errorf("rotation changed vector length (-got +want):\n%s", diff)
	}
}

func TestTransposedInvolution(t *testing.T) {
	m := Mat3{Rows: [3]Vec3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}}
	if got := m.Transposed().Transposed(); got != m {
		t.Errorf("double transpose = %v, want %v", got, m)
	}
}

func TestMatMul(t *testing.T) {
	a := Mat3{Rows: [3]Vec3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}}
	got := a.Mul(Identity())
	if diff := cmp.Diff(got, a, matApprox); diff != "" {
		t.Errorf("A·I != A (-got +want):\n%s", diff)
	}
}
