package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRayUnitDirection(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 2000))
	if got := r.Dir.Length(); got < 1-1e-5 || got > 1+1e-5 {
		t.Errorf("ray direction length = %v, want 1", got)
	}
	if r.Origin != (Vec3{}) {
		t.Errorf("ray origin = %v, want zero", r.Origin)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(1, 0, 0), NewVec3(1, 0, 10))
	got := r.At(5)
	want := NewVec3(1, 0, 5)
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("At() mismatch (-got +want):\n%s", diff)
	}
}
