package math

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	got := Vec3{1, 2, 3}.Add(Vec3{3, 4, 5})
	want := Vec3{4, 6, 8}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, -4, 0}
	if got, want := a.Min(b), (Vec3{1, -4, -2}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{3, 5, 0}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec3.Length() = %v, want 5", got)
	}
}

func TestVec3ArrayRoundTrip(t *testing.T) {
	v := Vec3{1.5, -2, 7}
	if got := FromArray(v.Array()); got != v {
		t.Errorf("FromArray(Array()) = %v, want %v", got, v)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}
