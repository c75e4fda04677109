// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	for _, v := range []Vec3{{2, 2, 1}, {2, 1, 2}, {1, 2, 2}} {
		if v.Length() != 3 {
			t.Errorf("%v Length is not 3", v)
		}
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := Add(NULL, v); got != v {
		t.Errorf("Adding a null vector changed the vector")
	}
	got := Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := Sub(v, v); got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
}

func TestMul(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{0.5, 2, -1}
	want := Vec3{0.5, 4, -3}
	if got := Mul(a, b); got != want {
		t.Errorf("Mul(%v,%v) = %v want %v", a, b, got, want)
	}
}

func TestVFromA(t *testing.T) {
	if got, want := VFromA([3]float32{1, 2, 3}), (Vec3{1, 2, 3}); got != want {
		t.Errorf("VFromA() = %v want %v", got, want)
	}
}

func TestBounds(t *testing.T) {
	mins, maxs := Bounds([]Vec3{{1, -2, 3}, {-1, 5, 0}, {0, 0, 7}})
	if want := (Vec3{-1, -2, 0}); mins != want {
		t.Errorf("mins = %v want %v", mins, want)
	}
	if want := (Vec3{1, 5, 7}); maxs != want {
		t.Errorf("maxs = %v want %v", maxs, want)
	}
}
