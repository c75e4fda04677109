// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/chewxy/math32"
)

type Vec3 struct {
	X, Y, Z float32
}

func VFromA(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// Length returns the length of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(Dot(v, v))
}

// Add returns a + b
func Add(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Mul returns the component wise product of a and b
func Mul(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X * b.X,
		Y: a.Y * b.Y,
		Z: a.Z * b.Z,
	}
}

// Dot returns a dot b
func Dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Min returns the component wise minimum
func Min(a, b Vec3) Vec3 {
	return Vec3{
		math32.Min(a.X, b.X),
		math32.Min(a.Y, b.Y),
		math32.Min(a.Z, b.Z),
	}
}

// Max returns the component wise maximum
func Max(a, b Vec3) Vec3 {
	return Vec3{
		math32.Max(a.X, b.X),
		math32.Max(a.Y, b.Y),
		math32.Max(a.Z, b.Z),
	}
}

// Bounds grows an empty (inverted) box to contain all points.
func Bounds(points []Vec3) (mins, maxs Vec3) {
	inf := math32.Inf(1)
	mins = Vec3{inf, inf, inf}
	maxs = Vec3{-inf, -inf, -inf}
	for _, p := range points {
		mins = Min(mins, p)
		maxs = Max(maxs, p)
	}
	return mins, maxs
}
