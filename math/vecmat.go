// math/vecmat.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

///////////////////////////////////////////////////////////////////////////
// point 2f

// Various useful functions for arithmetic with 2D points/vectors.
// Names are brief in order to avoid clutter when they're used.

// a+b
func Add2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] + b[0], a[1] + b[1]}
}

// midpoint of a and b
func Mid2f(a [2]float32, b [2]float32) [2]float32 {
	return Scale2f(Add2f(a, b), 0.5)
}

// a-b
func Sub2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] - b[0], a[1] - b[1]}
}

// a*s
func Scale2f(a [2]float32, s float32) [2]float32 {
	return [2]float32{s * a[0], s * a[1]}
}

func Dot(a, b [2]float32) float32 {
	return a[0]*b[0] + a[1]*b[1]
}

// Length of v
func Length2f(v [2]float32) float32 {
	return Sqrt(v[0]*v[0] + v[1]*v[1])
}

// Distance between two points
func Distance2f(a [2]float32, b [2]float32) float32 {
	return Length2f(Sub2f(a, b))
}

// AngleBetween returns the angle in radians of the ray from src to dest,
// measured from the positive x axis.  Screen space has y pointing down, so
// increasing angles go clockwise on the display.  The result is in
// (-pi, pi].
func AngleBetween(src, dest [2]float32) float64 {
	return gomath.Atan2(float64(dest[1]-src[1]), float64(dest[0]-src[0]))
}

// UnitVector returns the unit-length vector pointing along the given
// angle (in radians).
func UnitVector(angle float64) [2]float32 {
	s, c := SinCos(angle)
	return [2]float32{c, s}
}

// PointAlong returns the point that is dist along the ray from p in the
// direction given by angle.
func PointAlong(p [2]float32, angle float64, dist float32) [2]float32 {
	return Add2f(p, Scale2f(UnitVector(angle), dist))
}
