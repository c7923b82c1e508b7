// math/math_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"math"
	"testing"
)

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name     string
		src      [2]float32
		dest     [2]float32
		expected float64
	}{
		{"east", [2]float32{100, 100}, [2]float32{150, 100}, 0},
		{"south (screen down)", [2]float32{100, 100}, [2]float32{100, 150}, math.Pi / 2},
		{"west", [2]float32{100, 100}, [2]float32{50, 100}, math.Pi},
		{"north (screen up)", [2]float32{100, 100}, [2]float32{100, 50}, -math.Pi / 2},
		{"diagonal", [2]float32{0, 0}, [2]float32{10, 10}, math.Pi / 4},
		{"same point", [2]float32{3, 4}, [2]float32{3, 4}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := AngleBetween(tc.src, tc.dest)
			if math.Abs(a-tc.expected) > 1e-9 {
				t.Errorf("AngleBetween(%v, %v) = %v, expected %v", tc.src, tc.dest, a, tc.expected)
			}
			if a <= -math.Pi || a > math.Pi {
				t.Errorf("AngleBetween(%v, %v) = %v out of (-pi, pi]", tc.src, tc.dest, a)
			}
		})
	}
}

func TestAngleBetweenScaleInvariant(t *testing.T) {
	center := [2]float32{100, 100}
	for _, p := range [][2]float32{{150, 100}, {130, 170}, {20, 90}, {99, 1}, {101, 240}} {
		ref := AngleBetween(center, p)
		d := Sub2f(p, center)
		for _, s := range []float32{0.01, 0.5, 2, 7.25, 100} {
			q := Add2f(center, Scale2f(d, s))
			if a := AngleBetween(center, q); math.Abs(a-ref) > 1e-5 {
				t.Errorf("scale %v of %v: got %v, expected %v", s, p, a, ref)
			}
		}
	}
}

func TestDegreeConversions(t *testing.T) {
	if d := RadToDeg(math.Pi); d != 180 {
		t.Errorf("RadToDeg(pi) = %v, expected 180", d)
	}
	if d := RadToDeg(-math.Pi / 2); d != -90 {
		t.Errorf("RadToDeg(-pi/2) = %v, expected -90", d)
	}
	for _, deg := range []float64{-180, -45, 0, 30, 90, 270} {
		if r := RadToDeg(DegToRad(deg)); math.Abs(r-deg) > 1e-9 {
			t.Errorf("round trip of %v degrees gave %v", deg, r)
		}
	}
	if d := Degrees(Pi()); Abs(d-180) > 1e-4 {
		t.Errorf("Degrees(Pi()) = %v, expected 180", d)
	}
}

func TestPointAlong(t *testing.T) {
	p := PointAlong([2]float32{10, 20}, math.Pi/2, 5)
	if Abs(p[0]-10) > 1e-5 || Abs(p[1]-25) > 1e-5 {
		t.Errorf("PointAlong: got %v, expected [10 25]", p)
	}

	if m := Mid2f([2]float32{0, 0}, [2]float32{4, -2}); m != [2]float32{2, -1} {
		t.Errorf("Mid2f: got %v", m)
	}
	if l := Length2f(UnitVector(1.234)); Abs(l-1) > 1e-6 {
		t.Errorf("UnitVector length %v", l)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(-3, 0, 10); v != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d", v)
	}
	if v := Clamp(float32(12.5), 0, 10); v != 10 {
		t.Errorf("Clamp(12.5, 0, 10) = %v", v)
	}
	if v := Max(float32(-2), 0); v != 0 {
		t.Errorf("Max(-2, 0) = %v", v)
	}
}
