// knob/indicator_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package knob_test

import (
	gomath "math"
	"testing"

	"github.com/mmp/knobs/knob"
	"github.com/mmp/knobs/knob/knobtest"
	"github.com/mmp/knobs/math"
	"github.com/mmp/knobs/renderer"
)

func near(a, b [2]float32) bool {
	return math.Distance2f(a, b) < 1e-3
}

func TestRayPointsColinearAndOrdered(t *testing.T) {
	center := [2]float32{50, -20}
	for _, angle := range []float64{0, 0.3, gomath.Pi / 2, 2.5, gomath.Pi, -1, -gomath.Pi / 2} {
		for _, pad := range [][2]float32{{0, 0}, {3, 4}, {10, 0}, {0, 12}} {
			inner, edge, outer := knob.RayPoints(angle, center, 25, pad[0], pad[1])

			dir := math.UnitVector(angle)
			for _, p := range [][2]float32{inner, edge, outer} {
				v := math.Sub2f(p, center)
				if cross := v[0]*dir[1] - v[1]*dir[0]; math.Abs(cross) > 1e-3 {
					t.Errorf("angle %v pad %v: %v not on the ray (cross %v)", angle, pad, p, cross)
				}
				if math.Dot(v, dir) < -1e-4 {
					t.Errorf("angle %v pad %v: %v is behind the center", angle, pad, p)
				}
			}

			di := math.Distance2f(center, inner)
			do := math.Distance2f(center, outer)
			de := math.Distance2f(center, edge)
			if math.Abs(di-pad[0]) > 1e-3 || math.Abs(do-(25-pad[1])) > 1e-3 || math.Abs(de-25) > 1e-3 {
				t.Errorf("angle %v pad %v: distances %v %v %v", angle, pad, di, do, de)
			}
			if !(di <= do+1e-4 && do <= de+1e-4) {
				t.Errorf("angle %v pad %v: points out of order: %v %v %v", angle, pad, di, do, de)
			}
		}
	}
}

func TestLineIndicatorRender(t *testing.T) {
	li := &knob.LineIndicator{
		InternalPadding: 4,
		ExternalPadding: 6,
		Line:            knob.Line{Color: renderer.RGBAFromUInt8(255, 0, 0, 255), Thickness: 3},
	}
	style := knob.Style{Type: knob.Basic, Base: knob.Circle{Radius: 20}, Indicator: li}

	var rec knobtest.Recorder
	li.Render(&rec, gomath.Pi/2, [2]float32{100, 100}, style)

	if len(rec.Cmds) != 1 || rec.Cmds[0].Op != knobtest.OpLine {
		t.Fatalf("expected a single line, got %+v", rec.Cmds)
	}
	c := rec.Cmds[0]
	if !near(c.P0, [2]float32{100, 104}) || !near(c.P1, [2]float32{100, 114}) {
		t.Errorf("line from %v to %v, expected [100 104] to [100 114]", c.P0, c.P1)
	}
	if c.Size != 3 || c.Color != li.Color {
		t.Errorf("unexpected line style %+v", c)
	}

	li.Thickness = -2
	rec.Reset()
	li.Render(&rec, 0, [2]float32{}, style)
	if rec.Cmds[0].Size != 0 {
		t.Errorf("negative thickness not clamped: %v", rec.Cmds[0].Size)
	}
}

func TestIndicatorDotRender(t *testing.T) {
	dot := &knob.IndicatorDot{
		InnerPadding: 2,
		OuterPadding: 8,
		Circle:       knob.Circle{Color: renderer.White, Radius: 3, Segments: 12},
	}
	style := knob.Style{Type: knob.Basic, Base: knob.Circle{Radius: 30}, Indicator: dot}

	var rec knobtest.Recorder
	dot.Render(&rec, gomath.Pi, [2]float32{0, 0}, style)

	if len(rec.Cmds) != 1 || rec.Cmds[0].Op != knobtest.OpCircleFilled {
		t.Fatalf("expected a single circle, got %+v", rec.Cmds)
	}
	c := rec.Cmds[0]
	// Inner point is 2 from the center and outer is 30-8=22, so the dot is
	// 12 from the center, pointing left.
	if !near(c.P0, [2]float32{-12, 0}) {
		t.Errorf("dot at %v, expected [-12 0]", c.P0)
	}
	if c.Size != 3 || c.Segments != 12 {
		t.Errorf("unexpected dot %+v", c)
	}
}

func TestIndicatorDotMatchesLineMidpoint(t *testing.T) {
	center := [2]float32{7, 9}
	style := knob.Style{Type: knob.Basic, Base: knob.Circle{Radius: 40}}
	for _, angle := range []float64{-2.2, -0.5, 0.1, 1.9, 3} {
		li := &knob.LineIndicator{InternalPadding: 5, ExternalPadding: 9, Line: knob.Line{Thickness: 1}}
		dot := &knob.IndicatorDot{InnerPadding: 5, OuterPadding: 9, Circle: knob.Circle{Radius: 2}}

		var lr, dr knobtest.Recorder
		li.Render(&lr, angle, center, style)
		dot.Render(&dr, angle, center, style)

		mid := math.Mid2f(lr.Cmds[0].P0, lr.Cmds[0].P1)
		if !near(mid, dr.Cmds[0].P0) {
			t.Errorf("angle %v: dot at %v, line midpoint %v", angle, dr.Cmds[0].P0, mid)
		}
	}
}
