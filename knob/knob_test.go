// knob/knob_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package knob_test

import (
	gomath "math"
	"slices"
	"testing"

	"github.com/mmp/knobs/knob"
	"github.com/mmp/knobs/knob/knobtest"
	"github.com/mmp/knobs/log"
	"github.com/mmp/knobs/renderer"
)

// spyIndicator counts how many times it is asked to render.
type spyIndicator struct {
	calls int
}

func (s *spyIndicator) Render(dl knob.DrawList, angle float64, center [2]float32, style knob.Style) {
	s.calls++
}

// newHost returns a host whose next knob of radius 20 is centered at
// (100, 100).
func newHost() *knobtest.Host {
	h := knobtest.NewHost()
	h.Cursor = [2]float32{80, 80}
	return h
}

func TestKnobAngleFromPointer(t *testing.T) {
	tests := []struct {
		name    string
		pointer [2]float32
		angle   float64
	}{
		{"pointer east of center", [2]float32{150, 100}, 0},
		{"pointer below center", [2]float32{100, 150}, gomath.Pi / 2},
		{"pointer west of center", [2]float32{40, 100}, gomath.Pi},
		{"pointer above center", [2]float32{100, 60}, -gomath.Pi / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHost()
			h.Active = true
			h.MoveMouse(tc.pointer)

			value := 1.0
			if !knob.Knob(h, "k", &value, knob.DefaultStyle(h)) {
				t.Errorf("expected Knob to report a change")
			}
			if value != tc.angle {
				t.Errorf("value = %v, expected %v", value, tc.angle)
			}
		})
	}
}

func TestKnobInactiveIgnoresPointer(t *testing.T) {
	h := newHost()
	h.Mouse = [2]float32{0, 0}
	h.MoveMouse([2]float32{50, 50})
	h.Hovered = true

	value := 0.75
	if knob.Knob(h, "k", &value, knob.DefaultStyle(h)) {
		t.Errorf("inactive knob reported a change")
	}
	if value != 0.75 {
		t.Errorf("value changed to %v", value)
	}
}

func TestKnobActiveWithoutMovement(t *testing.T) {
	h := newHost()
	h.Active = true
	h.Mouse = [2]float32{150, 130}
	h.Delta = [2]float32{0, 0}

	value := -2.0
	if knob.Knob(h, "k", &value, knob.DefaultStyle(h)) {
		t.Errorf("knob reported a change without mouse movement")
	}
	if value != -2 {
		t.Errorf("value changed to %v", value)
	}
}

func TestKnobSingleAxisMovement(t *testing.T) {
	for _, delta := range [][2]float32{{0, 3}, {-1, 0}, {0.5, 0.5}} {
		h := newHost()
		h.Active = true
		h.Mouse = [2]float32{130, 130}
		h.Delta = delta

		value := 0.0
		if !knob.Knob(h, "k", &value, knob.DefaultStyle(h)) {
			t.Errorf("delta %v: expected a change", delta)
		}
		if gomath.Abs(value-gomath.Pi/4) > 1e-9 {
			t.Errorf("delta %v: value %v, expected pi/4", delta, value)
		}
	}
}

func TestKnobBlankDrawsOnlyBase(t *testing.T) {
	h := newHost()
	spy := &spyIndicator{}
	style := knob.DefaultStyle(h)
	style.Type = knob.Blank
	style.Indicator = spy

	value := 0.0
	knob.Knob(h, "blank", &value, style)

	if spy.calls != 0 {
		t.Errorf("indicator rendered %d times for a blank knob", spy.calls)
	}
	if len(h.Draw.Cmds) != 1 {
		t.Fatalf("expected a single draw command, got %+v", h.Draw.Cmds)
	}
	base := h.Draw.Cmds[0]
	if base.Op != knobtest.OpCircleFilled || base.P0 != [2]float32{100, 100} || base.Size != 20 {
		t.Errorf("unexpected base circle %+v", base)
	}
}

func TestKnobBasicDrawOrder(t *testing.T) {
	h := newHost()
	style := knob.DefaultStyle(h)

	value := 0.0
	knob.Knob(h, "basic", &value, style)

	cmds := h.Draw.Cmds
	if len(cmds) != 3 {
		t.Fatalf("expected base, indicator, and cover; got %+v", cmds)
	}
	if cmds[0].Op != knobtest.OpCircleFilled || cmds[0].Size != 20 || cmds[0].Color != h.FrameBg {
		t.Errorf("base: %+v", cmds[0])
	}
	if cmds[1].Op != knobtest.OpLine || cmds[1].P0 != [2]float32{100, 100} || cmds[1].P1 != [2]float32{120, 100} ||
		cmds[1].Size != 2 || cmds[1].Color != renderer.White {
		t.Errorf("indicator: %+v", cmds[1])
	}
	if cmds[2].Op != knobtest.OpCircleFilled || cmds[2].Size != 8 || cmds[2].P0 != [2]float32{100, 100} {
		t.Errorf("cover: %+v", cmds[2])
	}
}

func TestKnobBasicWithoutCover(t *testing.T) {
	h := newHost()
	spy := &spyIndicator{}
	style := knob.Style{Type: knob.Basic, Base: knob.Circle{Radius: 10}, Indicator: spy}

	value := 0.0
	knob.Knob(h, "k", &value, style)

	if spy.calls != 1 {
		t.Errorf("indicator rendered %d times, expected 1", spy.calls)
	}
	if n := h.Draw.Count(knobtest.OpCircleFilled); n != 1 {
		t.Errorf("expected only the base circle, got %d circles", n)
	}
}

func TestKnobRegion(t *testing.T) {
	h := newHost()
	h.Spacing = [2]float32{4, 6}

	value := 0.0
	knob.Knob(h, "gain", &value, knob.DefaultStyle(h))

	if len(h.Regions) != 1 {
		t.Fatalf("expected one region, got %+v", h.Regions)
	}
	r := h.Regions[0]
	if r.Label != "gain" || r.Pos != [2]float32{80, 80} || r.Size != [2]float32{40, 46} {
		t.Errorf("unexpected region %+v", r)
	}
}

func TestKnobNegativeRadius(t *testing.T) {
	h := newHost()
	style := knob.DefaultStyle(h)
	style.Base.Radius = -5
	style.Cover.Radius = -1

	value := 0.0
	knob.Knob(h, "k", &value, style)

	if h.Regions[0].Size[0] <= 0 {
		t.Errorf("region has non-positive width: %+v", h.Regions[0])
	}
	for _, c := range h.Draw.Cmds {
		if c.Size < 0 {
			t.Errorf("negative size in draw command %+v", c)
		}
	}

	// Without vertical item spacing, a zero radius must still reserve a
	// non-empty region.
	h = newHost()
	h.Spacing = [2]float32{4, 0}
	style = knob.DefaultStyle(h)
	style.Base.Radius = 0
	knob.Knob(h, "k", &value, style)
	if sz := h.Regions[0].Size; sz[0] < 1 || sz[1] < 1 {
		t.Errorf("region size %v, expected at least 1 on both axes", sz)
	}
}

func TestRenderNegativeRadius(t *testing.T) {
	var rec knobtest.Recorder
	li := knob.NewLineIndicator()
	li.InternalPadding, li.ExternalPadding = 0, 0
	style := knob.Style{
		Type:      knob.Basic,
		Base:      knob.Circle{Color: renderer.White, Radius: -20},
		Indicator: li,
	}

	center := [2]float32{100, 100}
	knob.Render(&rec, 0, center, style)

	if len(rec.Cmds) != 2 || rec.Cmds[0].Size != 0 {
		t.Fatalf("unexpected draw commands %+v", rec.Cmds)
	}
	if l := rec.Cmds[1]; l.Op != knobtest.OpLine || l.P0 != center || l.P1 != center {
		t.Errorf("line %+v, expected it to collapse onto the center", l)
	}
}

func TestKnobNilValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for a nil value pointer")
		}
	}()

	h := newHost()
	knob.Knob(h, "k", nil, knob.DefaultStyle(h))
}

func TestKnobGrabCursor(t *testing.T) {
	h := newHost()
	value := 0.0
	knob.Knob(h, "k", &value, knob.DefaultStyle(h))
	if h.GrabCursors != 0 {
		t.Errorf("grab cursor requested for idle knob")
	}

	h.NextFrame()
	h.Hovered = true
	knob.Knob(h, "k", &value, knob.DefaultStyle(h))
	if h.GrabCursors != 1 {
		t.Errorf("expected grab cursor for hovered knob")
	}
}

func TestKnobDragAcrossFrames(t *testing.T) {
	lg := log.New("debug", t.TempDir())
	knob.SetLogger(lg)
	defer knob.SetLogger(nil)

	h := newHost()
	style := knob.DefaultStyle(h)
	value := 0.0

	// Press: the region becomes active but the mouse hasn't moved yet.
	h.Active, h.Activated = true, true
	h.Mouse = [2]float32{120, 100}
	if knob.Knob(h, "k", &value, style) {
		t.Errorf("frame 1: unexpected change")
	}

	// Drag down.
	h.NextFrame()
	h.Cursor = [2]float32{80, 80}
	h.MoveMouse([2]float32{100, 130})
	if !knob.Knob(h, "k", &value, style) || value != gomath.Pi/2 {
		t.Errorf("frame 2: value %v, expected pi/2", value)
	}

	// Release and keep moving: the value stays where it was left.
	h.NextFrame()
	h.Cursor = [2]float32{80, 80}
	h.Active, h.Deactivated = false, true
	h.MoveMouse([2]float32{60, 100})
	if knob.Knob(h, "k", &value, style) || value != gomath.Pi/2 {
		t.Errorf("frame 3: value %v, expected pi/2", value)
	}
}

func TestRenderIdempotent(t *testing.T) {
	for _, ind := range []knob.Indicator{knob.NewLineIndicator(), knob.NewIndicatorDot()} {
		style := knob.DefaultStyle(knobtest.NewHost())
		style.Indicator = ind

		var a, b knobtest.Recorder
		knob.Render(&a, 2.1, [2]float32{33, 44}, style)
		knob.Render(&b, 2.1, [2]float32{33, 44}, style)

		if len(a.Cmds) == 0 || !slices.Equal(a.Cmds, b.Cmds) {
			t.Errorf("%T: renders differ:\n%+v\n%+v", ind, a.Cmds, b.Cmds)
		}
	}
}
