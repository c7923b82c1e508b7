// knob/knobtest/host.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package knobtest provides a scripted stand-in for the imgui host so that
// knobs can be exercised without a window or a GPU.
package knobtest

import (
	"fmt"

	"github.com/mmp/knobs/knob"
	"github.com/mmp/knobs/renderer"
)

type Op int

const (
	OpCircleFilled Op = iota
	OpLine
)

func (op Op) String() string {
	switch op {
	case OpCircleFilled:
		return "circle"
	case OpLine:
		return "line"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// DrawCmd is a single recorded draw list call.  For lines, P0 and P1 are
// the endpoints and Size is the thickness; for circles, P0 is the center
// and Size is the radius.
type DrawCmd struct {
	Op       Op
	P0, P1   [2]float32
	Size     float32
	Color    renderer.RGBA
	Segments int
}

// Recorder is a knob.DrawList that records the calls made to it.
type Recorder struct {
	Cmds []DrawCmd
}

func (r *Recorder) AddCircleFilled(center [2]float32, radius float32, color renderer.RGBA, segments int) {
	r.Cmds = append(r.Cmds, DrawCmd{Op: OpCircleFilled, P0: center, Size: radius, Color: color, Segments: segments})
}

func (r *Recorder) AddLine(p1, p2 [2]float32, color renderer.RGBA, thickness float32) {
	r.Cmds = append(r.Cmds, DrawCmd{Op: OpLine, P0: p1, P1: p2, Size: thickness, Color: color})
}

// Count returns the number of recorded commands of the given type.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Cmds {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Cmds = r.Cmds[:0]
}

// Region records a ReserveRegion call.
type Region struct {
	Label string
	Pos   [2]float32
	Size  [2]float32
}

// Host implements knob.Host.  Tests set the exported input fields to
// describe the frame and then inspect Draw and Regions after calling
// knob.Knob.
type Host struct {
	Cursor  [2]float32
	Spacing [2]float32
	FrameBg renderer.RGBA

	Active, Hovered        bool
	Activated, Deactivated bool
	Mouse, Delta           [2]float32

	Draw        Recorder
	Regions     []Region
	GrabCursors int
}

var _ knob.Host = (*Host)(nil)

// NewHost returns a host with imgui's default item inner spacing and frame
// background color and the layout cursor at the origin.
func NewHost() *Host {
	return &Host{
		Spacing: [2]float32{4, 4},
		FrameBg: renderer.RGBAFromUInt8(41, 74, 122, 138),
	}
}

// MoveMouse sets the mouse position and the frame's mouse delta from the
// previous position.
func (h *Host) MoveMouse(p [2]float32) {
	h.Delta = [2]float32{p[0] - h.Mouse[0], p[1] - h.Mouse[1]}
	h.Mouse = p
}

// NextFrame clears everything recorded during the previous frame and the
// mouse delta; the other input state carries over.
func (h *Host) NextFrame() {
	h.Draw.Reset()
	h.Regions = nil
	h.Delta = [2]float32{}
	h.Activated, h.Deactivated = false, false
	h.GrabCursors = 0
}

func (h *Host) FrameBackground() renderer.RGBA { return h.FrameBg }
func (h *Host) ItemInnerSpacing() [2]float32   { return h.Spacing }
func (h *Host) CursorScreenPos() [2]float32    { return h.Cursor }
func (h *Host) DrawList() knob.DrawList        { return &h.Draw }

func (h *Host) ReserveRegion(label string, size [2]float32) {
	h.Regions = append(h.Regions, Region{Label: label, Pos: h.Cursor, Size: size})
	h.Cursor[1] += size[1]
}

func (h *Host) IsRegionActive() bool      { return h.Active }
func (h *Host) IsRegionHovered() bool     { return h.Hovered }
func (h *Host) IsRegionActivated() bool   { return h.Activated }
func (h *Host) IsRegionDeactivated() bool { return h.Deactivated }
func (h *Host) MousePos() [2]float32      { return h.Mouse }
func (h *Host) MouseDelta() [2]float32    { return h.Delta }
func (h *Host) SetGrabCursor()            { h.GrabCursors++ }
