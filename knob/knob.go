// knob/knob.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package knob implements a rotary knob control for Dear ImGui.  A knob
// stores an angle in radians that the user sets by dragging around the
// knob's center.  Like other imgui widgets, it is a plain function call
// made every frame; it keeps no state of its own.
package knob

import (
	"log/slog"

	"github.com/mmp/knobs/log"
	"github.com/mmp/knobs/math"
)

var lg *log.Logger

// SetLogger sets the logger used to report knob interaction; a nil logger
// (the default) discards everything below warnings.
func SetLogger(l *log.Logger) {
	lg = l
}

// Knob draws a knob using the given host and updates *value to the angle
// from the knob's center to the mouse when the user drags it.  It returns
// true if *value was changed this frame.
//
// label identifies the knob's interactive region and must be unique
// within the current imgui ID scope.
func Knob(h Host, label string, value *float64, style Style) bool {
	if value == nil {
		panic("knob.Knob: nil value pointer for \"" + label + "\"")
	}

	radius := math.Max(style.Base.Radius, 0)
	pos := h.CursorScreenPos()
	center := math.Add2f(pos, [2]float32{radius, radius})

	// imgui asserts if an invisible button has a zero extent.
	size := [2]float32{math.Max(2*radius, 1), math.Max(2*radius+h.ItemInnerSpacing()[1], 1)}
	h.ReserveRegion(label, size)
	active, hovered := h.IsRegionActive(), h.IsRegionHovered()

	if h.IsRegionActivated() {
		lg.Debug("knob drag started", slog.String("label", label), slog.Float64("angle", *value))
	}
	if h.IsRegionDeactivated() {
		lg.Debug("knob drag ended", slog.String("label", label), slog.Float64("angle", *value))
	}
	if active || hovered {
		h.SetGrabCursor()
	}

	changed := false
	if d := h.MouseDelta(); active && (d[0] != 0 || d[1] != 0) {
		*value = math.AngleBetween(center, h.MousePos())
		changed = true
	}

	Render(h.DrawList(), *value, center, style)

	return changed
}

// KnobImgui is Knob for the current imgui context.
func KnobImgui(label string, value *float64, style Style) bool {
	return Knob(Imgui, label, value, style)
}

// Render draws a knob showing the given angle centered at center.  The
// base circle is always drawn; Basic knobs then draw the indicator and
// the cover on top of it.  A negative base radius is treated as zero.
func Render(dl DrawList, angle float64, center [2]float32, style Style) {
	style.Base.Radius = math.Max(style.Base.Radius, 0)
	style.Base.draw(dl, center)

	if style.Type != Basic || style.Indicator == nil {
		return
	}
	style.Indicator.Render(dl, angle, center, style)
	if style.Cover.Radius > 0 {
		style.Cover.draw(dl, center)
	}
}
