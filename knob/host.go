// knob/host.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package knob

import (
	"github.com/mmp/knobs/renderer"
)

// DrawList is the subset of an imgui draw list that knobs draw with.
// Coordinates are in screen space.
type DrawList interface {
	// AddCircleFilled draws a filled circle; segments == 0 lets the
	// implementation pick a tessellation based on the radius.
	AddCircleFilled(center [2]float32, radius float32, color renderer.RGBA, segments int)
	AddLine(p1, p2 [2]float32, color renderer.RGBA, thickness float32)
}

// Theme provides the style values that knobs take from the host toolkit.
type Theme interface {
	// FrameBackground is the background color of an idle control.
	FrameBackground() renderer.RGBA
	// ItemInnerSpacing is the spacing between the elements of a
	// composite widget.
	ItemInnerSpacing() [2]float32
}

// Host is everything a knob needs from the immediate-mode toolkit over the
// course of a single frame.  The "region" methods follow imgui's "last
// item" convention: they refer to the region most recently passed to
// ReserveRegion.
type Host interface {
	Theme

	// CursorScreenPos returns the screen-space position where the next
	// item will be laid out.
	CursorScreenPos() [2]float32
	DrawList() DrawList

	// ReserveRegion claims an interactive region of the given size at the
	// layout cursor and advances the cursor past it.
	ReserveRegion(label string, size [2]float32)
	IsRegionActive() bool
	IsRegionHovered() bool
	// IsRegionActivated reports whether the region became active this
	// frame; IsRegionDeactivated reports whether it stopped being active.
	IsRegionActivated() bool
	IsRegionDeactivated() bool

	MousePos() [2]float32
	MouseDelta() [2]float32

	// SetGrabCursor asks the toolkit to show a grab cursor for the rest of
	// the frame.
	SetGrabCursor()
}
