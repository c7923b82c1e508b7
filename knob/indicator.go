// knob/indicator.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package knob

import (
	"github.com/mmp/knobs/math"
	"github.com/mmp/knobs/renderer"
)

// Indicator draws the part of a knob that shows its current angle.
// Implementations must be pure functions of their arguments and their own
// fields: rendering the same angle, center, and style twice must issue the
// same draw commands.
type Indicator interface {
	Render(dl DrawList, angle float64, center [2]float32, style Style)
}

// RayPoints returns the three points along the ray from center at the
// given angle that indicators are built from: inner is innerPad from the
// center, edge is on the base circle of the given radius, and outer is
// outerPad inside the edge.
func RayPoints(angle float64, center [2]float32, radius, innerPad, outerPad float32) (inner, edge, outer [2]float32) {
	dir := math.UnitVector(angle)
	inner = math.Add2f(center, math.Scale2f(dir, innerPad))
	edge = math.Add2f(center, math.Scale2f(dir, radius))
	outer = math.Sub2f(edge, math.Scale2f(dir, outerPad))
	return
}

///////////////////////////////////////////////////////////////////////////
// LineIndicator

// LineIndicator draws a straight pointer along the knob's angle. The
// paddings give the distance of the line's ends from the center and from
// the edge of the base circle, respectively, so the line can float
// anywhere along the radius.
type LineIndicator struct {
	InternalPadding float32
	ExternalPadding float32
	Line
}

// NewLineIndicator returns a white 2-pixel line that runs from the center
// all the way to the edge.
func NewLineIndicator() *LineIndicator {
	return &LineIndicator{
		Line: Line{Color: renderer.White, Thickness: 2},
	}
}

func (li *LineIndicator) Render(dl DrawList, angle float64, center [2]float32, style Style) {
	inner, _, outer := RayPoints(angle, center, style.Base.Radius, li.InternalPadding, li.ExternalPadding)
	dl.AddLine(inner, outer, li.Color, math.Max(li.Thickness, 0))
}

///////////////////////////////////////////////////////////////////////////
// IndicatorDot

// IndicatorDot draws a filled circle halfway between the points that a
// LineIndicator with the same paddings would connect.
type IndicatorDot struct {
	InnerPadding float32
	OuterPadding float32
	Circle
}

// NewIndicatorDot returns a white dot of radius 5 with no padding, which
// puts it halfway between the center and the edge.
func NewIndicatorDot() *IndicatorDot {
	return &IndicatorDot{
		Circle: Circle{Color: renderer.White, Radius: 5},
	}
}

func (d *IndicatorDot) Render(dl DrawList, angle float64, center [2]float32, style Style) {
	inner, _, outer := RayPoints(angle, center, style.Base.Radius, d.InnerPadding, d.OuterPadding)
	d.Circle.draw(dl, math.Mid2f(inner, outer))
}
