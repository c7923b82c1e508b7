// knob/imgui.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package knob

import (
	"github.com/mmp/knobs/renderer"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Imgui is the Host for the current cimgui-go context.  It holds no state;
// all calls go straight through to imgui, so it is only valid between
// imgui.NewFrame and imgui.Render on the thread that owns the context.
var Imgui Host = imguiHost{}

type imguiHost struct{}

type imguiDrawList struct {
	dl *imgui.DrawList
}

func vec2(p [2]float32) imgui.Vec2 {
	return imgui.Vec2{X: p[0], Y: p[1]}
}

func fromVec2(v imgui.Vec2) [2]float32 {
	return [2]float32{v.X, v.Y}
}

func (d imguiDrawList) AddCircleFilled(center [2]float32, radius float32, color renderer.RGBA, segments int) {
	d.dl.AddCircleFilledV(vec2(center), radius, color.U32(), int32(segments))
}

func (d imguiDrawList) AddLine(p1, p2 [2]float32, color renderer.RGBA, thickness float32) {
	d.dl.AddLineV(vec2(p1), vec2(p2), color.U32(), thickness)
}

func (imguiHost) FrameBackground() renderer.RGBA {
	return renderer.RGBAFromU32(imgui.ColorU32Col(imgui.ColFrameBg))
}

func (imguiHost) ItemInnerSpacing() [2]float32 {
	return fromVec2(imgui.CurrentStyle().ItemInnerSpacing())
}

func (imguiHost) CursorScreenPos() [2]float32 {
	return fromVec2(imgui.CursorScreenPos())
}

func (imguiHost) DrawList() DrawList {
	return imguiDrawList{dl: imgui.WindowDrawList()}
}

func (imguiHost) ReserveRegion(label string, size [2]float32) {
	imgui.InvisibleButton(label, vec2(size))
}

func (imguiHost) IsRegionActive() bool      { return imgui.IsItemActive() }
func (imguiHost) IsRegionHovered() bool     { return imgui.IsItemHovered() }
func (imguiHost) IsRegionActivated() bool   { return imgui.IsItemActivated() }
func (imguiHost) IsRegionDeactivated() bool { return imgui.IsItemDeactivated() }

func (imguiHost) MousePos() [2]float32 {
	return fromVec2(imgui.CurrentIO().MousePos())
}

func (imguiHost) MouseDelta() [2]float32 {
	return fromVec2(imgui.CurrentIO().MouseDelta())
}

func (imguiHost) SetGrabCursor() {
	imgui.SetMouseCursor(imgui.MouseCursorHand)
}
