// platform/keymouse.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

type MouseState struct {
	Pos      [2]float32
	DeltaPos [2]float32
	Down     [MouseButtonCount]bool
	Clicked  [MouseButtonCount]bool
	Released [MouseButtonCount]bool
	Wheel    [2]float32
}

const (
	MouseButtonPrimary imgui.MouseButton = iota
	MouseButtonSecondary
	MouseButtonTertiary
	MouseButtonCount
)

func (ms *MouseState) update(io *imgui.IO) {
	p := io.MousePos()
	ms.DeltaPos = [2]float32{p.X - ms.Pos[0], p.Y - ms.Pos[1]}
	ms.Pos = [2]float32{p.X, p.Y}
	for b := MouseButtonPrimary; b < MouseButtonCount; b++ {
		ms.Clicked[b] = imgui.IsMouseClickedBool(b)
		ms.Released[b] = imgui.IsMouseReleased(b)
		ms.Down[b] = imgui.IsMouseDown(b)
	}
	ms.Wheel = [2]float32{io.MouseWheelH(), io.MouseWheel()}
}

// Dragging reports whether the given button is held and the pointer
// moved since the previous frame.
func (ms *MouseState) Dragging(b imgui.MouseButton) bool {
	return ms.Down[b] && (ms.DeltaPos[0] != 0 || ms.DeltaPos[1] != 0)
}
