// platform/platform.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package platform owns the native window and feeds mouse, keyboard and
// display state into the current imgui context each frame.
package platform

// Platform abstracts the windowing system for the demo application.
type Platform interface {
	// NewFrame marks the beginning of a frame; it forwards the current
	// input and display state to imgui's IO.
	NewFrame()
	// ProcessEvents handles all pending window events. Returns true if
	// there were any events and false otherwise.
	ProcessEvents() bool
	// PostRender performs the buffer swap.
	PostRender()
	// Dispose releases the window and terminates the windowing system.
	Dispose()
	// ShouldStop returns true if the user asked for the window to close.
	ShouldStop() bool
	// SetWindowTitle sets the title of the application window.
	SetWindowTitle(text string)
	// EnableVSync specifies whether v-sync should be used when rendering.
	EnableVSync(sync bool)
	// DisplaySize returns the size of the window's client area in
	// screen coordinates.
	DisplaySize() [2]float32
	// FramebufferSize returns the dimension of the framebuffer in pixels.
	FramebufferSize() [2]float32
	// WindowSize returns the size of the window.
	WindowSize() [2]int
	// WindowPosition returns the position of the window on the screen.
	WindowPosition() [2]int
	// DPIScale is the ratio of framebuffer pixels to screen coordinates.
	DPIScale() float32
	// GetMouse returns the mouse state as of the most recent NewFrame.
	GetMouse() *MouseState
}

type Config struct {
	InitialWindowSize     [2]int
	InitialWindowPosition [2]int
	Title                 string

	EnableMSAA bool
}
