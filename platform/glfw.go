// platform/glfw.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"fmt"
	gomath "math"
	"runtime"

	"github.com/mmp/knobs/log"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwPlatform implements the Platform interface using GLFW.
type glfwPlatform struct {
	imguiIO *imgui.IO

	window *glfw.Window
	config *Config
	lg     *log.Logger

	time                   float64
	mouseJustPressed       [MouseButtonCount]bool
	mouseCursors           [imgui.MouseCursorCOUNT]*glfw.Cursor
	currentCursor          *glfw.Cursor
	anyEvents              bool
	lastMouseX, lastMouseY float64
	multisample            bool
	windowTitle            string
	mouse                  MouseState
}

// New creates a window with an OpenGL 3.2 core context current on the
// calling thread. It must be called after imgui.CreateContext.
func New(config *Config, lg *log.Logger) (Platform, error) {
	lg.Info("Starting GLFW initialization")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}
	lg.Infof("GLFW: %s", glfw.GetVersionString())

	io := imgui.CurrentIO()
	io.SetBackendFlags(io.BackendFlags() | imgui.BackendFlagsHasMouseCursors)

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	vm := glfw.GetPrimaryMonitor().GetVideoMode()
	if config.InitialWindowSize[0] == 0 || config.InitialWindowSize[1] == 0 {
		config.InitialWindowSize = [2]int{min(900, vm.Width-100), min(600, vm.Height-100)}
	}
	if config.InitialWindowPosition[0] < 0 || config.InitialWindowPosition[1] < 0 ||
		config.InitialWindowPosition[0] > vm.Width || config.InitialWindowPosition[1] > vm.Height {
		config.InitialWindowPosition = [2]int{100, 100}
	}
	if config.Title == "" {
		config.Title = "Knobs"
	}

	// Start invisible so that the window can be positioned first.
	glfw.WindowHint(glfw.Visible, 0)
	if config.EnableMSAA {
		glfw.WindowHint(glfw.Samples, 4)
	}

	window, err := glfw.CreateWindow(config.InitialWindowSize[0], config.InitialWindowSize[1], config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.SetPos(config.InitialWindowPosition[0], config.InitialWindowPosition[1])
	window.Show()
	window.MakeContextCurrent()

	g := &glfwPlatform{
		config:      config,
		imguiIO:     io,
		window:      window,
		lg:          lg,
		multisample: config.EnableMSAA,
		windowTitle: config.Title,
	}
	g.installCallbacks()
	g.createMouseCursors()
	g.EnableVSync(true)

	lg.Info("Finished GLFW initialization")

	return g, nil
}

func (g *glfwPlatform) DPIScale() float32 {
	if runtime.GOOS == "windows" {
		sx, sy := g.window.GetContentScale()
		return float32(int((sx + sy) / 2))
	}
	return g.FramebufferSize()[0] / g.DisplaySize()[0]
}

func (g *glfwPlatform) EnableVSync(sync bool) {
	if sync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (g *glfwPlatform) Dispose() {
	for _, c := range g.mouseCursors {
		if c != nil {
			c.Destroy()
		}
	}
	g.window.Destroy()
	glfw.Terminate()
	g.lg.Info("GLFW terminated")
}

func (g *glfwPlatform) ShouldStop() bool {
	return g.window.ShouldClose()
}

func (g *glfwPlatform) ProcessEvents() bool {
	g.anyEvents = false

	glfw.PollEvents()

	if g.anyEvents {
		return true
	}

	for _, id := range glfwButtonIDByIndex {
		if g.window.GetMouseButton(id) == glfw.Press {
			return true
		}
	}

	x, y := g.window.GetCursorPos()
	if x != g.lastMouseX || y != g.lastMouseY {
		g.lastMouseX, g.lastMouseY = x, y
		return true
	}

	return false
}

func (g *glfwPlatform) DisplaySize() [2]float32 {
	w, h := g.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

func (g *glfwPlatform) WindowSize() [2]int {
	w, h := g.window.GetSize()
	return [2]int{w, h}
}

func (g *glfwPlatform) WindowPosition() [2]int {
	x, y := g.window.GetPos()
	return [2]int{x, y}
}

func (g *glfwPlatform) FramebufferSize() [2]float32 {
	w, h := g.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

func (g *glfwPlatform) GetMouse() *MouseState {
	return &g.mouse
}

func (g *glfwPlatform) NewFrame() {
	if g.multisample {
		gl.Enable(gl.MULTISAMPLE)
	}

	// Every frame, to follow window resizes.
	displaySize := g.DisplaySize()
	g.imguiIO.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})
	if displaySize[0] > 0 && displaySize[1] > 0 {
		fb := g.FramebufferSize()
		g.imguiIO.SetDisplayFramebufferScale(imgui.Vec2{X: fb[0] / displaySize[0], Y: fb[1] / displaySize[1]})
	}

	currentTime := glfw.GetTime()
	if g.time > 0 {
		g.imguiIO.SetDeltaTime(float32(currentTime - g.time))
	}
	g.time = currentTime

	if g.window.GetAttrib(glfw.Focused) != 0 {
		x, y := g.window.GetCursorPos()
		g.imguiIO.SetMousePos(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		g.imguiIO.SetMousePos(imgui.Vec2{X: -gomath.MaxFloat32, Y: -gomath.MaxFloat32})
	}

	for i := range g.mouseJustPressed {
		down := g.mouseJustPressed[i] ||
			g.window.GetMouseButton(glfwButtonIDByIndex[imgui.MouseButton(i)]) == glfw.Press
		g.imguiIO.SetMouseButtonDown(i, down)
		g.mouseJustPressed[i] = false
	}

	g.updateCursor()
}

// updateCursor shows the OS cursor matching the one imgui asked for
// during the previous frame.
func (g *glfwPlatform) updateCursor() {
	c := imgui.CurrentMouseCursor()
	if c == imgui.MouseCursorNone {
		g.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		return
	}

	cursor := g.mouseCursors[c]
	if cursor == nil {
		cursor = g.mouseCursors[imgui.MouseCursorArrow]
	}
	if cursor != g.currentCursor {
		g.currentCursor = cursor
		g.window.SetCursor(cursor)
	}
	g.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

// PostRender swaps buffers and samples the mouse state imgui settled on
// for the frame just drawn.
func (g *glfwPlatform) PostRender() {
	g.mouse.update(g.imguiIO)
	g.window.SwapBuffers()
}

func (g *glfwPlatform) SetWindowTitle(text string) {
	if text != g.windowTitle {
		g.window.SetTitle(text)
		g.windowTitle = text
	}
}

func (g *glfwPlatform) installCallbacks() {
	g.window.SetMouseButtonCallback(g.mouseButtonChange)
	g.window.SetScrollCallback(g.mouseScrollChange)
	g.window.SetKeyCallback(g.keyChange)
	g.window.SetCharCallback(g.charChange)
}

var glfwButtonIndexByID = map[glfw.MouseButton]imgui.MouseButton{
	glfw.MouseButton1: MouseButtonPrimary,
	glfw.MouseButton2: MouseButtonSecondary,
	glfw.MouseButton3: MouseButtonTertiary,
}

var glfwButtonIDByIndex = map[imgui.MouseButton]glfw.MouseButton{
	MouseButtonPrimary:   glfw.MouseButton1,
	MouseButtonSecondary: glfw.MouseButton2,
	MouseButtonTertiary:  glfw.MouseButton3,
}

func (g *glfwPlatform) mouseButtonChange(window *glfw.Window, rawButton glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	buttonIndex, known := glfwButtonIndexByID[rawButton]
	if !known {
		return
	}

	g.anyEvents = true
	if action == glfw.Press {
		// Presses and releases within a single frame still register.
		g.mouseJustPressed[buttonIndex] = true
	}
	g.updateKeyModifiers()
}

func (g *glfwPlatform) mouseScrollChange(window *glfw.Window, x, y float64) {
	g.anyEvents = true
	g.imguiIO.AddMouseWheelDelta(float32(x), float32(y))
}

func (g *glfwPlatform) keyChange(window *glfw.Window, keycode glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	g.anyEvents = true
	g.updateKeyModifiers()

	if action != glfw.Press && action != glfw.Release {
		return
	}
	if key, ok := imguiKey(keycode); ok {
		g.imguiIO.AddKeyEvent(key, action == glfw.Press)
	}
}

func (g *glfwPlatform) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if g.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (g *glfwPlatform) updateKeyModifiers() {
	ctrl := g.pressed(glfw.KeyLeftControl, glfw.KeyRightControl)
	super := g.pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper)
	if runtime.GOOS == "darwin" {
		// imgui swaps Command and Control on macOS; undo that so control
		// comes through as control.
		ctrl, super = super, ctrl
	}
	g.imguiIO.AddKeyEvent(imgui.ModShift, g.pressed(glfw.KeyLeftShift, glfw.KeyRightShift))
	g.imguiIO.AddKeyEvent(imgui.ModAlt, g.pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt))
	g.imguiIO.AddKeyEvent(imgui.ModCtrl, ctrl)
	g.imguiIO.AddKeyEvent(imgui.ModSuper, super)
}

func (g *glfwPlatform) charChange(window *glfw.Window, char rune) {
	g.anyEvents = true
	g.imguiIO.AddInputCharactersUTF8(string(char))
}

func (g *glfwPlatform) createMouseCursors() {
	g.mouseCursors[imgui.MouseCursorArrow] = glfw.CreateStandardCursor(glfw.ArrowCursor)
	g.mouseCursors[imgui.MouseCursorTextInput] = glfw.CreateStandardCursor(glfw.IBeamCursor)
	g.mouseCursors[imgui.MouseCursorResizeNS] = glfw.CreateStandardCursor(glfw.VResizeCursor)
	g.mouseCursors[imgui.MouseCursorResizeEW] = glfw.CreateStandardCursor(glfw.HResizeCursor)
	g.mouseCursors[imgui.MouseCursorHand] = glfw.CreateStandardCursor(glfw.HandCursor)
}

var namedKeys = map[glfw.Key]imgui.Key{
	glfw.KeyTab:          imgui.KeyTab,
	glfw.KeyLeft:         imgui.KeyLeftArrow,
	glfw.KeyRight:        imgui.KeyRightArrow,
	glfw.KeyUp:           imgui.KeyUpArrow,
	glfw.KeyDown:         imgui.KeyDownArrow,
	glfw.KeyPageUp:       imgui.KeyPageUp,
	glfw.KeyPageDown:     imgui.KeyPageDown,
	glfw.KeyHome:         imgui.KeyHome,
	glfw.KeyEnd:          imgui.KeyEnd,
	glfw.KeyInsert:       imgui.KeyInsert,
	glfw.KeyDelete:       imgui.KeyDelete,
	glfw.KeyBackspace:    imgui.KeyBackspace,
	glfw.KeySpace:        imgui.KeySpace,
	glfw.KeyEnter:        imgui.KeyEnter,
	glfw.KeyKPEnter:      imgui.KeyKeypadEnter,
	glfw.KeyEscape:       imgui.KeyEscape,
	glfw.KeyMinus:        imgui.KeyMinus,
	glfw.KeyPeriod:       imgui.KeyPeriod,
	glfw.KeyComma:        imgui.KeyComma,
	glfw.KeyLeftShift:    imgui.KeyLeftShift,
	glfw.KeyRightShift:   imgui.KeyRightShift,
	glfw.KeyLeftControl:  imgui.KeyLeftCtrl,
	glfw.KeyRightControl: imgui.KeyRightCtrl,
	glfw.KeyLeftAlt:      imgui.KeyLeftAlt,
	glfw.KeyRightAlt:     imgui.KeyRightAlt,
	glfw.KeyLeftSuper:    imgui.KeyLeftSuper,
	glfw.KeyRightSuper:   imgui.KeyRightSuper,
}

// imguiKey maps the GLFW keys the demo's text fields and menus need;
// letters, digits and function keys are contiguous in both enums.
func imguiKey(k glfw.Key) (imgui.Key, bool) {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return imgui.KeyA + imgui.Key(k-glfw.KeyA), true
	case k >= glfw.Key0 && k <= glfw.Key9:
		return imgui.Key0 + imgui.Key(k-glfw.Key0), true
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return imgui.KeyF1 + imgui.Key(k-glfw.KeyF1), true
	}
	key, ok := namedKeys[k]
	return key, ok
}
