// renderer/renderer.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"log/slog"

	"github.com/mmp/knobs/log"

	"github.com/AllenDang/cimgui-go/imgui"
	implogl3 "github.com/AllenDang/cimgui-go/impl/opengl3"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Renderer draws imgui's draw data for each frame.
type Renderer interface {
	// NewFrame must be called before imgui.NewFrame.
	NewFrame()

	// RenderFrame clears the framebuffer to the given color and draws the
	// draw data produced by the most recent imgui.Render call.
	RenderFrame(framebufferSize [2]float32, clear RGB) RendererStats

	// Dispose releases resources allocated by the renderer.
	Dispose()
}

// RendererStats encapsulates assorted statistics from rendering.
type RendererStats struct {
	nCommandLists int
	vertexBytes   int
	indexBytes    int
}

func (rs *RendererStats) String() string {
	return fmt.Sprintf("%d command lists, %.2f KB vertices, %.2f KB indices",
		rs.nCommandLists, float32(rs.vertexBytes)/1024, float32(rs.indexBytes)/1024)
}

func (rs *RendererStats) Merge(s RendererStats) {
	rs.nCommandLists += s.nCommandLists
	rs.vertexBytes += s.vertexBytes
	rs.indexBytes += s.indexBytes
}

func (rs RendererStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("command_lists", rs.nCommandLists),
		slog.Int("vertex_bytes", rs.vertexBytes),
		slog.Int("index_bytes", rs.indexBytes),
	)
}

type OpenGL3Renderer struct {
	lg *log.Logger
}

// NewOpenGL3Renderer initializes OpenGL and imgui's OpenGL3 backend. The
// GL context must already be current and the imgui context created.
func NewOpenGL3Renderer(lg *log.Logger) (Renderer, error) {
	lg.Info("Starting OpenGL3Renderer initialization")
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	lg.Infof("OpenGL vendor %s renderer %s version %s", gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION)))

	if !implogl3.InitV("#version 150") {
		return nil, fmt.Errorf("failed to initialize imgui OpenGL3 backend")
	}

	lg.Info("Finished OpenGL3Renderer initialization")
	return &OpenGL3Renderer{lg: lg}, nil
}

func (r *OpenGL3Renderer) NewFrame() {
	implogl3.NewFrame()
}

func (r *OpenGL3Renderer) RenderFrame(framebufferSize [2]float32, clear RGB) RendererStats {
	// Nothing to do when minimized.
	if framebufferSize[0] <= 0 || framebufferSize[1] <= 0 {
		return RendererStats{}
	}

	gl.Viewport(0, 0, int32(framebufferSize[0]), int32(framebufferSize[1]))
	gl.ClearColor(clear.R, clear.G, clear.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	drawData := imgui.CurrentDrawData()
	implogl3.RenderDrawData(drawData)

	return drawDataStats(drawData)
}

func drawDataStats(drawData *imgui.DrawData) RendererStats {
	var stats RendererStats
	for _, cl := range drawData.CommandLists() {
		_, vb := cl.GetVertexBuffer()
		_, ib := cl.GetIndexBuffer()
		stats.Merge(RendererStats{nCommandLists: 1, vertexBytes: vb, indexBytes: ib})
	}
	return stats
}

func (r *OpenGL3Renderer) Dispose() {
	implogl3.Shutdown()
	r.lg.Info("OpenGL3Renderer shut down")
}
