// cmd/knobdemo/ui.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mmp/knobs/knob"
	"github.com/mmp/knobs/log"
	"github.com/mmp/knobs/math"
	"github.com/mmp/knobs/platform"
	"github.com/mmp/knobs/renderer"
	"github.com/mmp/knobs/util"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/ncruces/zenity"
	"github.com/pkg/browser"
)

var (
	ui struct {
		showAboutDialog bool
		showStyleEditor bool

		// Status line for the most recent export/import.
		message string
	}

	clearColor = renderer.RGBFromHex(0x1e1e24)
)

func uiInit() {
	ui.showStyleEditor = true
}

func uiDraw(config *Config, session *Session, p platform.Platform, lg *log.Logger) {
	p.SetWindowTitle(windowTitle(config))

	drawMenuBar(config, lg)

	drawKnobsWindow(config, session, p, lg)

	if ui.showStyleEditor {
		drawStyleEditor(config, lg)
	}
	if ui.showAboutDialog {
		showAboutDialog()
	}
}

// windowTitle names the preset being edited.
func windowTitle(config *Config) string {
	title := util.Select(config.Title != "", config.Title, "Knobs")
	if name, _ := config.SelectedStyle(); name != "" {
		title += ": " + name
	}
	return title
}

///////////////////////////////////////////////////////////////////////////
// Menus

func drawMenuBar(config *Config, lg *log.Logger) {
	if !imgui.BeginMainMenuBar() {
		return
	}

	if imgui.BeginMenu("File") {
		if imgui.MenuItemBool("Export preset...") {
			exportSelectedPreset(config, lg)
		}
		if imgui.MenuItemBool("Import preset...") {
			path, err := zenity.SelectFile(
				zenity.Title("Import Knob Preset"),
				zenity.FileFilters{
					{
						Name:     "JSON Files",
						Patterns: []string{"*.json"},
					},
				},
			)
			if err == nil {
				importPreset(config, path, lg)
			} else if !errors.Is(err, zenity.ErrCanceled) {
				lg.Errorf("Error selecting preset file: %v", err)
			}
		}
		if imgui.BeginMenuV("Recent", len(config.RecentExports) > 0) {
			for _, path := range slices.Backward(config.RecentExports) {
				if imgui.MenuItemBool(path) {
					importPreset(config, path, lg)
				}
			}
			imgui.EndMenu()
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("Window") {
		if imgui.MenuItemBoolV("Style editor", "", ui.showStyleEditor, true) {
			ui.showStyleEditor = !ui.showStyleEditor
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("Help") {
		if imgui.MenuItemBool("About...") {
			ui.showAboutDialog = true
		}
		imgui.EndMenu()
	}

	if ui.message != "" {
		imgui.Separator()
		imgui.TextUnformatted(ui.message)
	}

	imgui.EndMainMenuBar()
}

func exportSelectedPreset(config *Config, lg *log.Logger) {
	name, style := config.SelectedStyle()
	if style == nil {
		return
	}

	path, err := zenity.SelectFileSave(
		zenity.Title("Export Knob Preset"),
		zenity.Filename(presetFilename(name)),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{
			{
				Name:     "JSON Files",
				Patterns: []string{"*.json"},
			},
		},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return
	} else if err != nil {
		lg.Errorf("Error selecting export file: %v", err)
		return
	}

	if err := ExportPreset(path, *style); err != nil {
		lg.Errorf("Unable to export preset %q: %v", name, err)
		ui.message = fmt.Sprintf("Export failed: %v", err)
		return
	}
	lg.Infof("Exported preset %q to %s", name, path)
	config.AddRecentExport(path)
	ui.message = "Exported " + filepath.Base(path)
}

func importPreset(config *Config, path string, lg *log.Logger) {
	style, err := ImportPreset(path)
	if err != nil {
		lg.Errorf("Unable to import preset: %v", err)
		config.RemoveRecentExport(path)
		ui.message = fmt.Sprintf("Import failed: %v", err)
		return
	}

	name := uniquePresetName(config, presetNameFromFilename(path))
	config.SetPreset(name, style)
	config.SelectedPreset = name
	config.AddRecentExport(path)
	lg.Infof("Imported preset %q from %s", name, path)
	ui.message = "Imported " + name
}

func presetFilename(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-") + ".json"
}

func presetNameFromFilename(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.ReplaceAll(base, "-", " ")
}

// uniquePresetName returns name, or name with the smallest numeric suffix
// that does not collide with an existing preset.
func uniquePresetName(config *Config, name string) string {
	if _, ok := config.Presets[name]; !ok {
		return name
	}
	for i := 2; ; i++ {
		n := fmt.Sprintf("%s (%d)", name, i)
		if _, ok := config.Presets[n]; !ok {
			return n
		}
	}
}

///////////////////////////////////////////////////////////////////////////
// Knobs window

func drawKnobsWindow(config *Config, session *Session, p platform.Platform, lg *log.Logger) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 40}, imgui.CondFirstUseEver, imgui.Vec2{})
	imgui.BeginV("Knobs", nil, imgui.WindowFlagsAlwaysAutoResize)

	var status string
	for i, name := range config.SortedPresetNames() {
		if i > 0 {
			imgui.SameLine()
		}

		imgui.BeginGroup()
		v := session.Angles[name]
		if knob.KnobImgui(name, &v, config.Presets[name]) {
			session.Update(name, v)
		}
		if imgui.IsItemActive() {
			status = fmt.Sprintf("Dragging %q", name)
		} else if imgui.IsItemHovered() && status == "" {
			status = fmt.Sprintf("Over %q", name)
		}
		if imgui.IsItemClicked() {
			config.SelectedPreset = name
		}

		imgui.TextUnformatted(name)
		imgui.Text(fmt.Sprintf("%6.1f deg", math.RadToDeg(v)))
		imgui.EndGroup()
	}

	imgui.Separator()
	imgui.TextUnformatted(util.Select(status != "", status, "Drag a knob to turn it"))
	if m := p.GetMouse(); m.Dragging(platform.MouseButtonPrimary) {
		imgui.SameLine()
		imgui.Text(fmt.Sprintf("(%.0f, %.0f)", m.Pos[0], m.Pos[1]))
	}

	imgui.End()
}

///////////////////////////////////////////////////////////////////////////
// Style editor

func drawStyleEditor(config *Config, lg *log.Logger) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 220}, imgui.CondFirstUseEver, imgui.Vec2{})
	imgui.BeginV("Style", &ui.showStyleEditor, imgui.WindowFlagsAlwaysAutoResize)
	defer imgui.End()

	name, style := config.SelectedStyle()
	if style == nil {
		imgui.TextUnformatted("No presets")
		return
	}

	if imgui.BeginComboV("Preset", name, imgui.ComboFlagsHeightLarge) {
		for _, n := range config.SortedPresetNames() {
			if imgui.SelectableBoolV(n, n == name, 0, imgui.Vec2{}) {
				config.SelectedPreset = n
			}
		}
		imgui.EndCombo()
	}

	changed := false

	ty := int32(style.Type)
	for _, t := range []knob.Type{knob.Blank, knob.Basic} {
		if imgui.RadioButtonIntPtr(t.String(), &ty, int32(t)) {
			changed = true
		}
		imgui.SameLine()
	}
	imgui.NewLine()
	style.Type = knob.Type(ty)

	changed = editCircle("Base", &style.Base, 1, 100) || changed

	kind, _ := knob.IndicatorKind(style.Indicator)
	if imgui.BeginComboV("Indicator", util.Select(kind != "", kind, "none"), 0) {
		if imgui.SelectableBoolV("none", style.Indicator == nil, 0, imgui.Vec2{}) {
			style.Indicator = nil
			changed = true
		}
		for _, k := range knob.IndicatorKinds() {
			if imgui.SelectableBoolV(k, k == kind, 0, imgui.Vec2{}) && k != kind {
				if ind, err := knob.NewIndicator(k); err != nil {
					lg.Errorf("%v", err)
				} else {
					style.Indicator = ind
					changed = true
				}
			}
		}
		imgui.EndCombo()
	}

	r := style.Base.Radius
	switch ind := style.Indicator.(type) {
	case *knob.LineIndicator:
		changed = imgui.SliderFloatV("Internal padding", &ind.InternalPadding, 0, r, "%.1f", 0) || changed
		changed = imgui.SliderFloatV("External padding", &ind.ExternalPadding, 0, r, "%.1f", 0) || changed
		changed = imgui.SliderFloatV("Thickness", &ind.Thickness, 0, 10, "%.1f", 0) || changed
		changed = editColor("Line color", &ind.Color) || changed
	case *knob.IndicatorDot:
		changed = imgui.SliderFloatV("Inner padding", &ind.InnerPadding, 0, r, "%.1f", 0) || changed
		changed = imgui.SliderFloatV("Outer padding", &ind.OuterPadding, 0, r, "%.1f", 0) || changed
		changed = editCircle("Dot", &ind.Circle, 0, r) || changed
	}

	changed = editCircle("Cover", &style.Cover, 0, r) || changed

	if changed {
		config.SetPreset(name, *style)
	}

	imgui.Separator()
	if imgui.Button("Duplicate") {
		n := uniquePresetName(config, name)
		config.SetPreset(n, style.Clone())
		config.SelectedPreset = n
	}
	imgui.SameLine()
	imgui.BeginDisabledV(len(config.Presets) < 2)
	if imgui.Button("Delete") {
		delete(config.Presets, name)
		lg.Infof("Deleted preset %q", name)
	}
	imgui.EndDisabled()
	imgui.SameLine()
	if imgui.Button("Restore built-ins") {
		for n, s := range builtinPresets() {
			config.SetPreset(n, s)
		}
	}
}

func editCircle(label string, c *knob.Circle, minRadius, maxRadius float32) bool {
	imgui.PushIDStr(label)
	defer imgui.PopID()

	imgui.TextUnformatted(label)
	changed := imgui.SliderFloatV("Radius", &c.Radius, minRadius, maxRadius, "%.1f", 0)
	seg := int32(c.Segments)
	if imgui.SliderInt("Segments", &seg, 0, 64) {
		c.Segments = int(seg)
		changed = true
	}
	return editColor("Color", &c.Color) || changed
}

func editColor(label string, c *renderer.RGBA) bool {
	col := [4]float32{c.R, c.G, c.B, c.A}
	if imgui.ColorEdit4V(label, &col, imgui.ColorEditFlagsAlphaBar) {
		*c = renderer.RGBA{R: col[0], G: col[1], B: col[2], A: col[3]}
		return true
	}
	return false
}

///////////////////////////////////////////////////////////////////////////
// "about" dialog box

func showAboutDialog() {
	flags := imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings
	imgui.BeginV("About Knobs...", &ui.showAboutDialog, flags)

	imgui.TextUnformatted("Knobs: rotary controls for Dear ImGui")
	imgui.TextUnformatted("Licensed under the GPL, Version 3")
	if imgui.IsItemHovered() && imgui.IsMouseClickedBool(platform.MouseButtonPrimary) {
		browser.OpenURL("https://www.gnu.org/licenses/gpl-3.0.html")
	}
	imgui.TextUnformatted("Built with Dear ImGui")
	if imgui.IsItemHovered() && imgui.IsMouseClickedBool(platform.MouseButtonPrimary) {
		browser.OpenURL("https://github.com/ocornut/imgui")
	}

	imgui.End()
}
