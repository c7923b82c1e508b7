// cmd/knobdemo/config.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mmp/knobs/knob"
	"github.com/mmp/knobs/log"
	"github.com/mmp/knobs/platform"
	"github.com/mmp/knobs/renderer"
	"github.com/mmp/knobs/util"

	"github.com/AllenDang/cimgui-go/imgui"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	CurrentConfigVersion = 1
	maxRecentExports     = 8
)

type Config struct {
	platform.Config

	Version       int
	ImGuiSettings string

	Presets        map[string]knob.Style
	SelectedPreset string
	// Oldest first.
	RecentExports []string

	recent *lru.Cache[string, struct{}]
}

func configFilePath(lg *log.Logger) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		lg.Errorf("Unable to find user config dir: %v", err)
		dir = "."
	}

	dir = filepath.Join(dir, "Knobs")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		lg.Errorf("%s: unable to make directory for config file: %v", dir, err)
	}

	return filepath.Join(dir, "config.json")
}

// builtinPresets returns the styles every new configuration starts with.
// Colors come from imgui's default dark theme so that the presets can be
// built before an imgui context exists.
func builtinPresets() map[string]knob.Style {
	bg := renderer.RGBAFromUInt8(41, 74, 122, 138)
	th := staticTheme{bg: bg}

	def := knob.DefaultStyle(th)

	dot := knob.DefaultStyle(th)
	d := knob.NewIndicatorDot()
	d.InnerPadding, d.OuterPadding = 4, 4
	d.Radius = 3
	dot.Indicator = d
	dot.Cover = knob.Circle{}

	floating := knob.DefaultStyle(th)
	li := knob.NewLineIndicator()
	li.InternalPadding, li.ExternalPadding = 10, 4
	li.Thickness = 3
	li.Color = renderer.RGBAFromUInt8(250, 200, 60, 255)
	floating.Indicator = li
	floating.Cover = knob.Circle{}

	blank := knob.DefaultStyle(th)
	blank.Type = knob.Blank
	blank.Base.Color = renderer.RGBAFromUInt8(90, 90, 90, 255)

	return map[string]knob.Style{
		"Default":       def,
		"Dot":           dot,
		"Floating line": floating,
		"Blank":         blank,
	}
}

type staticTheme struct {
	bg renderer.RGBA
}

func (t staticTheme) FrameBackground() renderer.RGBA { return t.bg }
func (t staticTheme) ItemInnerSpacing() [2]float32   { return [2]float32{4, 4} }

func getDefaultConfig() *Config {
	c := &Config{
		Config: platform.Config{
			InitialWindowPosition: [2]int{100, 100},
			EnableMSAA:            true,
		},
		Version:        CurrentConfigVersion,
		Presets:        builtinPresets(),
		SelectedPreset: "Default",
	}
	c.initRecent()
	return c
}

func (c *Config) initRecent() {
	c.recent, _ = lru.New[string, struct{}](maxRecentExports)
	for _, path := range c.RecentExports {
		c.recent.Add(path, struct{}{})
	}
	c.RecentExports = c.recent.Keys()
}

// AddRecentExport records a preset file path, evicting the least recently
// used one when the list is full.
func (c *Config) AddRecentExport(path string) {
	c.recent.Add(path, struct{}{})
	c.RecentExports = c.recent.Keys()
}

// RemoveRecentExport drops a path, e.g. after it failed to load.
func (c *Config) RemoveRecentExport(path string) {
	c.recent.Remove(path)
	c.RecentExports = c.recent.Keys()
}

// SortedPresetNames returns the preset names in a stable display order.
func (c *Config) SortedPresetNames() []string {
	return util.SortedMapKeys(c.Presets)
}

// SelectedStyle returns the style currently selected for editing, falling
// back to the first preset if the selection no longer exists.
func (c *Config) SelectedStyle() (string, *knob.Style) {
	if _, ok := c.Presets[c.SelectedPreset]; !ok {
		names := c.SortedPresetNames()
		if len(names) == 0 {
			return "", nil
		}
		c.SelectedPreset = names[0]
	}
	s := c.Presets[c.SelectedPreset]
	return c.SelectedPreset, &s
}

func (c *Config) SetPreset(name string, s knob.Style) {
	c.Presets[name] = s
}

func (c *Config) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(c)
}

func (c *Config) Save(fn string, lg *log.Logger) error {
	lg.Infof("Saving config to: %s", fn)
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Encode(f)
}

// SaveIfChanged gathers window and imgui state from the session and
// writes the config only if it differs from what is on disk.
func (c *Config) SaveIfChanged(fn string, p platform.Platform, lg *log.Logger) bool {
	c.ImGuiSettings = imgui.SaveIniSettingsToMemory()
	c.InitialWindowSize = p.WindowSize()
	c.InitialWindowPosition = p.WindowPosition()

	return c.saveIfChanged(fn, lg)
}

func (c *Config) saveIfChanged(fn string, lg *log.Logger) bool {
	onDisk, err := os.ReadFile(fn)
	if err != nil && !os.IsNotExist(err) {
		lg.Warnf("%s: unable to read config file: %v", fn, err)
	}

	var b bytes.Buffer
	if err := c.Encode(&b); err != nil {
		lg.Errorf("%s: unable to encode config: %v", fn, err)
		return false
	}
	if bytes.Equal(b.Bytes(), onDisk) {
		return false
	}

	if err := c.Save(fn, lg); err != nil {
		lg.Errorf("%s: unable to save config: %v", fn, err)
		return false
	}
	return true
}

// LoadOrMakeDefaultConfig reads the config from fn. A missing file yields
// the default config and no error; a corrupt one yields the default
// config along with the decoding error.
func LoadOrMakeDefaultConfig(fn string, lg *log.Logger) (config *Config, configErr error) {
	lg.Infof("Loading config from: %s", fn)

	config = getDefaultConfig()

	defer func() {
		if err := recover(); err != nil {
			configErr = fmt.Errorf("%v", err)
			config = getDefaultConfig()
		}
	}()

	contents, err := os.ReadFile(fn)
	if err != nil {
		if !os.IsNotExist(err) {
			configErr = err
		}
		return
	}

	c := &Config{}
	if err := util.UnmarshalJSONBytes(contents, c); err != nil {
		configErr = fmt.Errorf("%s: %w", fn, err)
		return
	}

	if len(c.Presets) == 0 {
		c.Presets = builtinPresets()
	}
	c.Version = CurrentConfigVersion
	c.initRecent()
	config = c

	return
}

// ExportPreset writes a single style as JSON.
func ExportPreset(fn string, s knob.Style) error {
	b, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(fn, b, 0o644); err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	return nil
}

// ImportPreset reads a style written by ExportPreset.
func ImportPreset(fn string) (knob.Style, error) {
	var s knob.Style
	b, err := os.ReadFile(fn)
	if err != nil {
		return s, err
	}
	if err := util.UnmarshalJSONBytes(b, &s); err != nil {
		return s, fmt.Errorf("%s: %w", fn, err)
	}
	return s, nil
}
