// cmd/knobdemo/main.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// knobdemo opens a window with one knob per saved style preset and a style
// editor for tweaking them.

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/mmp/knobs/knob"
	"github.com/mmp/knobs/log"
	"github.com/mmp/knobs/platform"
	"github.com/mmp/knobs/renderer"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/apenwarr/fixconsole"
	"github.com/goforj/godump"
	"golang.org/x/sync/errgroup"
)

var (
	logLevel    = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir      = flag.String("logdir", "", "log file directory")
	dumpConfig  = flag.Bool("dumpconfig", false, "print the loaded configuration and exit")
	resetConfig = flag.Bool("resetconfig", false, "ignore the saved configuration and start from the defaults")
)

func init() {
	// OpenGL and GLFW calls must all come from the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	if err := fixconsole.FixConsoleIfNeeded(); err != nil {
		fmt.Printf("FixConsole: %v\n", err)
	}

	lg := log.New(*logLevel, *logDir)
	knob.SetLogger(lg)

	configPath := configFilePath(lg)
	config, session, err := loadState(configPath, *resetConfig, lg)
	if err != nil {
		// Corrupt state isn't fatal; we've fallen back to the defaults.
		lg.Errorf("%v", err)
	}

	if *dumpConfig {
		godump.Dump(config)
		return
	}

	defer lg.CatchAndReportCrash()

	imgui.CreateContext()
	imgui.CurrentIO().SetIniFilename("")
	imgui.LoadIniSettingsFromMemory(config.ImGuiSettings)

	plat, err := platform.New(&config.Config, lg)
	if err != nil {
		lg.Errorf("Unable to create application window: %v", err)
		os.Exit(1)
	}
	lg.Infof("Window %v, display scale %.2f", plat.WindowSize(), plat.DPIScale())

	render, err := renderer.NewOpenGL3Renderer(lg)
	if err != nil {
		lg.Errorf("Unable to initialize OpenGL: %v", err)
		os.Exit(1)
	}

	uiInit()

	var frames int
	for !plat.ShouldStop() {
		plat.ProcessEvents()

		plat.NewFrame()
		render.NewFrame()
		imgui.NewFrame()

		uiDraw(config, session, plat, lg)

		imgui.Render()
		stats := render.RenderFrame(plat.FramebufferSize(), clearColor)
		plat.PostRender()

		if frames++; frames%3600 == 0 {
			lg.Debug("rendered", "frames", frames, "stats", stats)
		}
	}

	config.SaveIfChanged(configPath, plat, lg)
	session.Save(lg)

	render.Dispose()
	plat.Dispose()
}

// loadState reads the config and the cached session concurrently. Both
// are always returned, possibly as defaults, along with any error that
// caused a fallback.
func loadState(configPath string, reset bool, lg *log.Logger) (*Config, *Session, error) {
	var config *Config
	var session *Session
	var eg errgroup.Group

	eg.Go(func() error {
		if reset {
			lg.Info("Resetting configuration")
			config = getDefaultConfig()
			return nil
		}
		var err error
		config, err = LoadOrMakeDefaultConfig(configPath, lg)
		if err != nil {
			return fmt.Errorf("saved configuration is corrupt; discarding: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		session, err = LoadSession(lg)
		if err != nil {
			return fmt.Errorf("unable to load session: %w", err)
		}
		return nil
	})

	err := eg.Wait()
	return config, session, err
}
