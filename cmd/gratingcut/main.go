// GratingCut: grating item editor and panel layout preview.
//
// Build:
//   go build -o gratingcut ./cmd/gratingcut
//
// Using fyne-cross for packaging:
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/hashicorp/go-hclog"

	"github.com/piwi3910/GratingCut/internal/model"
	"github.com/piwi3910/GratingCut/internal/project"
	"github.com/piwi3910/GratingCut/internal/ui"
)

func main() {
	configPath := project.DefaultConfigPath()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "gratingcut",
		Output: os.Stderr,
	})

	cfg, err := project.LoadAppConfig(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = model.DefaultAppConfig()
	}
	if level := hclog.LevelFromString(cfg.LogLevel); level != hclog.NoLevel {
		logger.SetLevel(level)
	}

	profiles, err := project.LoadCustomProfiles(filepath.Join(filepath.Dir(configPath), "profiles.json"))
	if err != nil {
		logger.Warn("ignoring custom profiles", "error", err)
	}
	model.CustomProfiles = profiles

	application := app.NewWithID("com.piwi3910.gratingcut")
	th := ui.NewGratingTheme(cfg.Theme)
	application.Settings().SetTheme(th)

	window := application.NewWindow("GratingCut")

	appUI := ui.NewApp(window, cfg, configPath, th, logger)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1280, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
