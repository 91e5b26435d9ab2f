// GridPlace: grid placement planner
//
// A cross-platform desktop application for placing rectangular items
// on a cell grid, first fit in row-major order.
//
// Build:
//   go build -o gridplace ./cmd/gridplace
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o gridplace.exe ./cmd/gridplace
//   GOOS=darwin  GOARCH=amd64 go build -o gridplace-darwin ./cmd/gridplace

package main

import (
	"flag"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/GridPlace/internal/engine"
	"github.com/piwi3910/GridPlace/internal/model"
	"github.com/piwi3910/GridPlace/internal/project"
	"github.com/piwi3910/GridPlace/internal/ui"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	layoutFlag := flag.String("layout", "", "layout file to open at startup")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	configPath := project.DefaultConfigPath()
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		logger.Warn("config unreadable, using defaults", "path", configPath, "error", err)
		config = model.DefaultAppConfig()
	}

	board, err := engine.NewBoard(config.GridSize(),
		engine.WithLogger(logger),
		engine.WithLimits(config.GridLimits()),
	)
	if err != nil {
		logger.Error("invalid default grid, falling back", "grid", config.GridSize(), "error", err)
		board, _ = engine.NewBoard(model.DefaultAppConfig().GridSize(), engine.WithLogger(logger))
	}

	application := app.NewWithID("com.piwi3910.gridplace")
	application.Settings().SetTheme(ui.ThemeFromName(config.Theme))

	window := application.NewWindow("GridPlace")

	appUI := ui.NewApp(application, window, board, config, configPath, logger)
	appUI.LoadLibrary(project.DefaultPresetsPath(), project.DefaultTemplatePath())
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	if *layoutFlag != "" {
		appUI.OpenLayout(*layoutFlag)
	}
	window.Resize(fyne.NewSize(1200, 760))
	window.CenterOnScreen()
	window.ShowAndRun()
}
