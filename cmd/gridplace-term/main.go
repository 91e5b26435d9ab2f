// gridplace-term places items on a grid from the terminal.
//
// Usage:
//
//	gridplace-term [-grid 12x6] [-layout desk.gridplace] [-import items.csv] [-arrange area] [-save out.gridplace]
//
// Arrow keys size the next item, Enter places it, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/piwi3910/GridPlace/internal/engine"
	"github.com/piwi3910/GridPlace/internal/export"
	"github.com/piwi3910/GridPlace/internal/importer"
	"github.com/piwi3910/GridPlace/internal/model"
	"github.com/piwi3910/GridPlace/internal/project"
	"github.com/piwi3910/GridPlace/internal/termview"
)

func main() {
	gridFlag := flag.String("grid", "", "grid size as WIDTHxHEIGHT (default from config)")
	layoutFlag := flag.String("layout", "", "layout file to open (.gridplace, .json, .yaml)")
	importFlag := flag.String("import", "", "CSV, Excel or DXF file of items to place")
	arrangeFlag := flag.String("arrange", "", "rearrange items before start: insertion, area, height, width or genetic")
	saveFlag := flag.String("save", "", "write the layout to this file on exit")
	logFlag := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	logger, closeLog, err := newLogger(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		logger.Warn("config unreadable, using defaults", "error", err)
		config = model.DefaultAppConfig()
	}

	board, err := openBoard(config, *gridFlag, *layoutFlag, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *importFlag != "" {
		if err := importItems(board, *importFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *arrangeFlag != "" {
		strategy, err := engine.ParseStrategy(*arrangeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if _, err := board.Arrange(strategy); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.Clear()

	termview.New(screen, board, logger).Run()
	screen.Fini()

	if *saveFlag != "" {
		if err := project.SaveLayout(*saveFlag, board.Layout()); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving layout: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %s\n", *saveFlag)
	}
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

func openBoard(config model.AppConfig, gridSpec, layoutPath string, logger *slog.Logger) (*engine.Board, error) {
	opts := []engine.BoardOption{engine.WithLogger(logger), engine.WithLimits(config.GridLimits())}

	if layoutPath != "" {
		layout, err := project.LoadLayout(layoutPath)
		if err != nil {
			return nil, fmt.Errorf("loading layout: %w", err)
		}
		board, err := engine.NewBoard(config.GridSize(), opts...)
		if err != nil {
			return nil, err
		}
		if err := board.Restore(layout); err != nil {
			return nil, fmt.Errorf("restoring %s: %w", layoutPath, err)
		}
		return board, nil
	}

	grid := config.GridSize()
	if gridSpec != "" {
		var err error
		if grid, err = model.ParseGridSize(gridSpec); err != nil {
			return nil, err
		}
	}
	return engine.NewBoard(grid, opts...)
}

func importItems(board *engine.Board, path string) error {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		result = importer.ImportExcel(path)
	case ".dxf":
		result = importer.ImportDXF(path, export.DefaultDXFCellSize)
	default:
		result = importer.ImportCSV(path)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("importing %s: %s", path, strings.Join(result.Errors, "; "))
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	_, problems := result.Apply(board)
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "Skipped: %s\n", p)
	}
	return nil
}
