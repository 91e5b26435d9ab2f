// Package ui provides the GridPlace desktop application built on Fyne.
package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/GridPlace/internal/engine"
	"github.com/piwi3910/GridPlace/internal/export"
	itemimporter "github.com/piwi3910/GridPlace/internal/importer"
	"github.com/piwi3910/GridPlace/internal/model"
	"github.com/piwi3910/GridPlace/internal/project"
	"github.com/piwi3910/GridPlace/internal/ui/widgets"
)

const (
	gridTabIndex = 0
	itemTabIndex = 1
	cellSize     = 40
)

// App holds all application state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	board      *engine.Board
	history    *History
	config     model.AppConfig
	configPath string
	logger     *slog.Logger
	layoutPath string

	presets       model.PresetCatalog
	presetsPath   string
	templates     model.TemplateStore
	templatesPath string

	tabs *container.AppTabs

	// Form fields and their error labels, keyed by field name
	entries     map[string]*widget.Entry
	fieldErrors map[string]*widget.Label
	itemLabel    *widget.Entry
	itemError    *widget.Label
	presetSelect *widget.Select

	// UI references for dynamic updates
	itemsContainer *fyne.Container
	gridCanvas     *widgets.GridCanvas
	statusLabel    *widget.Label
}

func NewApp(application fyne.App, window fyne.Window, board *engine.Board, config model.AppConfig, configPath string, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		app:         application,
		window:      window,
		board:       board,
		history:     NewHistory(),
		config:      config,
		configPath:  configPath,
		logger:      logger,
		entries:     map[string]*widget.Entry{},
		fieldErrors: map[string]*widget.Label{},
		presets:     model.DefaultPresetCatalog(),
		templates:   model.NewTemplateStore(),
	}
}

// SetupMenus creates the native menu bar and keyboard shortcuts.
func (a *App) SetupMenus() {
	recentItems := make([]*fyne.MenuItem, 0, len(a.config.RecentLayouts))
	for _, path := range a.config.RecentLayouts {
		p := path
		recentItems = append(recentItems, fyne.NewMenuItem(filepath.Base(p), func() {
			a.OpenLayout(p)
		}))
	}
	openRecent := fyne.NewMenuItem("Open Recent", nil)
	openRecent.ChildMenu = fyne.NewMenu("", recentItems...)
	openRecent.Disabled = len(recentItems) == 0

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Layout", func() {
			a.newLayout()
		}),
		fyne.NewMenuItem("Open Layout...", func() {
			a.loadLayout()
		}),
		openRecent,
		fyne.NewMenuItem("Save Layout...", func() {
			a.saveLayout()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("New from Template...", func() {
			a.newFromTemplate()
		}),
		fyne.NewMenuItem("Save as Template...", func() {
			a.saveAsTemplate()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Items from CSV...", func() {
			a.importItems("CSV", []string{".csv", ".txt"}, itemimporter.ImportCSV)
		}),
		fyne.NewMenuItem("Import Items from Excel...", func() {
			a.importItems("Excel", []string{".xlsx", ".xlsm"}, itemimporter.ImportExcel)
		}),
		fyne.NewMenuItem("Import Items from DXF...", func() {
			a.importItems("DXF", []string{".dxf"}, func(path string) itemimporter.ImportResult {
				return itemimporter.ImportDXF(path, export.DefaultDXFCellSize)
			})
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF...", func() {
			a.exportLayout("PDF", ".pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Labels...", func() {
			a.exportLayout("Labels", "-labels.pdf", export.ExportLabels)
		}),
		fyne.NewMenuItem("Export Excel...", func() {
			a.exportLayout("Excel", ".xlsx", export.ExportExcel)
		}),
		fyne.NewMenuItem("Export DXF...", func() {
			a.exportLayout("DXF", ".dxf", func(path string, l model.Layout) error {
				return export.ExportDXF(path, l, export.DefaultDXFCellSize)
			})
		}),
		fyne.NewMenuItem("Export PNG...", func() {
			a.exportLayout("PNG", ".png", func(path string, l model.Layout) error {
				return export.ExportPNG(path, l, export.DefaultPNGOptions())
			})
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Backup Settings and Layout...", func() {
			a.exportBackup()
		}),
		fyne.NewMenuItem("Restore Backup...", func() {
			a.importBackup()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() { a.undo() }),
		fyne.NewMenuItem("Redo", func() { a.redo() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Rearrange Items...", func() { a.showArrangeDialog() }),
		fyne.NewMenuItem("Remove All Items", func() { a.resetItems() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Item Presets...", func() { a.showPresetsDialog() }),
		fyne.NewMenuItem("Settings...", func() { a.showSettingsDialog() }),
	)

	themeMenu := fyne.NewMenuItem("Theme", nil)
	themeMenu.ChildMenu = fyne.NewMenu("",
		fyne.NewMenuItem("System", func() { a.setTheme(ThemeSystem) }),
		fyne.NewMenuItem("Light", func() { a.setTheme(ThemeLight) }),
		fyne.NewMenuItem("Dark", func() { a.setTheme(ThemeDark) }),
	)
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Layout Summary...", func() { a.showSummaryDialog() }),
		themeMenu,
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))

	c := a.window.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) { a.undo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) { a.redo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) { a.saveLayout() })
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About GridPlace",
		"GridPlace: first-fit grid placement\n\n"+
			"Items are placed at the first free position scanning\n"+
			"rows top to bottom, left to right. The grid doubles\n"+
			"its height when it runs out of room.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	gridTab := container.NewTabItemWithIcon("Grid", theme.GridIcon(), a.buildGridPanel())
	itemTab := container.NewTabItemWithIcon("Item", theme.ContentAddIcon(), a.buildItemPanel())

	a.tabs = container.NewAppTabs(gridTab, itemTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.gridCanvas = widgets.NewGridCanvas(a.board.Layout(), cellSize)
	a.gridCanvas.OnItemTapped = func(it model.Item) { a.confirmRemove(it) }

	a.itemsContainer = container.NewVBox()
	a.statusLabel = widget.NewLabel("")

	left := container.NewBorder(nil, nil, nil, nil,
		container.NewVSplit(a.tabs, container.NewVScroll(a.itemsContainer)))
	right := container.NewBorder(nil, a.statusLabel, nil, nil,
		container.NewScroll(container.NewPadded(a.gridCanvas)))

	split := container.NewHSplit(left, right)
	split.SetOffset(0.3)

	a.refresh()
	return split
}

// ─── Grid Panel ────────────────────────────────────────────

func (a *App) buildGridPanel() fyne.CanvasObject {
	grid := a.board.Grid()
	limits := a.board.Limits()

	widthEntry := a.newField(model.FieldGridWidth, fmt.Sprintf("1 to %d", limits.MaxWidth), fmt.Sprint(grid.Width))
	heightEntry := a.newField(model.FieldGridHeight, fmt.Sprintf("1 to %d", limits.MaxHeight), fmt.Sprint(grid.Height))

	setBtn := widget.NewButtonWithIcon("Set", theme.ConfirmIcon(), func() {
		a.setGrid()
	})
	setBtn.Importance = widget.HighImportance

	return container.NewVBox(
		widget.NewLabelWithStyle("Grid Size", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Setting the grid removes all items."),
		container.NewGridWithColumns(2,
			widget.NewLabel("Width (cells)"), widthEntry,
			layout.NewSpacer(), a.fieldErrors[model.FieldGridWidth],
			widget.NewLabel("Height (cells)"), heightEntry,
			layout.NewSpacer(), a.fieldErrors[model.FieldGridHeight],
		),
		container.NewHBox(layout.NewSpacer(), setBtn),
	)
}

func (a *App) setGrid() {
	grid, fe := gridFromForm(a.entries[model.FieldGridWidth].Text, a.entries[model.FieldGridHeight].Text, a.board.Limits())
	a.showFieldErrors(model.FieldErrors(fe), model.FieldGridWidth, model.FieldGridHeight)
	if fe != nil {
		return
	}

	if err := a.apply("Set Grid", func() error { return a.board.SetGrid(grid) }); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.clearItemForm()
	a.tabs.SelectIndex(itemTabIndex)
}

// ─── Item Panel ────────────────────────────────────────────

func (a *App) buildItemPanel() fyne.CanvasObject {
	a.itemLabel = widget.NewEntry()
	a.itemLabel.SetPlaceHolder("Optional name")
	a.itemError = widget.NewLabel("")
	a.itemError.Importance = widget.DangerImportance
	a.itemError.Hide()

	widthEntry := a.newField(model.FieldItemWidth, "Width in cells", "")
	heightEntry := a.newField(model.FieldItemHeight, "Height in cells", "")
	heightEntry.OnSubmitted = func(string) { a.addItem() }

	addBtn := widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), func() {
		a.addItem()
	})
	addBtn.Importance = widget.HighImportance

	resetBtn := newButtonWithTooltip("Reset", theme.ContentClearIcon(), "Remove all items and keep the grid size", func() {
		a.resetItems()
	})

	return container.NewVBox(
		widget.NewLabelWithStyle("Add Item", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2,
			widget.NewLabel("Preset"), a.buildPresetSelector(),
			widget.NewLabel("Label"), a.itemLabel,
			widget.NewLabel("Width (cells)"), widthEntry,
			layout.NewSpacer(), a.fieldErrors[model.FieldItemWidth],
			widget.NewLabel("Height (cells)"), heightEntry,
			layout.NewSpacer(), a.fieldErrors[model.FieldItemHeight],
		),
		a.itemError,
		container.NewHBox(resetBtn, layout.NewSpacer(), addBtn),
	)
}

func (a *App) addItem() {
	size := sizeFromForm(a.entries[model.FieldItemWidth].Text, a.entries[model.FieldItemHeight].Text)

	var placed model.Item
	err := a.apply("Add Item", func() error {
		var err error
		placed, err = a.board.AddItem(a.itemFormLabel(), size)
		return err
	})

	errs := itemFormErrors(err)
	a.showFieldErrors(errs, model.FieldItemWidth, model.FieldItemHeight)
	if msg, ok := errs[""]; ok {
		a.itemError.SetText(msg)
		a.itemError.Show()
	} else {
		a.itemError.Hide()
	}
	if err != nil {
		return
	}

	a.itemLabel.SetText("")
	a.logger.Debug("item added from form", "id", placed.ID, "position", placed.PositionLabel())
}

// itemFormLabel returns the typed label, or the chosen preset name when the
// label is left blank.
func (a *App) itemFormLabel() string {
	if label := strings.TrimSpace(a.itemLabel.Text); label != "" {
		return label
	}
	if a.presetSelect != nil && a.presetSelect.Selected != "" {
		return a.presetSelect.Selected
	}
	return ""
}

func (a *App) clearItemForm() {
	a.itemLabel.SetText("")
	a.entries[model.FieldItemWidth].SetText("")
	a.entries[model.FieldItemHeight].SetText("")
	a.itemLabel.SetPlaceHolder("Optional name")
	a.presetSelect.ClearSelected()
	a.showFieldErrors(nil, model.FieldItemWidth, model.FieldItemHeight)
	a.itemError.Hide()
}

// newField creates an entry with an error label below it, both registered under field.
func (a *App) newField(field, placeholder, text string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(placeholder)
	e.SetText(text)
	a.entries[field] = e

	errLabel := widget.NewLabel("")
	errLabel.Importance = widget.DangerImportance
	errLabel.Hide()
	a.fieldErrors[field] = errLabel
	return e
}

// showFieldErrors displays errs on the given fields and clears the rest of them.
func (a *App) showFieldErrors(errs map[string]string, fields ...string) {
	for _, f := range fields {
		label := a.fieldErrors[f]
		if msg, ok := errs[f]; ok {
			label.SetText(msg)
			label.Show()
		} else {
			label.SetText("")
			label.Hide()
		}
	}
}

// ─── Items List ────────────────────────────────────────────

func (a *App) refreshItemsList() {
	a.itemsContainer.RemoveAll()

	items := a.board.Items()
	if len(items) == 0 {
		a.itemsContainer.Add(widget.NewLabel("No items placed yet. Use the Item tab to add one."))
		return
	}

	header := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Size", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Position", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.itemsContainer.Add(header)
	a.itemsContainer.Add(widget.NewSeparator())

	for i, it := range items {
		item := it
		swatch := canvas.NewRectangle(model.ItemColor(i))
		swatch.SetMinSize(fyne.NewSize(14, 14))
		swatch.StrokeColor = color.Black
		swatch.StrokeWidth = 1

		row := container.NewGridWithColumns(5,
			container.NewHBox(swatch, widget.NewLabel(item.Label)),
			widget.NewLabel(fmt.Sprintf("%d x %d", item.Width, item.Height)),
			widget.NewLabel(item.PositionLabel()),
			layout.NewSpacer(),
			newButtonWithTooltip("", theme.DeleteIcon(), "Remove "+item.Label, func() {
				a.removeItem(item)
			}),
		)
		a.itemsContainer.Add(row)
	}
}

func (a *App) refresh() {
	l := a.board.Layout()
	a.gridCanvas.SetLayout(l)
	a.refreshItemsList()
	a.statusLabel.SetText(fmt.Sprintf("%s | Grid %s | %d items | %.1f%% filled",
		l.Name, l.Grid, len(l.Items), l.Fill()))
	a.window.SetTitle("GridPlace - " + l.Name)
}

// ─── Actions ───────────────────────────────────────────────

// apply runs a board mutation, recording an undo snapshot when it succeeds.
func (a *App) apply(label string, mutate func() error) error {
	snap := MakeSnapshot(a.board.Layout(), label)
	if err := mutate(); err != nil {
		a.logger.Debug("action rejected", "action", label, "error", err)
		return err
	}
	a.history.Push(snap)
	a.refresh()
	return nil
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.board.Layout(), "Current"))
	if !ok {
		return
	}
	a.restore(snap)
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.board.Layout(), "Current"))
	if !ok {
		return
	}
	a.restore(snap)
}

func (a *App) restore(snap Snapshot) {
	if err := a.board.Restore(snap.Layout); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.refresh()
}

func (a *App) resetItems() {
	_ = a.apply("Reset", func() error {
		a.board.Reset()
		return nil
	})
	a.clearItemForm()
}

func (a *App) removeItem(item model.Item) {
	err := a.apply("Remove Item", func() error {
		return removeFromBoard(a.board, item)
	})
	if err != nil {
		dialog.ShowError(err, a.window)
	}
}

func (a *App) confirmRemove(item model.Item) {
	dialog.ShowConfirm("Remove Item",
		fmt.Sprintf("Remove %s (%d x %d at %s)?", item.Label, item.Width, item.Height, item.PositionLabel()),
		func(ok bool) {
			if ok {
				a.removeItem(item)
			}
		}, a.window)
}

func (a *App) newLayout() {
	grid := a.config.GridSize()
	err := a.apply("New Layout", func() error {
		l := model.NewLayout()
		l.Grid = grid
		return a.board.Restore(l)
	})
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.layoutPath = ""
	a.entries[model.FieldGridWidth].SetText(fmt.Sprint(grid.Width))
	a.entries[model.FieldGridHeight].SetText(fmt.Sprint(grid.Height))
	a.clearItemForm()
	a.tabs.SelectIndex(gridTabIndex)
}

func (a *App) setTheme(name string) {
	a.app.Settings().SetTheme(ThemeFromName(name))
	a.config.Theme = name
	a.saveConfig()
}

func (a *App) saveConfig() {
	if a.configPath == "" {
		return
	}
	if err := project.SaveAppConfig(a.configPath, a.config); err != nil {
		a.logger.Warn("failed to save config", "path", a.configPath, "error", err)
	}
}

func (a *App) rememberLayout(path string) {
	a.layoutPath = path
	a.config.AddRecentLayout(path)
	a.saveConfig()
	a.SetupMenus()
}

// ─── Layout Files ──────────────────────────────────────────

func (a *App) saveLayout() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		l := a.board.Layout()
		if base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)); l.Name == model.NewLayout().Name && base != "" {
			a.board.SetName(base)
			l.Name = base
		}
		if err := project.SaveLayout(path, l); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.logger.Info("layout saved", "path", path, "items", len(l.Items))
		a.rememberLayout(path)
		a.refresh()
	}, a.window)
	d.SetFileName(a.board.Layout().Name + project.LayoutExtension)
	d.Show()
}

func (a *App) loadLayout() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.OpenLayout(path)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{project.LayoutExtension, ".json", ".yaml", ".yml"}))
	d.Show()
}

// OpenLayout loads a layout file onto the board and remembers it as recent.
func (a *App) OpenLayout(path string) {
	l, err := project.LoadLayout(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if err := a.apply("Open Layout", func() error { return a.board.Restore(l) }); err != nil {
		dialog.ShowError(fmt.Errorf("cannot open %s: %w", filepath.Base(path), err), a.window)
		return
	}
	a.logger.Info("layout opened", "path", path, "items", len(l.Items))
	a.entries[model.FieldGridWidth].SetText(fmt.Sprint(l.Grid.Width))
	a.entries[model.FieldGridHeight].SetText(fmt.Sprint(l.Grid.Height))
	a.rememberLayout(path)
	a.tabs.SelectIndex(itemTabIndex)
}

// ─── Export Functions ──────────────────────────────────────

func (a *App) exportLayout(kind, suffix string, write func(path string, l model.Layout) error) {
	l := a.board.Layout()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := write(path, l); err != nil {
			dialog.ShowError(fmt.Errorf("%s export failed: %w", kind, err), a.window)
			return
		}
		a.logger.Info("layout exported", "format", kind, "path", path)
		dialog.ShowInformation("Export Complete", fmt.Sprintf("%s saved to %s", kind, path), a.window)
	}, a.window)
	d.SetFileName(l.Name + suffix)
	d.Show()
}

func (a *App) exportBackup() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		l := a.board.Layout()
		if err := project.ExportAllData(path, a.config, &l); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Backup Complete", "Settings and layout saved to "+path, a.window)
	}, a.window)
	d.SetFileName("gridplace-backup.json")
	d.Show()
}

func (a *App) importBackup() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		backup, err := project.ImportAllData(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config = backup.Config
		a.saveConfig()
		a.app.Settings().SetTheme(ThemeFromName(a.config.Theme))

		if backup.Layout != nil {
			if err := a.apply("Restore Backup", func() error { return a.board.Restore(*backup.Layout) }); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
		}
		a.SetupMenus()
		dialog.ShowInformation("Restore Complete", "Settings restored from "+filepath.Base(path), a.window)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

// ─── Import Functions ──────────────────────────────────────

func (a *App) importItems(kind string, extensions []string, read func(path string) itemimporter.ImportResult) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		a.handleImportResult(read(path))
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter(extensions))
	d.Show()
	a.logger.Debug("import dialog opened", "format", kind)
}

func (a *App) handleImportResult(result itemimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	for _, w := range result.Warnings {
		a.logger.Warn("import warning", "message", w)
	}

	if len(result.Items) == 0 {
		return
	}

	var placed []model.Item
	var problems []string
	_ = a.apply("Import Items", func() error {
		placed, problems = result.Apply(a.board)
		if len(placed) == 0 {
			return fmt.Errorf("no items placed")
		}
		return nil
	})

	msg := fmt.Sprintf("Placed %d of %d imported items.", len(placed), len(result.Items))
	if len(problems) > 0 {
		msg += "\n\nSkipped:\n" + strings.Join(problems, "\n")
	}
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\n%d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}
