package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/GridPlace/internal/model"
	"github.com/piwi3910/GridPlace/internal/project"
)

// LoadLibrary reads the item presets and layout templates the app offers.
// A missing or unreadable file leaves the defaults in place.
func (a *App) LoadLibrary(presetsPath, templatesPath string) {
	a.presetsPath = presetsPath
	a.templatesPath = templatesPath

	presets, err := project.LoadPresets(presetsPath)
	if err != nil {
		a.logger.Warn("could not load item presets", "path", presetsPath, "error", err)
		presets = model.DefaultPresetCatalog()
	}
	a.presets = presets

	templates, err := project.LoadTemplates(templatesPath)
	if err != nil {
		a.logger.Warn("could not load layout templates", "path", templatesPath, "error", err)
		templates = model.NewTemplateStore()
	}
	a.templates = templates
}

// ─── Preset Selector ───────────────────────────────────────

// buildPresetSelector returns a select that fills the item form from a preset.
func (a *App) buildPresetSelector() fyne.CanvasObject {
	a.presetSelect = widget.NewSelect(a.presets.Names(), func(selected string) {
		p := a.presets.FindByName(selected)
		if p == nil {
			return
		}
		a.entries[model.FieldItemWidth].SetText(fmt.Sprint(p.Width))
		a.entries[model.FieldItemHeight].SetText(fmt.Sprint(p.Height))
		if strings.TrimSpace(a.itemLabel.Text) == "" {
			a.itemLabel.SetPlaceHolder(p.Name)
		}
	})
	a.presetSelect.PlaceHolder = "Choose a preset..."

	manageBtn := newButtonWithTooltip("", theme.SettingsIcon(), "Manage item presets", func() {
		a.showPresetsDialog()
	})
	return container.NewBorder(nil, nil, nil, manageBtn, a.presetSelect)
}

func (a *App) refreshPresetSelector() {
	if a.presetSelect == nil {
		return
	}
	a.presetSelect.Options = a.presets.Names()
	a.presetSelect.ClearSelected()
	a.presetSelect.Refresh()
}

// ─── Presets Dialog ────────────────────────────────────────

func (a *App) showPresetsDialog() {
	presetList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		presetList.RemoveAll()

		if len(a.presets.Presets) == 0 {
			presetList.Add(widget.NewLabel("No item presets defined."))
			return
		}

		header := container.NewGridWithColumns(4,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Width", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Height", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		)
		presetList.Add(header)
		presetList.Add(widget.NewSeparator())

		for _, p := range a.presets.Presets {
			preset := p
			row := container.NewGridWithColumns(4,
				widget.NewLabel(preset.Name),
				widget.NewLabel(fmt.Sprintf("%d cells", preset.Width)),
				widget.NewLabel(fmt.Sprintf("%d cells", preset.Height)),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.presets.Remove(preset.ID)
					a.savePresets()
					refreshList()
				}),
			)
			presetList.Add(row)
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Preset", theme.ContentAddIcon(), func() {
		a.showAddPresetDialog(refreshList)
	})
	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importPresets(refreshList)
	})
	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		a.exportPresets()
	})

	toolbar := container.NewHBox(addBtn, layout.NewSpacer(), importBtn, exportBtn)
	content := container.NewBorder(toolbar, nil, nil, nil, container.NewVScroll(presetList))

	d := dialog.NewCustom("Item Presets", "Close", content, a.window)
	d.SetOnClosed(a.refreshPresetSelector)
	d.Resize(fyne.NewSize(520, 420))
	d.Show()
}

func (a *App) showAddPresetDialog(onDone func()) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Preset name")

	widthEntry := widget.NewEntry()
	widthEntry.SetText(a.entries[model.FieldItemWidth].Text)

	heightEntry := widget.NewEntry()
	heightEntry.SetText(a.entries[model.FieldItemHeight].Text)

	form := dialog.NewForm("Add Item Preset", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width (cells)", widthEntry),
			widget.NewFormItem("Height (cells)", heightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			size := sizeFromForm(widthEntry.Text, heightEntry.Text)
			if size.Width <= 0 || size.Height <= 0 {
				dialog.ShowError(fmt.Errorf("width and height must be whole numbers above 0"), a.window)
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				name = fmt.Sprintf("%dx%d", size.Width, size.Height)
			}
			a.presets.Add(model.NewItemPreset(name, size.Width, size.Height))
			a.savePresets()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(360, 260))
	form.Show()
}

func (a *App) importPresets(onDone func()) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		merged, added, err := project.ImportPresets(path, a.presets)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.presets = merged
		a.savePresets()
		onDone()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Added %d presets. The catalog now holds %d.", added, len(a.presets.Presets)),
			a.window)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

func (a *App) exportPresets() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := project.SavePresets(path, a.presets); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", "Presets exported to "+path, a.window)
	}, a.window)
	d.SetFileName("presets.json")
	d.Show()
}

// savePresets persists the preset catalog to disk.
func (a *App) savePresets() {
	if a.presetsPath == "" {
		return
	}
	if err := project.SavePresets(a.presetsPath, a.presets); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save presets: %w", err), a.window)
	}
}

// ─── Layout Templates ──────────────────────────────────────

func (a *App) saveAsTemplate() {
	l := a.board.Layout()

	nameEntry := widget.NewEntry()
	nameEntry.SetText(l.Name)
	descEntry := widget.NewMultiLineEntry()
	descEntry.SetPlaceHolder("Optional description")

	form := dialog.NewForm("Save as Template", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				dialog.ShowError(fmt.Errorf("template name is required"), a.window)
				return
			}
			if existing := a.templates.FindByName(name); existing != nil {
				a.templates.Remove(existing.ID)
			}
			a.templates.Add(model.NewLayoutTemplate(name, descEntry.Text, l))
			if a.templatesPath != "" {
				if err := project.SaveTemplates(a.templatesPath, a.templates); err != nil {
					dialog.ShowError(fmt.Errorf("failed to save templates: %w", err), a.window)
					return
				}
			}
			a.logger.Info("template saved", "name", name, "items", len(l.Items))
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 260))
	form.Show()
}

func (a *App) newFromTemplate() {
	names := a.templates.Names()
	if len(names) == 0 {
		dialog.ShowInformation("No Templates", "Save a layout as a template first.", a.window)
		return
	}

	templateSelect := widget.NewSelect(names, nil)
	templateSelect.SetSelected(names[0])
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Layout name")

	form := dialog.NewForm("New from Template", "Create", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Template", templateSelect),
			widget.NewFormItem("Name", nameEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			t := a.templates.FindByName(templateSelect.Selected)
			if t == nil {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				name = t.Name
			}
			l := t.ToLayout(name)
			if err := a.apply("New from Template", func() error { return a.board.Restore(l) }); err != nil {
				dialog.ShowError(fmt.Errorf("cannot use template %q: %w", t.Name, err), a.window)
				return
			}
			a.layoutPath = ""
			a.entries[model.FieldGridWidth].SetText(fmt.Sprint(l.Grid.Width))
			a.entries[model.FieldGridHeight].SetText(fmt.Sprint(l.Grid.Height))
			a.tabs.SelectIndex(itemTabIndex)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 220))
	form.Show()
}
