package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config
	grid := cfg.GridSize()
	limits := cfg.GridLimits()

	intEntry := func(val int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprint(val))
		return e
	}
	gridWidth := intEntry(grid.Width)
	gridHeight := intEntry(grid.Height)
	maxWidth := intEntry(limits.MaxWidth)
	maxHeight := intEntry(limits.MaxHeight)

	themeNames := []string{"System", "Light", "Dark"}
	themeValues := map[string]string{"System": ThemeSystem, "Light": ThemeLight, "Dark": ThemeDark}
	themeSelect := widget.NewSelect(themeNames, nil)
	themeSelect.SetSelected("System")
	for label, value := range themeValues {
		if value == cfg.Theme {
			themeSelect.SetSelected(label)
		}
	}

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Grid Width", gridWidth),
		widget.NewFormItem("Default Grid Height", gridHeight),
		widget.NewFormItem("Max Grid Width", maxWidth),
		widget.NewFormItem("Max Grid Height", maxHeight),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			updated, err := settingsFromForm(cfg, gridWidth.Text, gridHeight.Text,
				maxWidth.Text, maxHeight.Text, themeValues[themeSelect.Selected])
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.config = updated
			a.board.SetLimits(updated.GridLimits())
			a.app.Settings().SetTheme(ThemeFromName(updated.Theme))
			a.saveConfig()
			a.logger.Info("settings saved", "grid", updated.GridSize().String(), "limits", updated.GridLimits())
		},
		a.window,
	)
	d.Resize(fyne.NewSize(420, 380))
	d.Show()
}
