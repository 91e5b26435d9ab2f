package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/GridPlace/internal/engine"
	"github.com/piwi3910/GridPlace/internal/model"
)

// showArrangeDialog compares the arrangement strategies on the current
// items and lets the user apply one of them.
func (a *App) showArrangeDialog() {
	l := a.board.Layout()
	if len(l.Items) < 2 {
		dialog.ShowInformation("Rearrange Items", "Place at least two items to rearrange them.", a.window)
		return
	}

	results := engine.CompareStrategies(l.Grid, l.Items, engine.Strategies())
	best := engine.BestComparison(results)

	table := container.NewVBox(container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Strategy", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Rows Used", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Grid", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Fill", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	), widget.NewSeparator())

	var d dialog.Dialog
	for i, r := range results {
		result := r
		name := result.Arrangement.Strategy.String()
		if i == best {
			name += " (best)"
		}
		applyBtn := widget.NewButtonWithIcon("Apply", theme.ConfirmIcon(), func() {
			a.applyArrangement(result.Arrangement, l.Name)
			d.Hide()
		})
		if result.UnplacedCount > 0 {
			applyBtn.Disable()
		}
		if i == best {
			applyBtn.Importance = widget.HighImportance
		}
		table.Add(container.NewGridWithColumns(5,
			widget.NewLabel(name),
			widget.NewLabel(fmt.Sprintf("%d of %d", result.Extent, l.Grid.Height)),
			widget.NewLabel(result.Arrangement.Grid.String()),
			widget.NewLabel(fmt.Sprintf("%.1f%%", result.FillPercent)),
			applyBtn,
		))
	}

	d = dialog.NewCustom("Rearrange Items", "Close", container.NewVScroll(table), a.window)
	d.Resize(fyne.NewSize(640, 360))
	d.Show()
}

func (a *App) applyArrangement(arr engine.Arrangement, name string) {
	l := model.Layout{Name: name, Grid: arr.Grid, Items: arr.Items}
	if err := a.apply("Rearrange", func() error { return a.board.Restore(l) }); err != nil {
		dialog.ShowError(fmt.Errorf("cannot apply %s: %w", arr.Strategy, err), a.window)
		return
	}
	a.logger.Info("arrangement applied", "strategy", string(arr.Strategy), "extent", arr.Extent())
}
