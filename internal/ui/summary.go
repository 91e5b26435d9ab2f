package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/GridPlace/internal/engine"
	"github.com/piwi3910/GridPlace/internal/model"
)

// presetCapacity pairs a preset with how many more copies fit.
type presetCapacity struct {
	Preset   model.ItemPreset
	Capacity engine.Capacity
}

// presetCapacities estimates the remaining room for every preset that is
// not too large for the grid.
func presetCapacities(l model.Layout, presets model.PresetCatalog) []presetCapacity {
	out := make([]presetCapacity, 0, len(presets.Presets))
	for _, p := range presets.Presets {
		c, err := engine.EstimateCapacity(l.Grid, l.Items, p.Size())
		if err != nil {
			continue
		}
		out = append(out, presetCapacity{Preset: p, Capacity: c})
	}
	return out
}

// showSummaryDialog reports fill statistics, free space and how many of
// each preset still fit on the grid.
func (a *App) showSummaryDialog() {
	l := a.board.Layout()
	m, err := engine.BuildOccupancy(l.Grid, l.Items)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	bold := fyne.TextStyle{Bold: true}
	stats := container.NewGridWithColumns(2,
		widget.NewLabel("Grid"), widget.NewLabel(l.Grid.String()),
		widget.NewLabel("Items"), widget.NewLabel(fmt.Sprint(len(l.Items))),
		widget.NewLabel("Used cells"), widget.NewLabel(fmt.Sprintf("%d of %d", m.OccupiedCells(), l.Grid.Cells())),
		widget.NewLabel("Fill"), widget.NewLabel(fmt.Sprintf("%.1f%%", l.Fill())),
	)

	largest := "None"
	if r, ok := engine.LargestFree(m); ok {
		largest = r.String()
	}
	free := container.NewVBox(
		widget.NewLabelWithStyle("Free Space", fyne.TextAlignLeading, bold),
		container.NewGridWithColumns(2, widget.NewLabel("Largest free block"), widget.NewLabel(largest)),
	)
	for _, s := range engine.FreeStrips(l.Grid, l.Items) {
		free.Add(container.NewGridWithColumns(2, widget.NewLabel("Free strip"), widget.NewLabel(s.String())))
	}

	capacity := container.NewVBox(widget.NewLabelWithStyle("Room for Presets", fyne.TextAlignLeading, bold))
	for _, pc := range presetCapacities(l, a.presets) {
		capacity.Add(container.NewGridWithColumns(2,
			widget.NewLabel(pc.Preset.Name),
			widget.NewLabel(fmt.Sprintf("%d more without growing", pc.Capacity.WithoutGrowth)),
		))
	}

	content := container.NewVScroll(container.NewVBox(stats, widget.NewSeparator(), free, widget.NewSeparator(), capacity))
	d := dialog.NewCustom("Layout Summary", "Close", content, a.window)
	d.Resize(fyne.NewSize(480, 520))
	d.Show()
}
