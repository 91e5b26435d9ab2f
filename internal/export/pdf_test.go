package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/GridPlace/internal/model"
)

func buildTestLayout() model.Layout {
	return model.Layout{
		Name: "Desk",
		Grid: model.GridSize{Width: 12, Height: 12},
		Items: []model.Item{
			{ID: "i1", Label: "Monitor", Width: 12, Height: 5, X: 0, Y: 0},
			{ID: "i2", Label: "Lamp", Width: 2, Height: 3, X: 0, Y: 5},
			{ID: "i3", Label: "Plant", Width: 1, Height: 1, X: 2, Y: 5},
		},
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_output.pdf")

	if err := ExportPDF(path, buildTestLayout()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	if err := ExportPDF(path, model.NewLayout()); err == nil {
		t.Fatal("expected error for layout without items, got nil")
	}
}

func TestExportPDF_InvalidGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.pdf")
	layout := buildTestLayout()
	layout.Grid = model.GridSize{}

	if err := ExportPDF(path, layout); err == nil {
		t.Fatal("expected error for zero grid, got nil")
	}
}

func TestExportPDF_TallGrownGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tall.pdf")

	items := make([]model.Item, 0, 24)
	for i := 0; i < 24; i++ {
		items = append(items, model.Item{
			ID:    fmt.Sprintf("i%d", i),
			Label: fmt.Sprintf("Item %d", i+1),
			Width: 6, Height: 4,
			X: (i % 2) * 6, Y: (i / 2) * 4,
		})
	}
	layout := model.Layout{Name: "Tall", Grid: model.GridSize{Width: 12, Height: 48}, Items: items}

	if err := ExportPDF(path, layout); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("PDF file missing or empty: %v", err)
	}
}

func TestGridScaleFitsDrawingArea(t *testing.T) {
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	for _, grid := range []model.GridSize{{Width: 12, Height: 6}, {Width: 1, Height: 96}, {Width: 18, Height: 1}} {
		s := gridScale(grid)
		if float64(grid.Width)*s > drawWidth+1e-9 || float64(grid.Height)*s > drawHeight+1e-9 {
			t.Errorf("grid %s does not fit with scale %v", grid, s)
		}
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 50, 8},
		{30, 25, 7},
		{10, 15, 6},
	}
	for _, tt := range tests {
		got := labelFontSize(tt.w, tt.h)
		if got != tt.want {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
