package widgets

import (
	"testing"

	"fyne.io/fyne/v2"

	"github.com/piwi3910/GridPlace/internal/model"
)

func testLayout() model.Layout {
	return model.Layout{
		Name: "Desk",
		Grid: model.GridSize{Width: 12, Height: 6},
		Items: []model.Item{
			{ID: "a", Label: "Shelf", Width: 6, Height: 2, X: 0, Y: 0},
			{ID: "b", Label: "Lamp", Width: 2, Height: 3, X: 6, Y: 0},
		},
	}
}

func TestCellAt(t *testing.T) {
	gc := NewGridCanvas(testLayout(), 20)

	tests := []struct {
		pos    fyne.Position
		want   model.Position
		wantOK bool
	}{
		{fyne.NewPos(0, 0), model.Position{X: 0, Y: 0}, true},
		{fyne.NewPos(39.5, 21), model.Position{X: 1, Y: 1}, true},
		{fyne.NewPos(239, 119), model.Position{X: 11, Y: 5}, true},
		{fyne.NewPos(240, 10), model.Position{}, false},
		{fyne.NewPos(10, 120), model.Position{}, false},
		{fyne.NewPos(-1, 10), model.Position{}, false},
	}
	for _, tt := range tests {
		got, ok := gc.CellAt(tt.pos)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("CellAt(%v) = %v, %v; want %v, %v", tt.pos, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestItemAt(t *testing.T) {
	gc := NewGridCanvas(testLayout(), 20)

	if it, ok := gc.ItemAt(model.Position{X: 5, Y: 1}); !ok || it.ID != "a" {
		t.Errorf("expected shelf at 5, 1, got %v %v", it.ID, ok)
	}
	if it, ok := gc.ItemAt(model.Position{X: 7, Y: 2}); !ok || it.ID != "b" {
		t.Errorf("expected lamp at 7, 2, got %v %v", it.ID, ok)
	}
	if _, ok := gc.ItemAt(model.Position{X: 0, Y: 2}); ok {
		t.Error("expected no item at 0, 2")
	}
}

func TestTappedReportsItem(t *testing.T) {
	gc := NewGridCanvas(testLayout(), 20)

	var tapped []string
	gc.OnItemTapped = func(it model.Item) { tapped = append(tapped, it.ID) }

	gc.Tapped(&fyne.PointEvent{Position: fyne.NewPos(130, 50)})
	gc.Tapped(&fyne.PointEvent{Position: fyne.NewPos(10, 100)})

	if len(tapped) != 1 || tapped[0] != "b" {
		t.Errorf("expected a single tap on b, got %v", tapped)
	}
}
