package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItem(t *testing.T) {
	it := NewItem("Box", Size{Width: 3, Height: 2}, Position{X: 4, Y: 1})

	assert.Len(t, it.ID, 8)
	assert.Equal(t, "Box", it.Label)
	assert.Equal(t, Size{Width: 3, Height: 2}, it.Size())
	assert.Equal(t, Position{X: 4, Y: 1}, it.Position())
	assert.Equal(t, 3, it.Bottom())
	assert.Equal(t, 6, it.Area())
	assert.Equal(t, "4, 1", it.PositionLabel())
}

func TestNewItemUniqueIDs(t *testing.T) {
	a := NewItem("", Size{Width: 1, Height: 1}, Position{})
	b := NewItem("", Size{Width: 1, Height: 1}, Position{})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestItemOverlaps(t *testing.T) {
	a := Item{Width: 6, Height: 2, X: 0, Y: 0}

	tests := []struct {
		name  string
		other Item
		want  bool
	}{
		{"adjacent right", Item{Width: 5, Height: 2, X: 6, Y: 0}, false},
		{"adjacent below", Item{Width: 12, Height: 1, X: 0, Y: 2}, false},
		{"shares a cell", Item{Width: 1, Height: 1, X: 5, Y: 1}, true},
		{"contains", Item{Width: 12, Height: 6, X: 0, Y: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(a))
		})
	}
}

func TestLayoutFill(t *testing.T) {
	l := NewLayout()
	assert.Equal(t, DefaultGridSize(), l.Grid)
	assert.Equal(t, 0.0, l.Fill())

	l.Items = []Item{
		{Width: 6, Height: 2},
		{Width: 6, Height: 4, X: 6},
	}
	assert.Equal(t, 36, l.UsedCells())
	assert.InDelta(t, 50.0, l.Fill(), 0.001)

	assert.Equal(t, 0.0, Layout{}.Fill())
}

func TestGridSizeString(t *testing.T) {
	assert.Equal(t, "12x6", GridSize{Width: 12, Height: 6}.String())
	assert.Equal(t, 72, GridSize{Width: 12, Height: 6}.Cells())
}

func TestParseGridSize(t *testing.T) {
	tests := []struct {
		in      string
		want    GridSize
		wantErr bool
	}{
		{"12x6", GridSize{Width: 12, Height: 6}, false},
		{" 4 X 3 ", GridSize{Width: 4, Height: 3}, false},
		{"18x0", GridSize{Width: 18, Height: 0}, false},
		{"12", GridSize{}, true},
		{"ax6", GridSize{}, true},
		{"12x", GridSize{}, true},
	}
	for _, tt := range tests {
		got, err := ParseGridSize(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestValidateGridSize(t *testing.T) {
	limits := DefaultGridLimits()

	tests := []struct {
		name    string
		grid    GridSize
		field   string
		message string
	}{
		{"default grid", GridSize{Width: 12, Height: 6}, "", ""},
		{"at limits", GridSize{Width: 18, Height: 6}, "", ""},
		{"width too large", GridSize{Width: 23, Height: 6}, FieldGridWidth, "Max width is 18!"},
		{"zero width", GridSize{Width: 0, Height: 6}, FieldGridWidth, "Max width is 18!"},
		{"height too large", GridSize{Width: 12, Height: 8}, FieldGridHeight, "Max height is 6!"},
		{"negative height", GridSize{Width: 12, Height: -1}, FieldGridHeight, "Max height is 6!"},
		{"both invalid reports width", GridSize{Width: 30, Height: 30}, FieldGridWidth, "Max width is 18!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := ValidateGridSize(tt.grid, limits)
			if tt.field == "" {
				assert.Nil(t, fe)
				return
			}
			if assert.NotNil(t, fe) {
				assert.Equal(t, tt.field, fe.Field)
				assert.Equal(t, tt.message, fe.Message)
			}
		})
	}
}

func TestFieldErrors(t *testing.T) {
	assert.Empty(t, FieldErrors(nil))

	fe := &FieldError{Field: FieldItemWidth, Message: "Out of bounds width!"}
	assert.Equal(t, map[string]string{"itemWidth": "Out of bounds width!"}, FieldErrors(fe))
	assert.Equal(t, "itemWidth: Out of bounds width!", fe.Error())
}

func TestItemColorCycles(t *testing.T) {
	n := PaletteSize()
	assert.Equal(t, ItemColor(0), ItemColor(n))
	assert.Equal(t, ItemColor(1), ItemColor(n+1))
	assert.NotEqual(t, ItemColor(0), ItemColor(1))
	assert.Equal(t, ItemColor(3), ItemColor(-3))
}
