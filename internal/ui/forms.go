package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/GridPlace/internal/engine"
	"github.com/piwi3910/GridPlace/internal/model"
)

// parseDimension reads a cell count from a form field. Blank or malformed
// input reads as 0 so that it fails the same bounds checks as 0.
func parseDimension(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return n
}

// gridFromForm validates the grid form fields.
func gridFromForm(widthText, heightText string, limits model.GridLimits) (model.GridSize, *model.FieldError) {
	grid := model.GridSize{Width: parseDimension(widthText), Height: parseDimension(heightText)}
	if fe := model.ValidateGridSize(grid, limits); fe != nil {
		return model.GridSize{}, fe
	}
	return grid, nil
}

// sizeFromForm reads the item form fields. Bounds are checked by the board.
func sizeFromForm(widthText, heightText string) model.Size {
	return model.Size{Width: parseDimension(widthText), Height: parseDimension(heightText)}
}

// itemFormErrors maps an add-item failure to per-field messages. Errors
// that do not concern a field are returned under the empty key.
func itemFormErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	if fe := engine.FieldErrorFor(err); fe != nil {
		return model.FieldErrors(fe)
	}
	return map[string]string{"": err.Error()}
}

// settingsFromForm applies the settings form to cfg. The limits must be
// positive and the default grid must fit inside them.
func settingsFromForm(cfg model.AppConfig, gridWidth, gridHeight, maxWidth, maxHeight, themeName string) (model.AppConfig, error) {
	limits := model.GridLimits{MaxWidth: parseDimension(maxWidth), MaxHeight: parseDimension(maxHeight)}
	if limits.MaxWidth <= 0 || limits.MaxHeight <= 0 {
		return cfg, fmt.Errorf("max width and max height must be whole numbers above 0")
	}
	grid, fe := gridFromForm(gridWidth, gridHeight, limits)
	if fe != nil {
		return cfg, fmt.Errorf("default grid: %s", fe.Message)
	}

	cfg.DefaultGridWidth = grid.Width
	cfg.DefaultGridHeight = grid.Height
	cfg.MaxGridWidth = limits.MaxWidth
	cfg.MaxGridHeight = limits.MaxHeight
	cfg.Theme = themeName
	return cfg, nil
}

// removeFromBoard removes item from b, failing when it was already removed.
func removeFromBoard(b *engine.Board, item model.Item) error {
	if !b.Remove(item.ID) {
		return fmt.Errorf("item %q is no longer on the grid", item.Label)
	}
	return nil
}
