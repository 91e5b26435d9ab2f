package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GridPlace/internal/engine"
	"github.com/piwi3910/GridPlace/internal/model"
)

func TestParseDimension(t *testing.T) {
	assert.Equal(t, 12, parseDimension("12"))
	assert.Equal(t, 6, parseDimension(" 6 "))
	assert.Equal(t, 0, parseDimension(""))
	assert.Equal(t, 0, parseDimension("abc"))
	assert.Equal(t, 0, parseDimension("1.5"))
	assert.Equal(t, -3, parseDimension("-3"))
}

func TestGridFromForm(t *testing.T) {
	limits := model.DefaultGridLimits()

	grid, fe := gridFromForm("12", "6", limits)
	assert.Nil(t, fe)
	assert.Equal(t, model.GridSize{Width: 12, Height: 6}, grid)

	_, fe = gridFromForm("19", "7", limits)
	if assert.NotNil(t, fe) {
		assert.Equal(t, model.FieldGridWidth, fe.Field, "width is checked first")
		assert.Equal(t, "Max width is 18!", fe.Message)
	}

	_, fe = gridFromForm("4", "", limits)
	if assert.NotNil(t, fe) {
		assert.Equal(t, model.FieldGridHeight, fe.Field)
		assert.Equal(t, "Max height is 6!", fe.Message)
	}
}

func TestSizeFromForm(t *testing.T) {
	assert.Equal(t, model.Size{Width: 3, Height: 2}, sizeFromForm("3", "2"))
	assert.Equal(t, model.Size{Width: 0, Height: 2}, sizeFromForm("x", "2"))
}

func TestItemFormErrors(t *testing.T) {
	assert.Nil(t, itemFormErrors(nil))
	assert.Equal(t, map[string]string{model.FieldItemWidth: "Out of bounds width!"},
		itemFormErrors(engine.ErrWidthOutOfBounds))
	assert.Equal(t, map[string]string{model.FieldItemHeight: "Out of bounds height!"},
		itemFormErrors(engine.ErrHeightOutOfBounds))
	assert.Equal(t, map[string]string{"": "boom"}, itemFormErrors(errors.New("boom")))
}

func TestSettingsFromForm(t *testing.T) {
	base := model.DefaultAppConfig()
	base.RecentLayouts = []string{"a.gridplace"}

	cfg, err := settingsFromForm(base, "20", "8", "24", "10", ThemeDark)
	assert.NoError(t, err)
	assert.Equal(t, model.GridSize{Width: 20, Height: 8}, cfg.GridSize())
	assert.Equal(t, model.GridLimits{MaxWidth: 24, MaxHeight: 10}, cfg.GridLimits())
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, []string{"a.gridplace"}, cfg.RecentLayouts)

	_, err = settingsFromForm(base, "12", "6", "0", "6", ThemeSystem)
	assert.Error(t, err)

	_, err = settingsFromForm(base, "20", "6", "18", "6", ThemeSystem)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Max width is 18!")
	}
}

func TestRemoveFromBoard(t *testing.T) {
	b, err := engine.NewBoard(model.GridSize{Width: 12, Height: 6})
	require.NoError(t, err)
	it, err := b.AddItem("Lamp", model.Size{Width: 2, Height: 3})
	require.NoError(t, err)

	require.NoError(t, removeFromBoard(b, it))
	assert.Empty(t, b.Items())

	err = removeFromBoard(b, it)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Lamp" is no longer on the grid`)
}
