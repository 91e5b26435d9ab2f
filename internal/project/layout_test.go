package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GridPlace/internal/model"
)

func sampleLayout() model.Layout {
	return model.Layout{
		Name: "Desk",
		Grid: model.GridSize{Width: 12, Height: 12},
		Items: []model.Item{
			{ID: "i1", Label: "Monitor", Width: 12, Height: 6, X: 0, Y: 0},
			{ID: "i2", Label: "Lamp", Width: 2, Height: 3, X: 0, Y: 6},
		},
	}
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("a.gridplace"))
	assert.Equal(t, FormatJSON, FormatForPath("a.json"))
	assert.Equal(t, FormatJSON, FormatForPath("noext"))
	assert.Equal(t, FormatYAML, FormatForPath("a.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("A.YML"))
}

func TestSaveAndLoadLayout(t *testing.T) {
	for _, name := range []string{"desk.gridplace", "desk.json", "desk.yaml", "desk.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveLayout(path, sampleLayout()))

			loaded, err := LoadLayout(path)
			require.NoError(t, err)
			assert.Equal(t, sampleLayout(), loaded)
		})
	}
}

func TestSaveLayoutYAMLIsReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desk.yaml")
	require.NoError(t, SaveLayout(path, sampleLayout()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Desk")
	assert.Contains(t, string(data), "label: Monitor")
}

func TestLoadLayoutHandWrittenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.yml")
	data := []byte(`grid:
  width: 12
  height: 6
items:
  - width: 6
    height: 2
    x: 0
    y: 0
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, "shelf", loaded.Name, "name defaults to the file name")
	assert.Equal(t, model.GridSize{Width: 12, Height: 6}, loaded.Grid)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 6, loaded.Items[0].Width)
}

func TestLoadLayoutNilItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gridplace")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"e","grid":{"width":4,"height":4},"items":null}`), 0644))

	loaded, err := LoadLayout(path)
	require.NoError(t, err)
	assert.NotNil(t, loaded.Items)
}

func TestLoadLayoutErrors(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "missing.gridplace"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.gridplace")
	require.NoError(t, os.WriteFile(bad, []byte("{{{"), 0644))
	_, err = LoadLayout(bad)
	assert.Error(t, err)

	badYAML := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("grid: [1, 2"), 0644))
	_, err = LoadLayout(badYAML)
	assert.Error(t, err)
}

func TestSaveLayoutCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "layout.gridplace")
	require.NoError(t, SaveLayout(path, model.NewLayout()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
