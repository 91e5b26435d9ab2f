package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GridPlace/internal/model"
)

func TestDefaultPresetsPath(t *testing.T) {
	path := DefaultPresetsPath()
	assert.Equal(t, "presets.json", filepath.Base(path))
	assert.Equal(t, ".gridplace", filepath.Base(filepath.Dir(path)))
}

func TestLoadPresetsCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")

	catalog, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Equal(t, len(model.DefaultPresetCatalog().Presets), len(catalog.Presets))

	_, err = os.Stat(path)
	assert.NoError(t, err, "defaults are written on first load")
}

func TestSaveAndLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	catalog := model.PresetCatalog{Presets: []model.ItemPreset{model.NewItemPreset("Box", 2, 3)}}
	require.NoError(t, SavePresets(path, catalog))

	loaded, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Equal(t, catalog, loaded)
}

func TestImportPresets(t *testing.T) {
	existing := model.PresetCatalog{Presets: []model.ItemPreset{{ID: "a", Name: "A", Width: 1, Height: 1}}}
	incoming := model.PresetCatalog{Presets: []model.ItemPreset{
		{ID: "a", Name: "A", Width: 1, Height: 1},
		{ID: "b", Name: "B", Width: 2, Height: 1},
	}}
	data, err := json.Marshal(incoming)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	merged, added, err := ImportPresets(path, existing)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"A", "B"}, merged.Names())

	_, _, err = ImportPresets(filepath.Join(t.TempDir(), "missing.json"), existing)
	assert.Error(t, err)
}
