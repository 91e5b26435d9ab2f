package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/GridPlace/internal/model"
)

// DefaultPresetsPath returns the default file path for item presets,
// ~/.gridplace/presets.json.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SavePresets writes the preset catalog to the specified JSON file.
func SavePresets(path string, catalog model.PresetCatalog) error {
	return writeJSON(path, catalog)
}

// LoadPresets reads the preset catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadPresets(path string) (model.PresetCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			catalog := model.DefaultPresetCatalog()
			if saveErr := SavePresets(path, catalog); saveErr != nil {
				return catalog, saveErr
			}
			return catalog, nil
		}
		return model.PresetCatalog{}, err
	}
	var catalog model.PresetCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return model.PresetCatalog{}, err
	}
	if catalog.Presets == nil {
		catalog.Presets = []model.ItemPreset{}
	}
	return catalog, nil
}

// ImportPresets merges presets from a user-specified JSON file into
// existing. Presets whose IDs are already present are skipped.
func ImportPresets(path string, existing model.PresetCatalog) (model.PresetCatalog, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, 0, err
	}
	var imported model.PresetCatalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, 0, err
	}
	added := existing.Merge(imported)
	return existing, added, nil
}
