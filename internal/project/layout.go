// Package project handles saving and loading of layouts, application
// configuration and backups.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/GridPlace/internal/model"
)

// LayoutExtension is the extension used for layout files saved from the UI.
const LayoutExtension = ".gridplace"

// Format identifies the encoding of a layout file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the encoding from the file extension. Everything that
// is not .yaml or .yml is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// SaveLayout writes a layout to path, encoded according to its extension.
func SaveLayout(path string, layout model.Layout) error {
	var (
		data []byte
		err  error
	)
	switch FormatForPath(path) {
	case FormatYAML:
		data, err = yaml.Marshal(layout)
	default:
		data, err = json.MarshalIndent(layout, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return nil
}

// LoadLayout reads a layout from path. The result is not validated against
// the engine; the caller restores it into a board which does that.
func LoadLayout(path string) (model.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}

	var layout model.Layout
	switch FormatForPath(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &layout)
	default:
		err = json.Unmarshal(data, &layout)
	}
	if err != nil {
		return model.Layout{}, fmt.Errorf("failed to parse layout file: %w", err)
	}

	if layout.Items == nil {
		layout.Items = []model.Item{}
	}
	if layout.Name == "" {
		layout.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return layout, nil
}
