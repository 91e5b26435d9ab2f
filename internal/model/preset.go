package model

import "github.com/google/uuid"

// ItemPreset is a named item size the user adds often.
type ItemPreset struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// NewItemPreset creates a new ItemPreset with a generated ID.
func NewItemPreset(name string, width, height int) ItemPreset {
	return ItemPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Height: height,
	}
}

// Size returns the preset dimensions as an item size.
func (p ItemPreset) Size() Size {
	return Size{Width: p.Width, Height: p.Height}
}

// PresetCatalog holds the user's saved item presets.
type PresetCatalog struct {
	Presets []ItemPreset `json:"presets"`
}

// DefaultPresetCatalog returns a catalog populated with common sizes.
func DefaultPresetCatalog() PresetCatalog {
	return PresetCatalog{
		Presets: []ItemPreset{
			NewItemPreset("Small (1x1)", 1, 1),
			NewItemPreset("Wide (2x1)", 2, 1),
			NewItemPreset("Tall (1x2)", 1, 2),
			NewItemPreset("Square (2x2)", 2, 2),
			NewItemPreset("Panel (4x2)", 4, 2),
			NewItemPreset("Half Row (6x1)", 6, 1),
			NewItemPreset("Banner (12x1)", 12, 1),
		},
	}
}

// Add appends a preset, replacing any existing preset with the same name.
func (c *PresetCatalog) Add(p ItemPreset) {
	for i := range c.Presets {
		if c.Presets[i].Name == p.Name {
			c.Presets[i] = p
			return
		}
	}
	c.Presets = append(c.Presets, p)
}

// Remove deletes a preset by ID. Returns true if found and removed.
func (c *PresetCatalog) Remove(id string) bool {
	for i, p := range c.Presets {
		if p.ID == id {
			c.Presets = append(c.Presets[:i], c.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the preset names for UI dropdowns.
func (c *PresetCatalog) Names() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (c *PresetCatalog) FindByName(name string) *ItemPreset {
	for i := range c.Presets {
		if c.Presets[i].Name == name {
			return &c.Presets[i]
		}
	}
	return nil
}

// Merge adds presets from other whose IDs are not already present.
func (c *PresetCatalog) Merge(other PresetCatalog) int {
	ids := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		ids[p.ID] = true
	}
	added := 0
	for _, p := range other.Presets {
		if !ids[p.ID] {
			c.Presets = append(c.Presets, p)
			ids[p.ID] = true
			added++
		}
	}
	return added
}
