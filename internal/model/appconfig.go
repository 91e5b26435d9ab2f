package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Grid a new layout starts with
	DefaultGridWidth  int `json:"default_grid_width"`
	DefaultGridHeight int `json:"default_grid_height"`

	// Upper bounds enforced by the grid form
	MaxGridWidth  int `json:"max_grid_width"`
	MaxGridHeight int `json:"max_grid_height"`

	// Application preferences
	RecentLayouts []string `json:"recent_layouts"`
	Theme         string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching DefaultGridSize() and DefaultGridLimits().
func DefaultAppConfig() AppConfig {
	grid := DefaultGridSize()
	limits := DefaultGridLimits()
	return AppConfig{
		DefaultGridWidth:  grid.Width,
		DefaultGridHeight: grid.Height,
		MaxGridWidth:      limits.MaxWidth,
		MaxGridHeight:     limits.MaxHeight,
		RecentLayouts:     []string{},
		Theme:             "system",
	}
}

// GridLimits returns the configured form limits, falling back to the
// defaults for unset values.
func (c AppConfig) GridLimits() GridLimits {
	limits := DefaultGridLimits()
	if c.MaxGridWidth > 0 {
		limits.MaxWidth = c.MaxGridWidth
	}
	if c.MaxGridHeight > 0 {
		limits.MaxHeight = c.MaxGridHeight
	}
	return limits
}

// GridSize returns the configured starting grid.
// Values outside the limits are replaced by the defaults.
func (c AppConfig) GridSize() GridSize {
	grid := GridSize{Width: c.DefaultGridWidth, Height: c.DefaultGridHeight}
	if ValidateGridSize(grid, c.GridLimits()) != nil {
		return DefaultGridSize()
	}
	return grid
}

// maxRecentLayouts caps the recent list shown in the File menu.
const maxRecentLayouts = 10

// AddRecentLayout moves path to the front of the recent list.
func (c *AppConfig) AddRecentLayout(path string) {
	recent := []string{path}
	for _, p := range c.RecentLayouts {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentLayouts {
		recent = recent[:maxRecentLayouts]
	}
	c.RecentLayouts = recent
}
