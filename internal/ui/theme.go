package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme names stored in the application config.
const (
	ThemeSystem = ""
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// GridPlaceTheme wraps the default Fyne theme with compact sizing overrides
// and an optional fixed light or dark variant.
type GridPlaceTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	fixed   bool
}

// NewGridPlaceTheme creates a theme that follows the system variant.
func NewGridPlaceTheme() *GridPlaceTheme {
	return &GridPlaceTheme{base: theme.DefaultTheme()}
}

// ThemeFromName returns the theme for a config value, falling back to the
// system variant for unknown names.
func ThemeFromName(name string) *GridPlaceTheme {
	t := NewGridPlaceTheme()
	switch name {
	case ThemeLight:
		t.SetVariant(theme.VariantLight)
	case ThemeDark:
		t.SetVariant(theme.VariantDark)
	}
	return t
}

// SetVariant pins the theme to a light or dark variant.
func (t *GridPlaceTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
	t.fixed = true
}

// Color delegates to the base theme, using the pinned variant if set.
func (t *GridPlaceTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.fixed {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

func (t *GridPlaceTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *GridPlaceTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense layout.
func (t *GridPlaceTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.base.Size(name)
	}
}
