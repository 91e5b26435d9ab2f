package model

import "fmt"

// Form field names used when reporting validation errors.
const (
	FieldGridWidth  = "newGridWidth"
	FieldGridHeight = "newGridHeight"
	FieldItemWidth  = "itemWidth"
	FieldItemHeight = "itemHeight"
)

// FieldError ties a validation message to the form field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"error"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// GridLimits bounds the grid size a user may set from the form.
type GridLimits struct {
	MaxWidth  int `json:"max_width"`
	MaxHeight int `json:"max_height"`
}

// DefaultGridLimits keeps the grid small enough to stay readable on screen.
func DefaultGridLimits() GridLimits {
	return GridLimits{MaxWidth: 18, MaxHeight: 6}
}

// ValidateGridSize checks a user-entered grid against the limits.
// Width is checked before height. Returns nil when the grid is acceptable.
func ValidateGridSize(grid GridSize, limits GridLimits) *FieldError {
	if grid.Width <= 0 || grid.Width > limits.MaxWidth {
		return &FieldError{
			Field:   FieldGridWidth,
			Message: fmt.Sprintf("Max width is %d!", limits.MaxWidth),
		}
	}
	if grid.Height <= 0 || grid.Height > limits.MaxHeight {
		return &FieldError{
			Field:   FieldGridHeight,
			Message: fmt.Sprintf("Max height is %d!", limits.MaxHeight),
		}
	}
	return nil
}

// FieldErrors converts a field error into a field -> message record.
// A nil error yields an empty record.
func FieldErrors(fe *FieldError) map[string]string {
	out := map[string]string{}
	if fe != nil {
		out[fe.Field] = fe.Message
	}
	return out
}
