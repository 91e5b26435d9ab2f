package engine

import (
	"errors"

	"github.com/piwi3910/GridPlace/internal/model"
)

// Candidate rejection errors. Both are reported before any scanning.
var (
	ErrWidthOutOfBounds  = errors.New("item width out of bounds")
	ErrHeightOutOfBounds = errors.New("item height out of bounds")
)

// Invariant violations in the committed item collection.
var (
	ErrInvalidGrid   = errors.New("invalid grid size")
	ErrInvalidItem   = errors.New("invalid item")
	ErrItemOutOfGrid = errors.New("item lies outside the grid")
	ErrItemsOverlap  = errors.New("items overlap")
)

// ErrArrangeIncomplete is returned when an arrangement could not re-place
// every item; the board is left unchanged.
var ErrArrangeIncomplete = errors.New("arrangement left items unplaced")

// FieldErrorFor maps a candidate rejection to the item form field it
// concerns. Any other error yields nil.
func FieldErrorFor(err error) *model.FieldError {
	switch {
	case errors.Is(err, ErrWidthOutOfBounds):
		return &model.FieldError{Field: model.FieldItemWidth, Message: "Out of bounds width!"}
	case errors.Is(err, ErrHeightOutOfBounds):
		return &model.FieldError{Field: model.FieldItemHeight, Message: "Out of bounds height!"}
	default:
		return nil
	}
}
