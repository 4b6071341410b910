package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is returned when input rows do not form a rectangle.
var ErrInvalidShape = errors.New("invalid grid shape")

// ShapeError reports the first row whose length breaks rectangularity.
type ShapeError struct {
	Row  int // offending row index
	Want int // expected length (length of row 0)
	Got  int // actual length
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid grid shape: row %d has %d columns, expected %d", e.Row, e.Got, e.Want)
}

// Unwrap lets callers match the sentinel with errors.Is.
func (e *ShapeError) Unwrap() error { return ErrInvalidShape }
