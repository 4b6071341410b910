package gridwalk

import (
	"github.com/aretw0/gridwalk/pkg/grid"
	"github.com/aretw0/gridwalk/pkg/spiral"
)

// Version is the library version reported by the CLI and the MCP adapter.
const Version = "0.2.0"

// Traverse validates rows as a rectangular grid and returns its values in
// spiral visitation order (clockwise from the top-left corner by default).
//
// Jagged input is rejected with grid.ErrInvalidShape. An empty input yields
// an empty, non-nil result.
func Traverse[T any](rows [][]T, opts ...spiral.Option) ([]T, error) {
	g, err := grid.New(rows)
	if err != nil {
		return nil, err
	}
	return spiral.Order(g, opts...), nil
}

// Fill returns the rows x cols matrix whose spiral order is 1..rows*cols.
func Fill(rows, cols int, opts ...spiral.Option) [][]int {
	return spiral.Fill(rows, cols, opts...).RowSlices()
}
