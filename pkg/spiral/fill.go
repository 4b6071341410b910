package spiral

import "github.com/aretw0/gridwalk/pkg/grid"

// Fill builds the rows x cols grid whose spiral order is 1..rows*cols.
// It is the inverse of Order: Order(Fill(m, n)) == [1, 2, ..., m*n].
// Non-positive dimensions yield an empty grid.
func Fill(rows, cols int, opts ...Option) *grid.Grid[int] {
	if rows <= 0 || cols <= 0 {
		return grid.MustNew[int](nil)
	}

	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
	}
	for k, p := range Positions(rows, cols, opts...) {
		cells[p.Row][p.Col] = k + 1
	}

	// Cells are rectangular by construction.
	return grid.MustNew(cells)
}
