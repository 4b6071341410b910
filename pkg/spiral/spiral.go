// Package spiral implements concentric-ring traversal of rectangular grids.
//
// The walk starts at the top-left corner and consumes the grid ring by ring,
// clockwise by default, until every cell has been visited exactly once. All
// functions are pure and unconditionally terminating in O(rows*cols).
package spiral

import "github.com/aretw0/gridwalk/pkg/grid"

type config struct {
	counterClockwise bool
}

// Option configures a traversal.
type Option func(*config)

// CounterClockwise mirrors the walk: from the top-left corner the first pass
// runs down the left edge instead of along the top row.
func CounterClockwise() Option {
	return func(c *config) { c.counterClockwise = true }
}

// Positions returns the cell coordinates of a spiral walk over a rows x cols
// grid, in visitation order. Non-positive dimensions yield nil.
func Positions(rows, cols int, opts ...Option) []grid.Pos {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]grid.Pos, 0, rows*cols)
	top, bottom, left, right := 0, rows-1, 0, cols-1

	if cfg.counterClockwise {
		for top <= bottom && left <= right {
			for r := top; r <= bottom; r++ {
				out = append(out, grid.Pos{Row: r, Col: left})
			}
			left++
			for c := left; c <= right; c++ {
				out = append(out, grid.Pos{Row: bottom, Col: c})
			}
			bottom--
			// The remaining ring may have collapsed to a single column or
			// row; the guards stop those cells being emitted twice.
			if left <= right {
				for r := bottom; r >= top; r-- {
					out = append(out, grid.Pos{Row: r, Col: right})
				}
				right--
			}
			if top <= bottom {
				for c := right; c >= left; c-- {
					out = append(out, grid.Pos{Row: top, Col: c})
				}
				top++
			}
		}
		return out
	}

	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			out = append(out, grid.Pos{Row: top, Col: c})
		}
		top++
		for r := top; r <= bottom; r++ {
			out = append(out, grid.Pos{Row: r, Col: right})
		}
		right--
		if top <= bottom {
			for c := right; c >= left; c-- {
				out = append(out, grid.Pos{Row: bottom, Col: c})
			}
			bottom--
		}
		if left <= right {
			for r := bottom; r >= top; r-- {
				out = append(out, grid.Pos{Row: r, Col: left})
			}
			left++
		}
	}
	return out
}

// Order returns the grid's values in spiral visitation order.
// The result always has length Rows()*Cols() and is a permutation of the
// grid's values; an empty grid yields an empty result.
func Order[T any](g *grid.Grid[T], opts ...Option) []T {
	out := make([]T, 0, g.Rows()*g.Cols())
	for _, p := range Positions(g.Rows(), g.Cols(), opts...) {
		out = append(out, g.At(p.Row, p.Col))
	}
	return out
}

// Rings splits the grid into its concentric rings, outermost first.
// Each ring is reported in clockwise order starting at its top-left cell.
func Rings[T any](g *grid.Grid[T]) [][]T {
	if g.IsEmpty() {
		return nil
	}

	var rings [][]T
	top, bottom, left, right := 0, g.Rows()-1, 0, g.Cols()-1

	for top <= bottom && left <= right {
		var ring []T
		for c := left; c <= right; c++ {
			ring = append(ring, g.At(top, c))
		}
		for r := top + 1; r <= bottom; r++ {
			ring = append(ring, g.At(r, right))
		}
		if top < bottom {
			for c := right - 1; c >= left; c-- {
				ring = append(ring, g.At(bottom, c))
			}
		}
		if left < right {
			for r := bottom - 1; r > top; r-- {
				ring = append(ring, g.At(r, left))
			}
		}
		rings = append(rings, ring)
		top++
		bottom--
		left++
		right--
	}
	return rings
}
