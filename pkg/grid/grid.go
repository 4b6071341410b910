package grid

import "fmt"

// Pos identifies a single cell by row and column index.
type Pos struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Grid is an immutable rectangular 2D sequence of values.
//
// Values are stored in a single row-major backing slice so that cell access
// and row slicing are O(1) without per-row pointer chasing. A Grid is created
// once from caller data and never mutated afterwards; all transforms return
// new grids.
type Grid[T any] struct {
	data []T
	rows int
	cols int
}

// New builds a Grid from a slice of rows, copying the input.
// Rectangularity is validated eagerly: every row must have the same length as
// the first, otherwise a *ShapeError (wrapping ErrInvalidShape) is returned.
// A nil/empty input, or one whose rows are all empty, yields an empty grid.
func New[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return &Grid[T]{}, nil
	}

	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, &ShapeError{Row: i, Want: cols, Got: len(r)}
		}
	}

	if cols == 0 {
		// Degenerate m x 0 grid: keep it indistinguishable from empty.
		return &Grid[T]{}, nil
	}

	g := &Grid[T]{
		data: make([]T, 0, len(rows)*cols),
		rows: len(rows),
		cols: cols,
	}
	for _, r := range rows {
		g.data = append(g.data, r...)
	}
	return g, nil
}

// MustNew is like New but panics on a shape error.
// Intended for literals in tests and examples.
func MustNew[T any](rows [][]T) *Grid[T] {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// IsEmpty reports whether the grid holds no cells.
func (g *Grid[T]) IsEmpty() bool { return g.rows == 0 || g.cols == 0 }

// At returns the value at row r, column c.
// Panics if the position is out of bounds, mirroring slice indexing.
func (g *Grid[T]) At(r, c int) T {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("grid: position (%d,%d) out of bounds %dx%d", r, c, g.rows, g.cols))
	}
	return g.data[r*g.cols+c]
}

// Row returns a copy of row r.
func (g *Grid[T]) Row(r int) []T {
	if r < 0 || r >= g.rows {
		panic(fmt.Sprintf("grid: row %d out of bounds %dx%d", r, g.rows, g.cols))
	}
	out := make([]T, g.cols)
	copy(out, g.data[r*g.cols:(r+1)*g.cols])
	return out
}

// Values returns all cells flattened in row-major order.
func (g *Grid[T]) Values() []T {
	out := make([]T, len(g.data))
	copy(out, g.data)
	return out
}

// RowSlices rebuilds the row-of-rows representation, copying the data.
// Useful for serialization boundaries (JSON/YAML encoders).
func (g *Grid[T]) RowSlices() [][]T {
	out := make([][]T, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = g.Row(r)
	}
	return out
}
