package grid

// Transpose returns a new grid with rows and columns swapped.
func Transpose[T any](g *Grid[T]) *Grid[T] {
	if g.IsEmpty() {
		return &Grid[T]{}
	}
	out := &Grid[T]{
		data: make([]T, len(g.data)),
		rows: g.cols,
		cols: g.rows,
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out.data[c*out.cols+r] = g.data[r*g.cols+c]
		}
	}
	return out
}

// Rotate90 returns the grid rotated a quarter turn clockwise.
func Rotate90[T any](g *Grid[T]) *Grid[T] {
	if g.IsEmpty() {
		return &Grid[T]{}
	}
	out := &Grid[T]{
		data: make([]T, len(g.data)),
		rows: g.cols,
		cols: g.rows,
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out.data[c*out.cols+(g.rows-1-r)] = g.data[r*g.cols+c]
		}
	}
	return out
}

// Rotate180 returns the grid rotated a half turn.
func Rotate180[T any](g *Grid[T]) *Grid[T] {
	if g.IsEmpty() {
		return &Grid[T]{}
	}
	out := &Grid[T]{
		data: make([]T, len(g.data)),
		rows: g.rows,
		cols: g.cols,
	}
	for i, v := range g.data {
		out.data[len(g.data)-1-i] = v
	}
	return out
}

// Rotate270 returns the grid rotated a quarter turn counter-clockwise.
func Rotate270[T any](g *Grid[T]) *Grid[T] {
	if g.IsEmpty() {
		return &Grid[T]{}
	}
	out := &Grid[T]{
		data: make([]T, len(g.data)),
		rows: g.cols,
		cols: g.rows,
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out.data[(g.cols-1-c)*out.cols+r] = g.data[r*g.cols+c]
		}
	}
	return out
}
