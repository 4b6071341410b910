package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gridwalk/pkg/grid"
)

func TestNew(t *testing.T) {
	g, err := grid.New([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.False(t, g.IsEmpty())
	assert.Equal(t, 6, g.At(1, 2))
	assert.Equal(t, []int{4, 5, 6}, g.Row(1))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, g.Values())
}

func TestNewJagged(t *testing.T) {
	_, err := grid.New([][]int{{1, 2, 3}, {4, 5}})
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrInvalidShape)

	var shapeErr *grid.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 1, shapeErr.Row)
	assert.Equal(t, 3, shapeErr.Want)
	assert.Equal(t, 2, shapeErr.Got)
}

func TestNewEmpty(t *testing.T) {
	g, err := grid.New[int](nil)
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())
	assert.Empty(t, g.Values())

	// An m x 0 grid is indistinguishable from empty.
	g, err = grid.New([][]int{{}, {}, {}})
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.Rows())
}

func TestGridIsImmutable(t *testing.T) {
	input := [][]int{{1, 2}, {3, 4}}
	g := grid.MustNew(input)

	// Mutating the input after construction must not leak into the grid.
	input[0][0] = 99
	assert.Equal(t, 1, g.At(0, 0))

	// Mutating returned slices must not leak either.
	row := g.Row(0)
	row[0] = 42
	assert.Equal(t, 1, g.At(0, 0))

	vals := g.Values()
	vals[3] = 42
	assert.Equal(t, 4, g.At(1, 1))
}

func TestAtOutOfBounds(t *testing.T) {
	g := grid.MustNew([][]int{{1, 2}, {3, 4}})
	assert.Panics(t, func() { g.At(2, 0) })
	assert.Panics(t, func() { g.At(0, -1) })
	assert.Panics(t, func() { g.Row(5) })
}

func TestMustNewPanicsOnJagged(t *testing.T) {
	assert.Panics(t, func() {
		grid.MustNew([][]int{{1}, {2, 3}})
	})
}

func TestRowSlicesRoundTrip(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c", "d"}}
	g := grid.MustNew(rows)
	assert.Equal(t, rows, g.RowSlices())
}
