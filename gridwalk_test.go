package gridwalk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/pkg/grid"
	"github.com/aretw0/gridwalk/pkg/spiral"
)

func TestTraverse(t *testing.T) {
	out, err := gridwalk.Traverse([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 6, 9, 8, 7, 4, 5}, out)
}

func TestTraverseStrings(t *testing.T) {
	// The facade is generic: element type is irrelevant to the walk.
	out, err := gridwalk.Traverse([][]string{
		{"a", "b"},
		{"c", "d"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d", "c"}, out)
}

func TestTraverseJagged(t *testing.T) {
	_, err := gridwalk.Traverse([][]int{{1, 2}, {3}})
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrInvalidShape)
}

func TestTraverseEmpty(t *testing.T) {
	out, err := gridwalk.Traverse[int](nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestTraverseCounterClockwise(t *testing.T) {
	out, err := gridwalk.Traverse([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, spiral.CounterClockwise())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 7, 8, 9, 6, 3, 2, 5}, out)
}

func TestFill(t *testing.T) {
	assert.Equal(t, [][]int{
		{1, 2, 3},
		{8, 9, 4},
		{7, 6, 5},
	}, gridwalk.Fill(3, 3))
}
