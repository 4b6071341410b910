/*
Package gridwalk traverses rectangular grids in concentric clockwise rings, starting at the top-left corner and spiraling inward until every cell has been visited exactly once.

The root package is a thin facade over pkg/grid (the validated, immutable grid type) and pkg/spiral (the traversal itself). Use the facade for one-shot calls on plain 2D slices, or the sub-packages directly when you want to reuse a parsed grid across operations.

# Semantics

The walk maintains four cursors (top, bottom, left, right) delimiting the outer unvisited ring. Each pass consumes one edge of the ring and shrinks the corresponding cursor; guards on the bottom and left passes prevent duplicate emission when the remaining ring degenerates to a single row or column. The result is always a permutation of the grid's values, ordered by visitation, and the traversal terminates in at most ceil(min(rows, cols)/2) rings.

Grids are validated eagerly: jagged input fails with grid.ErrInvalidShape at construction time. Empty grids are legal and traverse to an empty result.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/gridwalk"
	)

	func main() {
		out, err := gridwalk.Traverse([][]int{
			{1, 2, 3},
			{4, 5, 6},
			{7, 8, 9},
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out) // [1 2 3 6 9 8 7 4 5]
	}

The cmd/gridwalk CLI wraps the same operations for text, JSON and YAML input, and pkg/adapters/mcp exposes them as MCP tools over stdio.
*/
package gridwalk
