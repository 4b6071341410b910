// Package grid provides the immutable rectangular grid type shared by all
// gridwalk operations.
//
// A Grid is constructed once from caller data and validated eagerly: jagged
// input is rejected with ErrInvalidShape at construction time rather than
// surfacing as undefined behavior during a walk. Transforms (Transpose,
// Rotate90/180/270) are pure and return fresh grids.
package grid
