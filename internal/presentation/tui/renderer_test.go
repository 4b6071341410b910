package tui

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/aretw0/gridwalk/pkg/grid"
)

func TestRenderGridPlain(t *testing.T) {
	g := grid.MustNew([][]int{{1, 10}, {100, 2}})
	got := RenderGrid(g, termenv.Ascii)
	want := "  1  10\n100   2\n"
	if got != want {
		t.Errorf("RenderGrid = %q, want %q", got, want)
	}
}

func TestRenderGridEmpty(t *testing.T) {
	if got := RenderGrid(grid.MustNew[int](nil), termenv.Ascii); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderGridColored(t *testing.T) {
	g := grid.MustNew([][]int{{1, 2}, {3, 4}})
	got := RenderGrid(g, termenv.TrueColor)
	if !strings.Contains(got, "\x1b[") {
		t.Error("expected ANSI escape sequences with a color profile")
	}
}

func TestRingIndex(t *testing.T) {
	tests := []struct {
		r, c, rows, cols int
		want             int
	}{
		{0, 0, 3, 3, 0},
		{0, 2, 3, 3, 0},
		{1, 1, 3, 3, 1},
		{2, 2, 5, 5, 2},
		{1, 2, 4, 5, 1},
	}
	for _, tc := range tests {
		if got := ringIndex(tc.r, tc.c, tc.rows, tc.cols); got != tc.want {
			t.Errorf("ringIndex(%d,%d,%d,%d) = %d, want %d", tc.r, tc.c, tc.rows, tc.cols, got, tc.want)
		}
	}
}
