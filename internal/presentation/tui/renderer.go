package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/gridwalk/pkg/grid"
)

// ringPalette colors cells by the concentric ring they belong to,
// outermost first. Reused cyclically for deep grids.
var ringPalette = []string{
	"#818cf8",
	"#a78bfa",
	"#c084fc",
	"#e879f9",
	"#f472b6",
	"#fb7185",
}

// RenderGrid renders an integer grid with column-aligned cells. Each cell is
// colored by its ring index when the profile supports color; with
// termenv.Ascii the output is plain text.
func RenderGrid(g *grid.Grid[int], profile termenv.Profile) string {
	if g.IsEmpty() {
		return ""
	}

	width := 0
	for _, v := range g.Values() {
		if w := len(fmt.Sprintf("%d", v)); w > width {
			width = w
		}
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				b.WriteString(" ")
			}
			cell := fmt.Sprintf("%*d", width, g.At(r, c))
			if profile != termenv.Ascii {
				ring := ringIndex(r, c, g.Rows(), g.Cols())
				color := profile.Color(ringPalette[ring%len(ringPalette)])
				cell = termenv.String(cell).Foreground(color).String()
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ringIndex returns the 0-based concentric ring a cell belongs to.
func ringIndex(r, c, rows, cols int) int {
	return min(min(r, c), min(rows-1-r, cols-1-c))
}
