package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/gridwalk/internal/presentation/tui"
	"github.com/aretw0/gridwalk/pkg/spiral"
)

// FillOptions contains all the configuration for the fill command.
type FillOptions struct {
	Rows, Cols       int
	Output           string // text|json|yaml|pretty ("" = text)
	CounterClockwise bool
	NoColor          bool

	Out io.Writer // defaults to os.Stdout
}

// Fill handles the 'fill' command logic: generate the spiral-numbered grid
// and encode it.
func Fill(opts FillOptions) error {
	if opts.Rows < 0 || opts.Cols < 0 {
		return fmt.Errorf("dimensions must be non-negative, got %dx%d", opts.Rows, opts.Cols)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	var walkOpts []spiral.Option
	if opts.CounterClockwise {
		walkOpts = append(walkOpts, spiral.CounterClockwise())
	}
	g := spiral.Fill(opts.Rows, opts.Cols, walkOpts...)

	switch opts.Output {
	case "", "text":
		for r := 0; r < g.Rows(); r++ {
			if err := writeText(out, g.Row(r)); err != nil {
				return err
			}
		}
		return nil
	case "json":
		return writeJSON(out, g.RowSlices())
	case "yaml":
		return writeYAML(out, g.RowSlices())
	case "pretty":
		_, err := fmt.Fprint(out, tui.RenderGrid(g, colorProfile(opts.NoColor)))
		return err
	default:
		return fmt.Errorf("unknown output format %q", opts.Output)
	}
}
