package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/gridwalk/internal/logging"
	"github.com/aretw0/gridwalk/internal/parser"
	"github.com/aretw0/gridwalk/internal/presentation/tui"
	"github.com/aretw0/gridwalk/pkg/grid"
	"github.com/aretw0/gridwalk/pkg/spiral"
)

// TraverseOptions contains all the configuration for the traverse command.
type TraverseOptions struct {
	InputPath        string // "" or "-" means stdin
	Format           string // auto|text|json|yaml ("" = auto)
	Output           string // text|json|yaml|pretty ("" = text)
	CounterClockwise bool
	NoColor          bool

	In     io.Reader // defaults to os.Stdin
	Out    io.Writer // defaults to os.Stdout
	Logger *slog.Logger
}

// Traverse handles the 'traverse' command logic: decode, walk, encode.
func Traverse(opts TraverseOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	in, name, closeFn, err := openInput(opts)
	if err != nil {
		return err
	}
	defer closeFn()

	g, docName, err := decode(in, name, opts.Format)
	if err != nil {
		return err
	}
	if docName != "" {
		logger.Debug("loaded grid document", "name", docName)
	}
	logger.Debug("grid parsed", "rows", g.Rows(), "cols", g.Cols())

	var walkOpts []spiral.Option
	if opts.CounterClockwise {
		walkOpts = append(walkOpts, spiral.CounterClockwise())
	}
	order := spiral.Order(g, walkOpts...)

	switch opts.Output {
	case "", "text":
		return writeText(out, order)
	case "json":
		return writeJSON(out, order)
	case "yaml":
		return writeYAML(out, order)
	case "pretty":
		profile := colorProfile(opts.NoColor)
		fmt.Fprint(out, tui.RenderGrid(g, profile))
		fmt.Fprintln(out)
		return writeText(out, order)
	default:
		return fmt.Errorf("unknown output format %q", opts.Output)
	}
}

func openInput(opts TraverseOptions) (io.Reader, string, func(), error) {
	if opts.InputPath == "" || opts.InputPath == "-" {
		in := opts.In
		if in == nil {
			in = os.Stdin
		}
		return in, "", func() {}, nil
	}

	f, err := os.Open(opts.InputPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening input: %w", err)
	}
	return f, opts.InputPath, func() { f.Close() }, nil
}

func decode(in io.Reader, filename, format string) (*grid.Grid[int], string, error) {
	switch format {
	case "", parser.FormatAuto:
		return parser.ReadAuto(in, filename)
	default:
		return parser.Read(in, format)
	}
}

func writeText(w io.Writer, order []int) error {
	parts := make([]string, len(order))
	for i, v := range order {
		parts[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func colorProfile(noColor bool) termenv.Profile {
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
