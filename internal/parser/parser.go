package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/gridwalk/pkg/grid"
)

// ErrInvalidInput is returned for malformed grid input (wrong token counts,
// non-integer tokens, truncated streams).
var ErrInvalidInput = errors.New("invalid input")

// InputError carries the position of the offending token.
type InputError struct {
	Token int // 1-based index of the whitespace-separated token
	Msg   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: token %d: %s", e.Token, e.Msg)
}

// Unwrap lets callers match the sentinel with errors.Is.
func (e *InputError) Unwrap() error { return ErrInvalidInput }

// ReadText decodes the classic driver format: a header line "m n" (row and
// column counts) followed by m rows of n whitespace-separated integers.
// Tokenization is whitespace-based, so line breaks inside a row are accepted.
// Trailing tokens after the last value are rejected.
func ReadText(r io.Reader) (*grid.Grid[int], error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	token := 0
	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, &InputError{Token: token + 1, Msg: "unexpected end of input, expected " + what}
		}
		token++
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, &InputError{Token: token, Msg: fmt.Sprintf("expected %s, got %q", what, sc.Text())}
		}
		return v, nil
	}

	rows, err := next("row count")
	if err != nil {
		return nil, err
	}
	cols, err := next("column count")
	if err != nil {
		return nil, err
	}
	if rows < 0 || cols < 0 {
		return nil, &InputError{Token: token, Msg: fmt.Sprintf("negative dimensions %dx%d", rows, cols)}
	}

	cells := make([][]int, rows)
	for i := 0; i < rows; i++ {
		cells[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			v, err := next("integer value")
			if err != nil {
				return nil, err
			}
			cells[i][j] = v
		}
	}

	if sc.Scan() {
		return nil, &InputError{Token: token + 1, Msg: fmt.Sprintf("trailing data %q after %d values", sc.Text(), rows*cols)}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return grid.New(cells)
}
