package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gridwalk/internal/parser"
	"github.com/aretw0/gridwalk/pkg/grid"
)

func TestReadJSONBareArray(t *testing.T) {
	g, name, err := parser.Read(strings.NewReader("[[1,2],[3,4]]"), parser.FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, name)
	assert.Equal(t, []int{1, 2, 3, 4}, g.Values())
}

func TestReadJSONDocument(t *testing.T) {
	input := `{"name": "example", "grid": [[1,2,3],[4,5,6]]}`
	g, name, err := parser.Read(strings.NewReader(input), parser.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "example", name)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
}

func TestReadYAMLDocument(t *testing.T) {
	input := "name: example\ngrid:\n  - [1, 2]\n  - [3, 4]\n"
	g, name, err := parser.Read(strings.NewReader(input), parser.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "example", name)
	assert.Equal(t, []int{1, 2, 3, 4}, g.Values())
}

func TestReadYAMLBareSequence(t *testing.T) {
	g, _, err := parser.Read(strings.NewReader("- [1, 2]\n- [3, 4]\n"), parser.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, g.Values())
}

func TestReadJSONJagged(t *testing.T) {
	_, _, err := parser.Read(strings.NewReader("[[1,2],[3]]"), parser.FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrInvalidShape)
}

func TestReadDocumentWithoutGrid(t *testing.T) {
	_, _, err := parser.Read(strings.NewReader(`{"name": "nope"}`), parser.FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrInvalidInput)
}

func TestReadJSONNonInteger(t *testing.T) {
	_, _, err := parser.Read(strings.NewReader("[[1.5, 2]]"), parser.FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrInvalidInput)
}

func TestReadUnknownFormat(t *testing.T) {
	_, _, err := parser.Read(strings.NewReader(""), "xml")
	require.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		head     string
		want     string
	}{
		{"json extension", "grid.json", "", parser.FormatJSON},
		{"yaml extension", "grid.yaml", "", parser.FormatYAML},
		{"yml extension", "grid.yml", "", parser.FormatYAML},
		{"txt extension", "grid.txt", "[[1]]", parser.FormatText},
		{"sniff array", "", "  [[1,2],[3,4]]", parser.FormatJSON},
		{"sniff object", "", `{"grid": [[1]]}`, parser.FormatJSON},
		{"sniff yaml sequence", "", "- [1, 2]\n", parser.FormatYAML},
		{"sniff text", "", "3 3\n1 2 3", parser.FormatText},
		{"empty stream", "", "", parser.FormatText},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parser.DetectFormat(tc.filename, []byte(tc.head)))
		})
	}
}

func TestReadAuto(t *testing.T) {
	g, _, err := parser.ReadAuto(strings.NewReader("[[7,8],[9,10]]"), "")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9, 10}, g.Values())

	g, _, err = parser.ReadAuto(strings.NewReader("2 2\n1 2\n3 4\n"), "")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, g.Values())
}
