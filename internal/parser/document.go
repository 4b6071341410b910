package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/gridwalk/pkg/grid"
)

// Supported input formats.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the structured wrapper format for JSON/YAML input.
// A bare 2D array is also accepted; it decodes to a Document with no name.
type Document struct {
	Name string  `mapstructure:"name"`
	Grid [][]int `mapstructure:"grid"`
}

// Read decodes a grid from r in the given concrete format (text, json, yaml).
// The returned name is non-empty only for document-style JSON/YAML input.
func Read(r io.Reader, format string) (*grid.Grid[int], string, error) {
	switch format {
	case FormatText, "":
		g, err := ReadText(r)
		return g, "", err
	case FormatJSON:
		return readDocument(r, func(data []byte, v any) error {
			dec := json.NewDecoder(bytes.NewReader(data))
			dec.UseNumber()
			return dec.Decode(v)
		})
	case FormatYAML:
		return readDocument(r, yaml.Unmarshal)
	default:
		return nil, "", fmt.Errorf("unknown input format %q", format)
	}
}

// ReadAuto buffers r, sniffs the format (unless the filename extension
// already decides it) and decodes.
func ReadAuto(r io.Reader, filename string) (*grid.Grid[int], string, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(512)
	return Read(br, DetectFormat(filename, head))
}

// DetectFormat resolves FormatAuto using the filename extension first and the
// leading bytes of the stream second. A stream that starts with '[' or '{' is
// JSON, one starting with '-' is a YAML sequence, anything else is assumed to
// be the plain text driver format.
func DetectFormat(filename string, head []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt":
		return FormatText
	}

	trimmed := bytes.TrimLeft(head, " \t\r\n")
	if len(trimmed) == 0 {
		return FormatText
	}
	switch trimmed[0] {
	case '[', '{':
		return FormatJSON
	case '-':
		return FormatYAML
	}
	return FormatText
}

func readDocument(r io.Reader, unmarshal func([]byte, any) error) (*grid.Grid[int], string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}

	var raw any
	if err := unmarshal(data, &raw); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, "", err
	}

	g, err := grid.New(doc.Grid)
	if err != nil {
		return nil, "", err
	}
	return g, doc.Name, nil
}

// decodeDocument accepts either a bare 2D array or a {name, grid} mapping.
// Decoding is weakly typed so json.Number values convert to int; non-integer
// tokens still fail.
func decodeDocument(raw any) (*Document, error) {
	var doc Document

	_, isDoc := raw.(map[string]any)
	target := any(&doc)
	if !isDoc {
		target = &doc.Grid
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if isDoc && doc.Grid == nil {
		return nil, fmt.Errorf("%w: document has no grid", ErrInvalidInput)
	}
	return &doc, nil
}
