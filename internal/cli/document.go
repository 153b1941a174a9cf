package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/leighmacdonald/termtable/table"
)

var (
	ErrUnknownFormat   = errors.New("unknown document format")
	ErrInvalidDocument = errors.New("invalid table document")
)

const (
	formatTOML = "toml"
	formatYAML = "yaml"
	formatJSON = "json"
)

// document is the on-disk description of a table.
//
//	style = "extended"
//	max_column_width = 40
//	header = ["name", "qty"]
//
//	[column_widths]
//	"0" = 12
//
//	[[rows]]
//	values = ["apples", "3"]
//
//	[[rows]]
//	separator = false
//	cells = [{ text = "total", span = 2, align = "right" }, { text = "|", no_padding = true }]
type document struct {
	Style          string         `toml:"style" yaml:"style" json:"style"`
	MaxColumnWidth int            `toml:"max_column_width" yaml:"max_column_width" json:"max_column_width"`
	ColumnWidths   map[string]int `toml:"column_widths" yaml:"column_widths" json:"column_widths"`
	SeparateRows   *bool          `toml:"separate_rows" yaml:"separate_rows" json:"separate_rows"`
	TopBorder      *bool          `toml:"top_border" yaml:"top_border" json:"top_border"`
	BottomBorder   *bool          `toml:"bottom_border" yaml:"bottom_border" json:"bottom_border"`
	Header         []string       `toml:"header" yaml:"header" json:"header"`
	Rows           []documentRow  `toml:"rows" yaml:"rows" json:"rows"`
}

// documentRow holds either plain values or fully described cells. Values
// come first when both are given.
type documentRow struct {
	Values    []string       `toml:"values" yaml:"values" json:"values"`
	Cells     []documentCell `toml:"cells" yaml:"cells" json:"cells"`
	Separator *bool          `toml:"separator" yaml:"separator" json:"separator"`
}

type documentCell struct {
	Text      string `toml:"text" yaml:"text" json:"text"`
	Align     string `toml:"align" yaml:"align" json:"align"`
	Span      int    `toml:"span" yaml:"span" json:"span"`
	NoPadding bool   `toml:"no_padding" yaml:"no_padding" json:"no_padding"`
}

// formatFromPath guesses the document format from a file extension.
func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json":
		return formatJSON, nil
	default:
		return "", fmt.Errorf("%w: cannot tell the format of %q, use --format", ErrUnknownFormat, path)
	}
}

// decodeDocument rejects keys the document does not define, in every format.
func decodeDocument(r io.Reader, format string) (document, error) {
	var doc document

	switch strings.ToLower(format) {
	case formatTOML:
		meta, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return doc, errors.Join(err, ErrInvalidDocument)
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return doc, fmt.Errorf("%w: unknown key %q", ErrInvalidDocument, undecoded[0].String())
		}
	case formatYAML, "yml":
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)

		if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return doc, errors.Join(err, ErrInvalidDocument)
		}
	case formatJSON:
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&doc); err != nil {
			return doc, errors.Join(err, ErrInvalidDocument)
		}
	default:
		return doc, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return doc, nil
}

// builder turns the document into a table builder. Unset booleans keep the
// table defaults.
func (d document) builder() (table.Builder, error) {
	builder := table.NewBuilder().MaxColumnWidth(d.MaxColumnWidth)

	if d.Style != "" {
		style, err := table.StyleByName(d.Style)
		if err != nil {
			return builder, errors.Join(err, ErrInvalidDocument)
		}

		builder = builder.Style(style)
	}

	for key, width := range d.ColumnWidths {
		column, err := strconv.Atoi(key)
		if err != nil || column < 0 {
			return builder, fmt.Errorf("%w: column_widths key %q is not a column index", ErrInvalidDocument, key)
		}

		builder = builder.MaxWidthForColumn(column, width)
	}

	if d.SeparateRows != nil {
		builder = builder.SeparateRows(*d.SeparateRows)
	}

	if d.TopBorder != nil {
		builder = builder.TopBorder(*d.TopBorder)
	}

	if d.BottomBorder != nil {
		builder = builder.BottomBorder(*d.BottomBorder)
	}

	if len(d.Header) > 0 {
		builder = builder.Header(d.Header...)
	}

	for rowIdx, docRow := range d.Rows {
		row, err := docRow.row()
		if err != nil {
			return builder, fmt.Errorf("row %d: %w", rowIdx, err)
		}

		builder = builder.Rows(row)
	}

	return builder, nil
}

func (r documentRow) row() (table.Row, error) {
	row := table.TextRow(r.Values...)

	for cellIdx, docCell := range r.Cells {
		align, err := table.ParseAlignment(docCell.Align)
		if err != nil {
			return row, fmt.Errorf("cell %d: %w", cellIdx, errors.Join(err, ErrInvalidDocument))
		}

		span := docCell.Span
		if span == 0 {
			span = 1
		}

		if span < 1 || span > table.MaxSpan {
			return row, fmt.Errorf("%w: cell %d span %d, want 1 to %d", ErrInvalidDocument, cellIdx, span, table.MaxSpan)
		}

		cell := table.NewCell(docCell.Text).WithAlignment(align).WithSpan(span)
		cell.NoPadding = docCell.NoPadding

		row.Cells = append(row.Cells, cell)
	}

	if r.Separator != nil {
		row.Separator = *r.Separator
	}

	return row, nil
}
