// Package table renders rows of text cells as an aligned, bordered block of
// text.
//
// Column widths are negotiated from the content on every render: each
// column is as wide as its widest single column cell, spanning cells widen
// the last column they cover when they would not otherwise fit, and optional
// caps narrow columns so their content wraps. Widths are measured in
// terminal columns, so East-Asian wide characters line up.
//
//	t := table.NewBuilder().
//		Style(table.Extended()).
//		MaxColumnWidth(40).
//		Rows(
//			table.NewRow(table.NewCell("Centred").WithSpan(2).WithAlignment(table.AlignCenter)),
//			table.TextRow("left", "right"),
//		).
//		Build()
//
//	fmt.Println(t.Render())
package table

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Render draws headers above data with the simple ASCII style, separating
// only the header from the data.
func Render(headers []string, data [][]string) string {
	rows := make([]Row, 0, len(data))
	for _, values := range data {
		row := TextRow(values...)
		row.Separator = false
		rows = append(rows, row)
	}

	return NewBuilder().
		Style(Simple()).
		Header(headers...).
		Rows(rows...).
		Build().
		Render()
}

// Table is an ordered list of rows with a style and width configuration.
// The zero value is not ready for use, create tables with New or a Builder.
//
// Rendering reads the table without modifying it, so concurrent Render calls
// are safe as long as nothing mutates the table at the same time.
type Table struct {
	rows            []Row
	style           Style
	maxColumnWidth  int
	maxColumnWidths map[int]int
	separateRows    bool
	topBorder       bool
	bottomBorder    bool
}

// New returns an empty table using the Extended style, with row separators
// and both borders enabled and no width caps.
func New() *Table {
	return &Table{
		style:           Extended(),
		maxColumnWidths: make(map[int]int),
		separateRows:    true,
		topBorder:       true,
		bottomBorder:    true,
	}
}

// AddRow appends a copy of row.
func (t *Table) AddRow(row Row) {
	t.rows = append(t.rows, row.clone())
}

// SetMaxColumnWidth caps every column without a per-column cap. A width of
// 0 or less removes the cap.
func (t *Table) SetMaxColumnWidth(width int) {
	t.maxColumnWidth = width
}

// SetMaxWidthForColumn caps a single column, overriding the global cap.
func (t *Table) SetMaxWidthForColumn(column int, width int) {
	if t.maxColumnWidths == nil {
		t.maxColumnWidths = make(map[int]int)
	}

	t.maxColumnWidths[column] = width
}

// SetMaxColumnWidths sets several per-column caps at once.
func (t *Table) SetMaxColumnWidths(widths map[int]int) {
	for column, width := range widths {
		t.SetMaxWidthForColumn(column, width)
	}
}

// Rows returns a copy of the table's rows.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		rows[i] = row.clone()
	}

	return rows
}

func (t *Table) Style() Style {
	return t.style
}

// Columns returns the number of columns of the widest row.
func (t *Table) Columns() int {
	columns := 0
	for _, row := range t.rows {
		columns = max(columns, row.Columns())
	}

	return columns
}

// Widths returns the content width of each column as the next Render would
// resolve them. Padding and borders are not included.
func (t *Table) Widths() []int {
	return t.layout().widths
}

// Render draws the table. Lines are separated by a single "\n" with no
// trailing line break. A table without any cells renders as "".
func (t *Table) Render() string {
	return strings.Join(t.lines(), "\n")
}

// Lines returns the rendered table one line at a time.
func (t *Table) Lines() []string {
	return t.lines()
}

func (t *Table) String() string {
	return t.Render()
}

// Validate reports every problem that Render works around: spans outside
// [1, MaxSpan], per-column caps below 1, glyphs that are not one column wide,
// and tables without cells. Render produces output regardless.
func (t *Table) Validate() error {
	var errs []error

	if t.Columns() == 0 {
		errs = append(errs, ErrEmptyTable)
	}

	for rowIdx, row := range t.rows {
		for cellIdx, cell := range row.Cells {
			if cell.Span != cell.span() {
				errs = append(errs, fmt.Errorf("%w: row %d cell %d has span %d, using %d",
					ErrInvalidSpan, rowIdx, cellIdx, cell.Span, cell.span()))
			}
		}
	}

	for _, column := range slices.Sorted(maps.Keys(t.maxColumnWidths)) {
		if width := t.maxColumnWidths[column]; width < 1 {
			errs = append(errs, fmt.Errorf("%w: column %d capped at %d, using 1",
				ErrDegenerateWidth, column, width))
		}
	}

	if err := t.style.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
