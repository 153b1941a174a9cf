package table

import "slices"

// Row is an ordered list of cells. Separator controls whether a separator
// line is drawn beneath the row when the table separates rows.
type Row struct {
	Cells     []Cell
	Separator bool
}

// NewRow returns a row with a separator beneath it.
func NewRow(cells ...Cell) Row {
	return Row{Cells: slices.Clone(cells), Separator: true}
}

// NewRowWithoutSeparator returns a row that is never followed by a separator.
func NewRowWithoutSeparator(cells ...Cell) Row {
	return Row{Cells: slices.Clone(cells)}
}

// TextRow returns a row of left aligned, single column cells.
func TextRow(values ...string) Row {
	cells := make([]Cell, len(values))
	for i, value := range values {
		cells[i] = NewCell(value)
	}

	return Row{Cells: cells, Separator: true}
}

// Columns returns the number of columns the row occupies. Spans are
// clamped to [1, MaxSpan] first, so the sum cannot overflow.
func (r Row) Columns() int {
	columns := 0
	for _, cell := range r.Cells {
		columns += cell.span()
	}

	return columns
}

func (r Row) clone() Row {
	r.Cells = slices.Clone(r.Cells)

	return r
}
