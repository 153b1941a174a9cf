package table

import "maps"

// Builder assembles a Table. Every method returns an updated copy, so a
// Builder can be shared as a template without later calls leaking into
// tables already built from it.
type Builder struct {
	rows            []Row
	style           Style
	maxColumnWidth  int
	maxColumnWidths map[int]int
	separateRows    bool
	topBorder       bool
	bottomBorder    bool
}

// NewBuilder starts from the same defaults as New.
func NewBuilder() Builder {
	return Builder{
		style:        Extended(),
		separateRows: true,
		topBorder:    true,
		bottomBorder: true,
	}
}

// Rows appends rows.
func (b Builder) Rows(rows ...Row) Builder {
	next := make([]Row, 0, len(b.rows)+len(rows))
	next = append(next, b.rows...)

	for _, row := range rows {
		next = append(next, row.clone())
	}

	b.rows = next

	return b
}

// Header appends a row of centred, single column cells.
func (b Builder) Header(titles ...string) Builder {
	cells := make([]Cell, len(titles))
	for i, title := range titles {
		cells[i] = NewCell(title).WithAlignment(AlignCenter)
	}

	return b.Rows(NewRow(cells...))
}

func (b Builder) Style(style Style) Builder {
	b.style = style

	return b
}

// MaxColumnWidth caps every column without a per-column cap; 0 means
// unbounded.
func (b Builder) MaxColumnWidth(width int) Builder {
	b.maxColumnWidth = width

	return b
}

// MaxColumnWidths sets per-column caps, replacing any set before.
func (b Builder) MaxColumnWidths(widths map[int]int) Builder {
	b.maxColumnWidths = maps.Clone(widths)

	return b
}

// MaxWidthForColumn caps a single column.
func (b Builder) MaxWidthForColumn(column int, width int) Builder {
	next := maps.Clone(b.maxColumnWidths)
	if next == nil {
		next = make(map[int]int)
	}

	next[column] = width
	b.maxColumnWidths = next

	return b
}

// SeparateRows controls separator lines between rows.
func (b Builder) SeparateRows(separate bool) Builder {
	b.separateRows = separate

	return b
}

func (b Builder) TopBorder(enabled bool) Builder {
	b.topBorder = enabled

	return b
}

func (b Builder) BottomBorder(enabled bool) Builder {
	b.bottomBorder = enabled

	return b
}

// Build returns a table owning copies of the builder's rows and caps.
func (b Builder) Build() *Table {
	tbl := New()
	for _, row := range b.rows {
		tbl.AddRow(row)
	}

	tbl.style = b.style
	tbl.maxColumnWidth = b.maxColumnWidth
	tbl.SetMaxColumnWidths(b.maxColumnWidths)
	tbl.separateRows = b.separateRows
	tbl.topBorder = b.topBorder
	tbl.bottomBorder = b.bottomBorder

	return tbl
}
