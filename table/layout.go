package table

import "github.com/leighmacdonald/termtable/text"

const (
	// padding is the blank column on each side of a cell's content.
	padding = 1
	// boundaryWidth is what a spanning cell absorbs at each interior column
	// boundary: the padding on both sides plus the border glyph.
	boundaryWidth = 2*padding + 1
)

// layout is the geometry of a single render pass. It is built from scratch on
// every call and never stored on the Table.
type layout struct {
	rows   []Row
	widths []int
}

func (t *Table) layout() layout {
	rows := normalizeRows(t.rows)

	columns := 0
	for _, row := range rows {
		columns = max(columns, row.Columns())
	}

	for i := range rows {
		for missing := columns - rows[i].Columns(); missing > 0; missing-- {
			rows[i].Cells = append(rows[i].Cells, NewCell(""))
		}
	}

	return layout{
		rows:   rows,
		widths: resolveWidths(rows, columns, t.maxColumnWidth, t.maxColumnWidths),
	}
}

// normalizeRows copies rows with every span clamped to [1, MaxSpan].
func normalizeRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = row.clone()
		for j := range out[i].Cells {
			out[i].Cells[j].Span = out[i].Cells[j].span()
		}
	}

	return out
}

// resolveWidths computes the content width of every column.
//
// Single column cells set their column to the width of their widest line,
// less the padding an unpadded cell hands back to its content.
// A spanning cell that does not fit in the columns it covers adds the
// shortfall to the last of them. Caps are applied afterwards, a per-column
// cap taking precedence over the global one, and content that no longer
// fits is wrapped rather than truncated. No column ends up narrower than 1,
// or than the widest grapheme in any of its single column cells.
func resolveWidths(rows []Row, columns int, globalMax int, columnMax map[int]int) []int {
	widths := make([]int, columns)
	floors := make([]int, columns)

	for _, row := range rows {
		column := 0
		for _, cell := range row.Cells {
			if cell.Span == 1 && column < columns {
				widths[column] = max(widths[column], text.MaxLineWidth(cell.Content)-cell.gain())
				floors[column] = max(floors[column], text.WidestGrapheme(cell.Content)-cell.gain())
			}
			column += cell.Span
		}
	}

	for _, row := range rows {
		column := 0
		for _, cell := range row.Cells {
			if cell.Span > 1 && column+cell.Span <= columns {
				shortfall := text.MaxLineWidth(cell.Content) - cell.gain() - spannedWidth(widths, column, cell.Span)
				if shortfall > 0 {
					widths[column+cell.Span-1] += shortfall
				}
			}
			column += cell.Span
		}
	}

	for column := range widths {
		if limit, capped := columnLimit(column, globalMax, columnMax); capped {
			widths[column] = min(widths[column], limit)
		}
		widths[column] = max(widths[column], floors[column], 1)
	}

	return widths
}

func columnLimit(column int, globalMax int, columnMax map[int]int) (int, bool) {
	if limit, found := columnMax[column]; found {
		return max(limit, 1), true
	}

	if globalMax > 0 {
		return globalMax, true
	}

	return 0, false
}

// spannedWidth is the content width available to a cell covering span
// columns starting at column.
func spannedWidth(widths []int, column int, span int) int {
	total := boundaryWidth * (span - 1)
	for _, width := range widths[column : column+span] {
		total += width
	}

	return total
}
