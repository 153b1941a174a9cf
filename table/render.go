package table

import (
	"strings"

	"github.com/leighmacdonald/termtable/text"
)

// lines draws the whole table. A table without cells draws nothing.
func (t *Table) lines() []string {
	plan := t.layout()
	if len(plan.widths) == 0 {
		return nil
	}

	first, last := plan.rows[0], plan.rows[len(plan.rows)-1]

	var out []string

	if t.topBorder {
		out = append(out, plan.rule(t.style, lineTop, nil, &first))
	}

	for i, row := range plan.rows {
		if i > 0 && t.separateRows && plan.rows[i-1].Separator {
			out = append(out, plan.rule(t.style, lineSeparator, &plan.rows[i-1], &row))
		}

		out = append(out, plan.content(t.style, row)...)
	}

	if t.bottomBorder {
		out = append(out, plan.rule(t.style, lineBottom, &last, nil))
	}

	return out
}

// rule draws a horizontal line between above and below, either of which may
// be nil at the table's edges.
func (l layout) rule(style Style, kind lineKind, above, below *Row) string {
	left, right := style.ends(kind)
	aboveEdges, belowEdges := l.boundaries(above), l.boundaries(below)
	horizontal := string(style.Horizontal)

	var line strings.Builder

	line.WriteRune(left)

	for column, width := range l.widths {
		if column > 0 {
			line.WriteRune(style.junction(aboveEdges[column], belowEdges[column]))
		}

		line.WriteString(strings.Repeat(horizontal, width+2*padding))
	}

	line.WriteRune(right)

	return line.String()
}

// boundaries reports, per column, whether a cell of row starts there.
func (l layout) boundaries(row *Row) []bool {
	edges := make([]bool, len(l.widths))
	if row == nil {
		return edges
	}

	column := 0
	for _, cell := range row.Cells {
		if column >= len(edges) {
			break
		}

		edges[column] = true
		column += cell.Span
	}

	return edges
}

// block is one cell folded to its resolved width.
type block struct {
	lines []string
	width int
	align Alignment
	pad   string
}

// content draws the text lines of row. Cells shorter than the tallest cell
// are filled with blank lines.
func (l layout) content(style Style, row Row) []string {
	blocks := make([]block, 0, len(row.Cells))
	height, column := 1, 0

	for _, cell := range row.Cells {
		width := spannedWidth(l.widths, column, cell.Span) + cell.gain()
		wrapped := text.Wrap(cell.Content, width)

		blocks = append(blocks, block{
			lines: wrapped,
			width: width,
			align: cell.Alignment,
			pad:   strings.Repeat(" ", cell.padding()),
		})
		height = max(height, len(wrapped))
		column += cell.Span
	}

	out := make([]string, height)

	var line strings.Builder

	for i := range height {
		line.Reset()
		line.WriteRune(style.Vertical)

		for _, b := range blocks {
			var value string
			if i < len(b.lines) {
				value = b.lines[i]
			}

			line.WriteString(b.pad)
			line.WriteString(text.Pad(value, b.width, b.align))
			line.WriteString(b.pad)
			line.WriteRune(style.Vertical)
		}

		out[i] = line.String()
	}

	return out
}
