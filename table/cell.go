package table

import (
	"fmt"

	"github.com/leighmacdonald/termtable/text"
)

// Alignment is the horizontal placement of a cell's text within its width.
type Alignment = text.Align

const (
	AlignLeft   = text.AlignLeft
	AlignRight  = text.AlignRight
	AlignCenter = text.AlignCenter
)

// ParseAlignment maps "left", "right", "center" (and "<", ">", "^") to an
// Alignment.
func ParseAlignment(name string) (Alignment, error) {
	align, err := text.ParseAlign(name)
	if err != nil {
		return AlignLeft, fmt.Errorf("%w: %w", ErrUnknownAlignment, err)
	}

	return align, nil
}

// MaxSpan is the widest span a cell may have. Render clamps larger spans to
// it, and Validate reports them.
const MaxSpan = 256

// Cell is one logical table cell. Content may contain line breaks. Span is
// the number of columns the cell occupies, between 1 and MaxSpan; render
// clamps anything outside that range. A cell with NoPadding set draws its
// content right up to the borders instead of one space in from them.
type Cell struct {
	Content   string
	Alignment Alignment
	Span      int
	NoPadding bool
}

// NewCell returns a left aligned cell spanning one column.
func NewCell(content string) Cell {
	return Cell{Content: content, Alignment: AlignLeft, Span: 1}
}

func (c Cell) WithSpan(span int) Cell {
	c.Span = span

	return c
}

func (c Cell) WithAlignment(align Alignment) Cell {
	c.Alignment = align

	return c
}

// WithoutPadding drops the space between the cell's content and its borders.
func (c Cell) WithoutPadding() Cell {
	c.NoPadding = true

	return c
}

func (c Cell) span() int {
	return min(max(c.Span, 1), MaxSpan)
}

// padding is the number of blank columns on each side of the content.
func (c Cell) padding() int {
	if c.NoPadding {
		return 0
	}

	return padding
}

// gain is how many more content columns the cell has than a padded cell of
// the same span.
func (c Cell) gain() int {
	return 2 * (padding - c.padding())
}
