package table

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/termtable/text"
)

// Style is the set of glyphs used to draw a table's borders. Every glyph must
// be exactly one column wide.
//
//	TopLeft     Horizontal  OuterTop      TopRight
//	   ╔══════════════════════╦══════════════╗
//	   ║ Vertical             ║              ║
//	   ╠══════════════════════╬══════════════╣ OuterRight
//	OuterLeft             Intersection
//	   ╚══════════════════════╩══════════════╝
//	BottomLeft            OuterBottom   BottomRight
type Style struct {
	TopLeft      rune
	TopRight     rune
	BottomLeft   rune
	BottomRight  rune
	OuterLeft    rune
	OuterRight   rune
	OuterTop     rune
	OuterBottom  rune
	Intersection rune
	Vertical     rune
	Horizontal   rune
}

// Extended draws double lines.
//
//	╔════════════╦════════════╗
//	║ left       ║      right ║
//	╠════════════╬════════════╣
//	║ left       ║      right ║
//	╚════════════╩════════════╝
func Extended() Style {
	return Style{
		TopLeft:      '╔',
		TopRight:     '╗',
		BottomLeft:   '╚',
		BottomRight:  '╝',
		OuterLeft:    '╠',
		OuterRight:   '╣',
		OuterTop:     '╦',
		OuterBottom:  '╩',
		Intersection: '╬',
		Vertical:     '║',
		Horizontal:   '═',
	}
}

// Simple draws with plain ASCII.
//
//	+------------+------------+
//	| left       |      right |
//	+------------+------------+
func Simple() Style {
	return Style{
		TopLeft:      '+',
		TopRight:     '+',
		BottomLeft:   '+',
		BottomRight:  '+',
		OuterLeft:    '+',
		OuterRight:   '+',
		OuterTop:     '+',
		OuterBottom:  '+',
		Intersection: '+',
		Vertical:     '|',
		Horizontal:   '-',
	}
}

// Blank draws every border as a space. The layout is identical to the other
// styles, the borders are just invisible.
func Blank() Style {
	return Style{
		TopLeft:      ' ',
		TopRight:     ' ',
		BottomLeft:   ' ',
		BottomRight:  ' ',
		OuterLeft:    ' ',
		OuterRight:   ' ',
		OuterTop:     ' ',
		OuterBottom:  ' ',
		Intersection: ' ',
		Vertical:     ' ',
		Horizontal:   ' ',
	}
}

// Elegant uses double corners and outer junctions with single inner lines.
func Elegant() Style {
	return Style{
		TopLeft:      '╔',
		TopRight:     '╗',
		BottomLeft:   '╚',
		BottomRight:  '╝',
		OuterLeft:    '╠',
		OuterRight:   '╣',
		OuterTop:     '╦',
		OuterBottom:  '╩',
		Intersection: '┼',
		Vertical:     '│',
		Horizontal:   '─',
	}
}

func Thin() Style    { return StyleFromBorder(lipgloss.NormalBorder()) }
func Rounded() Style { return StyleFromBorder(lipgloss.RoundedBorder()) }
func Thick() Style   { return StyleFromBorder(lipgloss.ThickBorder()) }

var presets = map[string]func() Style{
	"extended": Extended,
	"simple":   Simple,
	"blank":    Blank,
	"elegant":  Elegant,
	"thin":     Thin,
	"rounded":  Rounded,
	"thick":    Thick,
}

// StyleNames lists the names accepted by StyleByName in sorted order.
func StyleNames() []string {
	return slices.Sorted(maps.Keys(presets))
}

// StyleByName returns the named preset. Names are case-insensitive.
func StyleByName(name string) (Style, error) {
	preset, found := presets[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return Style{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStyle, name, strings.Join(StyleNames(), ", "))
	}

	return preset(), nil
}

// StyleFromBorder converts a lipgloss border into a Style, taking the first
// rune of each border part. Empty parts become spaces.
func StyleFromBorder(border lipgloss.Border) Style {
	return Style{
		TopLeft:      firstRune(border.TopLeft),
		TopRight:     firstRune(border.TopRight),
		BottomLeft:   firstRune(border.BottomLeft),
		BottomRight:  firstRune(border.BottomRight),
		OuterLeft:    firstRune(border.MiddleLeft),
		OuterRight:   firstRune(border.MiddleRight),
		OuterTop:     firstRune(border.MiddleTop),
		OuterBottom:  firstRune(border.MiddleBottom),
		Intersection: firstRune(border.Middle),
		Vertical:     firstRune(border.Left),
		Horizontal:   firstRune(border.Top),
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}

	return ' '
}

// Validate checks that every glyph is one column wide.
func (s Style) Validate() error {
	glyphs := []struct {
		name  string
		glyph rune
	}{
		{"top left", s.TopLeft},
		{"top right", s.TopRight},
		{"bottom left", s.BottomLeft},
		{"bottom right", s.BottomRight},
		{"outer left", s.OuterLeft},
		{"outer right", s.OuterRight},
		{"outer top", s.OuterTop},
		{"outer bottom", s.OuterBottom},
		{"intersection", s.Intersection},
		{"vertical", s.Vertical},
		{"horizontal", s.Horizontal},
	}

	var errs []error
	for _, g := range glyphs {
		if width := text.RuneWidth(g.glyph); width != 1 {
			errs = append(errs, fmt.Errorf("%w: %s %q is %d columns wide", ErrInvalidGlyph, g.name, g.glyph, width))
		}
	}

	return errors.Join(errs...)
}

// junction picks the glyph for an interior column boundary on a horizontal
// line, given whether a cell boundary exists there in the row above and the
// row below. A boundary on either side always gets a junction.
func (s Style) junction(above, below bool) rune {
	switch {
	case above && below:
		return s.Intersection
	case above:
		return s.OuterBottom
	case below:
		return s.OuterTop
	default:
		return s.Horizontal
	}
}

// lineKind identifies which of the horizontal lines is being drawn.
type lineKind uint8

const (
	lineTop lineKind = iota
	lineSeparator
	lineBottom
)

func (s Style) ends(kind lineKind) (rune, rune) {
	switch kind {
	case lineTop:
		return s.TopLeft, s.TopRight
	case lineBottom:
		return s.BottomLeft, s.BottomRight
	default:
		return s.OuterLeft, s.OuterRight
	}
}
