// Package text measures and folds strings by terminal display width.
//
// Widths are counted in terminal columns, not bytes or code points: most
// characters take one column, East-Asian wide characters and most emoji take
// two, and combining marks take none. Measurement walks grapheme clusters, so
// a base character and its combining marks are always treated as one unit.
//
// The measurement does not depend on the process locale. Ambiguous-width
// characters (including the box drawing glyphs used for table borders) are
// always one column wide.
//
// ANSI escape sequences already present in the text take no columns, so
// pre-coloured content lines up. Hard splits of a single over-long word do
// not look inside escape sequences.
package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// condition is shared by every measurement. runewidth.DefaultCondition reads
// LANG/LC_ALL at init and would make box drawing glyphs two columns wide in
// CJK locales.
var condition = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

var normalizer = strings.NewReplacer("\r", "", "\t", " ")

// Width returns the number of terminal columns s occupies on a single line.
func Width(s string) int {
	if strings.IndexByte(s, ansi.ESC) >= 0 {
		s = ansi.Strip(s)
	}

	return condition.StringWidth(s)
}

// RuneWidth returns the number of terminal columns r occupies.
func RuneWidth(r rune) int {
	return condition.RuneWidth(r)
}

// Normalize expands tabs to a single space and drops carriage returns, so
// that "\r\n" reads as one line break and every remaining rune has a
// well-defined width.
func Normalize(s string) string {
	if !strings.ContainsAny(s, "\t\r") {
		return s
	}

	return normalizer.Replace(s)
}

// Lines splits s into its explicit lines.
func Lines(s string) []string {
	return strings.Split(Normalize(s), "\n")
}

// MaxLineWidth returns the width of the widest explicit line in s.
func MaxLineWidth(s string) int {
	widest := 0
	for _, line := range Lines(s) {
		widest = max(widest, Width(line))
	}

	return widest
}

// WidestGrapheme returns the width of the widest single grapheme cluster in
// s. No column that holds s can be narrower than this without overfilling.
func WidestGrapheme(s string) int {
	widest := 0

	graphemes := uniseg.NewGraphemes(ansi.Strip(Normalize(s)))
	for graphemes.Next() {
		widest = max(widest, Width(graphemes.Str()))
	}

	return widest
}

// Pad returns s padded with spaces up to width columns. Left-aligned text is
// padded on the right, right-aligned on the left, and centred text gets the
// floor of the gap on the left and the ceiling on the right. Text already at
// or over width is returned unchanged.
func Pad(s string, width int, align Align) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}

	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2

		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
