package text

import (
	"iter"
	"slices"
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap folds s into lines no wider than width columns. See WrapSeq.
func Wrap(s string, width int) []string {
	return slices.Collect(WrapSeq(s, width))
}

// WrapSeq yields the lines of s folded to at most width columns.
//
// Explicit line breaks always end a line. A line that already fits is
// yielded verbatim. Otherwise words (runs separated by ASCII spaces) are
// packed greedily, joined by a single space. A word wider than width starts
// a new line and is split at the last grapheme boundary that fits; its
// remainder stays open for the words that follow. A single grapheme wider
// than width is yielded on its own line.
//
// Every explicit line yields at least one line, so "" yields one empty line.
// A width below 1 is treated as 1. The sequence holds no state and can be
// ranged over any number of times.
func WrapSeq(s string, width int) iter.Seq[string] {
	width = max(width, 1)

	return func(yield func(string) bool) {
		for _, line := range Lines(s) {
			if !fold(line, width, yield) {
				return
			}
		}
	}
}

// fold yields one explicit line folded to width. It reports false once
// yield asks to stop.
func fold(line string, width int, yield func(string) bool) bool {
	if Width(line) <= width {
		return yield(line)
	}

	var (
		current      strings.Builder
		currentWidth int
		open         bool
	)

	flush := func() bool {
		out := current.String()
		current.Reset()
		currentWidth, open = 0, false

		return yield(out)
	}

	for _, word := range words(line) {
		wordWidth := Width(word)

		if open {
			if currentWidth+1+wordWidth <= width {
				current.WriteByte(' ')
				current.WriteString(word)
				currentWidth += 1 + wordWidth

				continue
			}

			if !flush() {
				return false
			}
		}

		if wordWidth > width {
			pieces := split(word, width)
			for _, piece := range pieces[:len(pieces)-1] {
				if !yield(piece) {
					return false
				}
			}

			word = pieces[len(pieces)-1]
			wordWidth = Width(word)
		}

		current.WriteString(word)
		currentWidth, open = wordWidth, true
	}

	if !open {
		// Only spaces, and too many of them to fit.
		return yield("")
	}

	return flush()
}

// words splits on ASCII spaces only, so non-breaking spaces keep their words
// together.
func words(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool { return r == ' ' })
}

// split cuts word into pieces of at most width columns on grapheme cluster
// boundaries. It always returns at least one piece.
func split(word string, width int) []string {
	var (
		pieces     []string
		start      int
		pieceWidth int
	)

	graphemes := uniseg.NewGraphemes(word)
	for graphemes.Next() {
		clusterWidth := Width(graphemes.Str())
		from, _ := graphemes.Positions()

		if pieceWidth > 0 && pieceWidth+clusterWidth > width {
			pieces = append(pieces, word[start:from])
			start, pieceWidth = from, 0
		}

		pieceWidth += clusterWidth
	}

	return append(pieces, word[start:])
}
