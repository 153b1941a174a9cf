package text

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAlign = errors.New("unknown alignment")

// Align is a horizontal placement within a padded field.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

func (a Align) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// ParseAlign accepts the names produced by String, "centre", and the short
// forms "<", ">" and "^". The empty string is AlignLeft.
func ParseAlign(name string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left", "<":
		return AlignLeft, nil
	case "right", ">":
		return AlignRight, nil
	case "center", "centre", "^":
		return AlignCenter, nil
	default:
		return AlignLeft, fmt.Errorf("%w: %q", ErrUnknownAlign, name)
	}
}
