package table

import "errors"

// Rendering never fails; these describe what Validate found and what Render
// clamped or defaulted instead.
var (
	ErrInvalidSpan      = errors.New("invalid column span")
	ErrDegenerateWidth  = errors.New("degenerate column width")
	ErrEmptyTable       = errors.New("table has no cells")
	ErrInvalidGlyph     = errors.New("invalid style glyph")
	ErrUnknownStyle     = errors.New("unknown style")
	ErrUnknownAlignment = errors.New("unknown alignment")
)
