package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/leighmacdonald/termtable/table"
)

var ErrTableInput = errors.New("invalid table input")

type CommandOptions map[string]*discordgo.ApplicationCommandInteractionDataOption

// OptionMap will take the recursive discord slash commands and flatten them into a simple
// map.
func OptionMap(options []*discordgo.ApplicationCommandInteractionDataOption) CommandOptions {
	optionM := make(CommandOptions, len(options))
	for _, opt := range options {
		optionM[opt.Name] = opt
	}

	return optionM
}

func (opts CommandOptions) String(key string) string {
	root, found := opts[key]
	if !found {
		return ""
	}

	val, ok := root.Value.(string)
	if !ok {
		return ""
	}

	return val
}

// Int returns an integer option. Discord delivers numbers as JSON, so they
// arrive as float64.
func (opts CommandOptions) Int(key string) int {
	root, found := opts[key]
	if !found {
		return 0
	}

	switch val := root.Value.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case int64:
		return int(val)
	default:
		return 0
	}
}

func (opts CommandOptions) Bool(key string) bool {
	root, found := opts[key]
	if !found {
		return false
	}

	val, ok := root.Value.(bool)

	return ok && val
}

// Table builds a table from the "rows", "style", "max_width" and "header"
// options on top of base.
func (opts CommandOptions) Table(base table.Builder) (*table.Table, error) {
	rows, errRows := ParseRows(opts.String("rows"))
	if errRows != nil {
		return nil, errRows
	}

	builder := base

	if name := opts.String("style"); name != "" {
		style, errStyle := table.StyleByName(name)
		if errStyle != nil {
			return nil, errors.Join(errStyle, ErrTableInput)
		}

		builder = builder.Style(style)
	}

	if width := opts.Int("max_width"); width > 0 {
		builder = builder.MaxColumnWidth(width)
	}

	if opts.Bool("header") {
		for i := range rows[0].Cells {
			rows[0].Cells[i].Alignment = table.AlignCenter
		}
	}

	return builder.Rows(rows...).Build(), nil
}

// ParseRows reads the compact table syntax used by the slash command. Rows
// are separated by ";" and cells by "|". A cell may start with "<", ">" or
// "^" to align it left, right or centre, and end with "{n}" to span n
// columns, at most table.MaxSpan. The two character sequence \n inserts a
// line break.
//
//	^Fruit{2}; apples | >3; pears | >12
func ParseRows(input string) ([]table.Row, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("%w: no rows given", ErrTableInput)
	}

	var rows []table.Row

	for rowIdx, rawRow := range strings.Split(input, ";") {
		if strings.TrimSpace(rawRow) == "" {
			continue
		}

		var cells []table.Cell

		for cellIdx, rawCell := range strings.Split(rawRow, "|") {
			cell, errCell := parseCell(rawCell)
			if errCell != nil {
				return nil, fmt.Errorf("row %d cell %d: %w", rowIdx, cellIdx, errCell)
			}

			cells = append(cells, cell)
		}

		rows = append(rows, table.NewRow(cells...))
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows given", ErrTableInput)
	}

	return rows, nil
}

func parseCell(raw string) (table.Cell, error) {
	content := strings.TrimSpace(raw)
	cell := table.NewCell("")

	if content != "" && strings.ContainsRune("<>^", rune(content[0])) {
		align, errAlign := table.ParseAlignment(content[:1])
		if errAlign != nil {
			return cell, errors.Join(errAlign, ErrTableInput)
		}

		cell.Alignment = align
		content = strings.TrimSpace(content[1:])
	}

	if open := strings.LastIndexByte(content, '{'); open >= 0 && strings.HasSuffix(content, "}") {
		digits := content[open+1 : len(content)-1]
		if digits != "" && strings.Trim(digits, "0123456789") == "" {
			span, errSpan := strconv.Atoi(digits)
			if errSpan != nil || span < 1 || span > table.MaxSpan {
				return cell, fmt.Errorf("%w: span %q, want 1 to %d", ErrTableInput, digits, table.MaxSpan)
			}

			cell.Span = span
			content = strings.TrimSpace(content[:open])
		}
	}

	cell.Content = strings.ReplaceAll(content, `\n`, "\n")

	return cell, nil
}
