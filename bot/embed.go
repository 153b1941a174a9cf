package bot

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/leighmacdonald/termtable/table"
)

var ErrTableTooLarge = errors.New("table too large for an embed")

const (
	// maxDescription is discord's limit on embed descriptions, in characters.
	maxDescription = 4096
	fence          = "```"
	colourOK       = 0x3ba55c
	colourError    = 0xed4245
)

// TableEmbed renders tbl into a fenced code block so discord keeps it in a
// monospace font. Tables that would not fit in an embed description fail
// with ErrTableTooLarge rather than being cut off.
func TableEmbed(title string, tbl *table.Table) (*discordgo.MessageEmbed, error) {
	description := CodeBlock(tbl.Render())

	if size := utf8.RuneCountInString(description); size > maxDescription {
		return nil, fmt.Errorf("%w: %d characters, limit is %d", ErrTableTooLarge, size, maxDescription)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colourOK,
	}, nil
}

// CodeBlock wraps rendered in a code fence. Backticks inside the table are
// swapped for a lookalike so they cannot close the fence early.
func CodeBlock(rendered string) string {
	rendered = strings.ReplaceAll(rendered, "`", "ˋ")

	return fence + "\n" + rendered + "\n" + fence
}

func ErrorEmbed(err error) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: err.Error(),
		Color:       colourError,
	}
}
