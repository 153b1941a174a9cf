package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/leighmacdonald/termtable/table"
)

// TableCommand describes the /table slash command served by TableHandler.
func TableCommand() *discordgo.ApplicationCommand {
	minWidth := 1.0

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(table.StyleNames()))
	for _, name := range table.StyleNames() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
	}

	return &discordgo.ApplicationCommand{
		Name:        "table",
		Description: "Render rows as a text table",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "rows",
				Description: `Rows separated by ";", cells by "|". Prefix <, >, ^ to align, suffix {n} to span`,
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "style",
				Description: "Border style",
				Choices:     choices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "max_width",
				Description: "Maximum column width",
				MinValue:    &minWidth,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "header",
				Description: "Centre the first row as a header",
			},
		},
	}
}

// TableHandler renders the /table command's options on top of base.
func TableHandler(base table.Builder) Handler {
	return func(_ context.Context, _ *discordgo.Session, interaction *discordgo.InteractionCreate) (*discordgo.MessageEmbed, error) {
		opts := OptionMap(interaction.ApplicationCommandData().Options)

		tbl, errTable := opts.Table(base)
		if errTable != nil {
			return nil, errTable
		}

		return TableEmbed("", tbl)
	}
}
