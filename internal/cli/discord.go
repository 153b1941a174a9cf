package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leighmacdonald/termtable/bot"
	"github.com/leighmacdonald/termtable/table"
)

const (
	envDiscordToken   = "DISCORD_TOKEN"
	envDiscordAppID   = "DISCORD_APP_ID"
	envDiscordGuildID = "DISCORD_GUILD_ID"
)

type discordOpts struct {
	guildID    string
	style      string
	unregister bool
}

func (c *CLI) discordCommand() *cobra.Command {
	var opts discordOpts

	cmd := &cobra.Command{
		Use:   "discord",
		Short: "Serve the /table slash command on discord",
		Long: `Connect to discord and answer /table slash commands with rendered tables.

The bot token and application ID are read from DISCORD_TOKEN and
DISCORD_APP_ID. Commands are registered to DISCORD_GUILD_ID, or --guild,
when set, and globally otherwise. The bot runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runDiscord(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.guildID, "guild", "", "register commands to this guild only")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "default border style")
	cmd.Flags().BoolVar(&opts.unregister, "unregister", false, "remove the commands on shutdown")

	return cmd
}

func (c *CLI) runDiscord(cmd *cobra.Command, opts discordOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	guildID := opts.guildID
	if guildID == "" {
		guildID = os.Getenv(envDiscordGuildID)
	}

	base, err := discordBase(opts.style)
	if err != nil {
		return err
	}

	tableBot, err := bot.New(bot.Opts{
		Token:             os.Getenv(envDiscordToken),
		AppID:             os.Getenv(envDiscordAppID),
		GuildID:           guildID,
		UnregisterOnClose: opts.unregister,
		Logger:            slog.New(logger),
	})
	if err != nil {
		return fmt.Errorf("%w: set %s and %s", err, envDiscordToken, envDiscordAppID)
	}

	tableBot.MustRegisterHandler(bot.TableCommand(), bot.TableHandler(base))

	if err := tableBot.Start(ctx); err != nil {
		return err
	}
	defer tableBot.Close()

	logger.Info("Serving slash commands", "commands", len(tableBot.Commands()), "guild", guildID)
	<-ctx.Done()

	return ctx.Err()
}

// discordBase is the builder every /table reply starts from. The flag wins
// over TERMTABLE_STYLE, and the simple style is used when neither is set.
func discordBase(styleName string) (table.Builder, error) {
	if styleName == "" {
		styleName = os.Getenv(envStyle)
	}

	style := table.Simple()

	if styleName != "" {
		var err error

		style, err = table.StyleByName(styleName)
		if err != nil {
			return table.Builder{}, err
		}
	}

	return table.NewBuilder().Style(style), nil
}
