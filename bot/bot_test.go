package bot_test

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/leighmacdonald/termtable/bot"
	"github.com/leighmacdonald/termtable/table"
	"github.com/stretchr/testify/require"
)

func ExampleBot() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tableBot, errBot := bot.New(bot.Opts{
		Token:   os.Getenv("DISCORD_TOKEN"),
		AppID:   os.Getenv("DISCORD_APP_ID"),
		GuildID: os.Getenv("DISCORD_GUILD_ID"),
	})
	if errBot != nil {
		panic(errBot)
	}
	defer tableBot.Close()

	tableBot.MustRegisterHandler(bot.TableCommand(), bot.TableHandler(table.NewBuilder().Style(table.Thin())))

	if errStart := tableBot.Start(ctx); errStart != nil {
		panic(errStart)
	}

	<-ctx.Done()
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := bot.New(bot.Opts{Token: "token"})
	require.ErrorIs(t, err, bot.ErrConfig)

	_, err = bot.New(bot.Opts{AppID: "123"})
	require.ErrorIs(t, err, bot.ErrConfig)

	tableBot, err := bot.New(bot.Opts{Token: "token", AppID: "123"})
	require.NoError(t, err)
	require.Equal(t, "Bot token", tableBot.Session().Token)
}

func TestMustRegisterHandlerRejectsDuplicates(t *testing.T) {
	tableBot, err := bot.New(bot.Opts{Token: "token", AppID: "123"})
	require.NoError(t, err)

	handler := bot.TableHandler(table.NewBuilder())
	tableBot.MustRegisterHandler(bot.TableCommand(), handler)
	require.Len(t, tableBot.Commands(), 1)

	require.Panics(t, func() {
		tableBot.MustRegisterHandler(bot.TableCommand(), handler)
	})
}

func TestTableHandler(t *testing.T) {
	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "table",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "rows", Type: discordgo.ApplicationCommandOptionString, Value: "name | qty; apples | >3"},
					{Name: "style", Type: discordgo.ApplicationCommandOptionString, Value: "simple"},
					{Name: "header", Type: discordgo.ApplicationCommandOptionBoolean, Value: true},
				},
			},
		},
	}

	embed, err := bot.TableHandler(table.NewBuilder())(context.Background(), nil, interaction)
	require.NoError(t, err)

	const expected = "```\n" + `+--------+-----+
|  name  | qty |
+--------+-----+
| apples |   3 |
+--------+-----+` + "\n```"
	require.Equal(t, expected, embed.Description)
}

func TestTableHandlerRejectsBadInput(t *testing.T) {
	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "table",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "rows", Type: discordgo.ApplicationCommandOptionString, Value: "a | b"},
					{Name: "style", Type: discordgo.ApplicationCommandOptionString, Value: "sparkly"},
				},
			},
		},
	}

	_, err := bot.TableHandler(table.NewBuilder())(context.Background(), nil, interaction)
	require.ErrorIs(t, err, bot.ErrTableInput)
	require.ErrorIs(t, err, table.ErrUnknownStyle)
}
