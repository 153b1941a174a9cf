package bot_test

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/leighmacdonald/termtable/bot"
	"github.com/leighmacdonald/termtable/table"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	rows, err := bot.ParseRows(`^Fruit{2}; apples | >3; pears\nnashi | 12 ;`)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, table.Cell{Content: "Fruit", Alignment: table.AlignCenter, Span: 2}, rows[0].Cells[0])
	require.Equal(t, table.Cell{Content: "3", Alignment: table.AlignRight, Span: 1}, rows[1].Cells[1])
	require.Equal(t, "pears\nnashi", rows[2].Cells[0].Content)
	require.Equal(t, "12", rows[2].Cells[1].Content)
}

func TestParseRowsWidestSpan(t *testing.T) {
	rows, err := bot.ParseRows("a{256} | b")
	require.NoError(t, err)
	require.Equal(t, table.MaxSpan, rows[0].Cells[0].Span)
	require.Equal(t, table.MaxSpan+1, rows[0].Columns())
}

func TestParseRowsKeepsBracesThatAreNotSpans(t *testing.T) {
	rows, err := bot.ParseRows("map{a} | {}")
	require.NoError(t, err)
	require.Equal(t, "map{a}", rows[0].Cells[0].Content)
	require.Equal(t, "{}", rows[0].Cells[1].Content)
}

func TestParseRowsErrors(t *testing.T) {
	for _, input := range []string{"", "  ; ;", "a{0}", "a{257}", "a{99999999999}", "a | b{99999999999999999999}"} {
		_, err := bot.ParseRows(input)
		require.ErrorIs(t, err, bot.ErrTableInput, input)
	}
}

func TestCommandOptions(t *testing.T) {
	opts := bot.OptionMap([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "rows", Value: "a|b"},
		{Name: "max_width", Value: float64(4)},
		{Name: "header", Value: true},
	})

	require.Equal(t, "a|b", opts.String("rows"))
	require.Empty(t, opts.String("missing"))
	require.Empty(t, opts.String("max_width"))
	require.Equal(t, 4, opts.Int("max_width"))
	require.Zero(t, opts.Int("rows"))
	require.True(t, opts.Bool("header"))
	require.False(t, opts.Bool("missing"))
}

func TestCommandOptionsTable(t *testing.T) {
	opts := bot.OptionMap([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "rows", Value: "a fairly long cell | b"},
		{Name: "max_width", Value: float64(6)},
	})

	tbl, err := opts.Table(table.NewBuilder().Style(table.Simple()))
	require.NoError(t, err)
	require.Equal(t, []int{6, 1}, tbl.Widths())
	require.Equal(t, table.Simple(), tbl.Style())
}

func TestTableEmbed(t *testing.T) {
	tbl := table.NewBuilder().Style(table.Simple()).Rows(table.TextRow("`code`")).Build()

	embed, err := bot.TableEmbed("title", tbl)
	require.NoError(t, err)
	require.Equal(t, "title", embed.Title)
	require.True(t, strings.HasPrefix(embed.Description, "```\n+"))
	require.True(t, strings.HasSuffix(embed.Description, "+\n```"))
	require.Equal(t, 2, strings.Count(embed.Description, "```"))
}

func TestTableEmbedTooLarge(t *testing.T) {
	tbl := table.New()
	for range 200 {
		tbl.AddRow(table.TextRow("some cell content", "more content"))
	}

	_, err := bot.TableEmbed("", tbl)
	require.ErrorIs(t, err, bot.ErrTableTooLarge)
}

func TestErrorEmbed(t *testing.T) {
	embed := bot.ErrorEmbed(bot.ErrTableInput)
	require.Equal(t, "Error", embed.Title)
	require.Equal(t, bot.ErrTableInput.Error(), embed.Description)
}
