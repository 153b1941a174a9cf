package table_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/termtable/table"
	"github.com/leighmacdonald/termtable/text"
	"github.com/stretchr/testify/require"
)

func TestPresetsAreValid(t *testing.T) {
	for _, name := range table.StyleNames() {
		t.Run(name, func(t *testing.T) {
			style, err := table.StyleByName(name)
			require.NoError(t, err)
			require.NoError(t, style.Validate())
		})
	}
}

func TestStyleByName(t *testing.T) {
	style, err := table.StyleByName(" Extended ")
	require.NoError(t, err)
	require.Equal(t, table.Extended(), style)

	_, err = table.StyleByName("fancy")
	require.ErrorIs(t, err, table.ErrUnknownStyle)
}

func TestStyleFromBorder(t *testing.T) {
	require.Equal(t, table.Extended(), table.StyleFromBorder(lipgloss.DoubleBorder()))
	require.Equal(t, table.Simple(), table.StyleFromBorder(lipgloss.ASCIIBorder()))
	require.Equal(t, table.Blank(), table.StyleFromBorder(lipgloss.Border{}))

	thin := table.Thin()
	require.Equal(t, '┌', thin.TopLeft)
	require.Equal(t, '┼', thin.Intersection)
	require.Equal(t, '│', thin.Vertical)
	require.Equal(t, '─', thin.Horizontal)

	rounded := table.Rounded()
	require.Equal(t, '╭', rounded.TopLeft)
	require.Equal(t, '╯', rounded.BottomRight)
}

func TestParseAlignment(t *testing.T) {
	align, err := table.ParseAlignment("center")
	require.NoError(t, err)
	require.Equal(t, table.AlignCenter, align)

	_, err = table.ParseAlignment("middle")
	require.ErrorIs(t, err, table.ErrUnknownAlignment)
	require.ErrorIs(t, err, text.ErrUnknownAlign)
	require.Contains(t, err.Error(), `"middle"`)
}
