package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leighmacdonald/termtable/table"
)

func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Show every border style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), styleSamples())

			return err
		},
	}
}

// styleSamples renders a small table in each preset, in name order.
func styleSamples() string {
	var out strings.Builder

	for _, name := range table.StyleNames() {
		style, _ := table.StyleByName(name)

		tbl := table.NewBuilder().
			Style(style).
			Header("style", "sample").
			Rows(
				table.TextRow(name, "left"),
				table.NewRow(table.NewCell("spans both").WithSpan(2).WithAlignment(table.AlignRight)),
			).
			Build()

		out.WriteString(name)
		out.WriteString("\n")
		out.WriteString(tbl.Render())
		out.WriteString("\n\n")
	}

	return out.String()
}
