package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leighmacdonald/termtable/table"
)

const (
	envStyle    = "TERMTABLE_STYLE"
	envMaxWidth = "TERMTABLE_MAX_WIDTH"
)

var ErrInvalidEnv = errors.New("invalid environment variable")

type renderOpts struct {
	format         string
	style          string
	maxWidth       int
	columnWidths   map[string]int
	noSeparators   bool
	noTopBorder    bool
	noBottomBorder bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a table document",
		Long: `Render a table document read from a file, or stdin when no file is given.

Documents may be TOML, YAML or JSON. The format is taken from the file
extension, or from --format when reading stdin. Flags override the document.`,
		Example: `  termtable render prices.toml
  termtable render --style rounded --max-width 30 prices.yaml
  cat prices.json | termtable render --format json --column-width 0=10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			return runRender(cmd, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "document format: toml, yaml or json")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "border style (see 'termtable styles')")
	cmd.Flags().IntVarP(&opts.maxWidth, "max-width", "w", 0, "maximum width of every column, 0 for unbounded")
	cmd.Flags().StringToIntVar(&opts.columnWidths, "column-width", nil, "maximum width of one column, as index=width")
	cmd.Flags().BoolVar(&opts.noSeparators, "no-separators", false, "do not draw lines between rows")
	cmd.Flags().BoolVar(&opts.noTopBorder, "no-top-border", false, "do not draw the top border")
	cmd.Flags().BoolVar(&opts.noBottomBorder, "no-bottom-border", false, "do not draw the bottom border")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	doc, err := readDocument(cmd.InOrStdin(), path, opts.format)
	if err != nil {
		return err
	}

	builder, err := doc.builder()
	if err != nil {
		return err
	}

	builder, err = opts.apply(cmd, builder, doc)
	if err != nil {
		return err
	}

	tbl := builder.Build()
	if errValid := tbl.Validate(); errValid != nil {
		logger.Warn("Table was adjusted to fit", "error", errValid)
	}

	output := tbl.Render()
	prog.done("Rendered table", "rows", len(tbl.Rows()), "columns", tbl.Columns())

	if output == "" {
		return nil
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)

	return err
}

func readDocument(stdin io.Reader, path, format string) (document, error) {
	if path == "" || path == "-" {
		if format == "" {
			return document{}, fmt.Errorf("%w: --format is required when reading stdin", ErrUnknownFormat)
		}

		return decodeDocument(stdin, format)
	}

	if format == "" {
		detected, err := formatFromPath(path)
		if err != nil {
			return document{}, err
		}

		format = detected
	}

	f, err := os.Open(path)
	if err != nil {
		return document{}, err
	}
	defer f.Close()

	return decodeDocument(f, format)
}

// apply layers flags, then the environment, over the document. Environment
// defaults only fill values neither a flag nor the document set.
func (o renderOpts) apply(cmd *cobra.Command, builder table.Builder, doc document) (table.Builder, error) {
	flags := cmd.Flags()

	styleName := o.style
	if !flags.Changed("style") && doc.Style == "" {
		styleName = os.Getenv(envStyle)
	}

	if styleName != "" {
		style, err := table.StyleByName(styleName)
		if err != nil {
			return builder, err
		}

		builder = builder.Style(style)
	}

	switch {
	case flags.Changed("max-width"):
		builder = builder.MaxColumnWidth(o.maxWidth)
	case doc.MaxColumnWidth == 0:
		if value, found := os.LookupEnv(envMaxWidth); found && value != "" {
			width, err := strconv.Atoi(value)
			if err != nil {
				return builder, fmt.Errorf("%w: %s=%q", ErrInvalidEnv, envMaxWidth, value)
			}

			builder = builder.MaxColumnWidth(width)
		}
	}

	for key, width := range o.columnWidths {
		column, err := strconv.Atoi(key)
		if err != nil || column < 0 {
			return builder, fmt.Errorf("%w: --column-width %q is not a column index", ErrInvalidDocument, key)
		}

		builder = builder.MaxWidthForColumn(column, width)
	}

	if o.noSeparators {
		builder = builder.SeparateRows(false)
	}

	if o.noTopBorder {
		builder = builder.TopBorder(false)
	}

	if o.noBottomBorder {
		builder = builder.BottomBorder(false)
	}

	return builder, nil
}
