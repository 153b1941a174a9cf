// Package cli implements the termtable command-line interface.
//
// The CLI is a thin collaborator around the table package: it reads table
// documents (TOML, YAML or JSON), renders them, and can serve the same
// rendering to discord through the bot package. Commands are built with
// cobra and log through charmbracelet/log, which is also installed as the
// slog default so library code logging through slog shares the output.
//
// # Commands
//
//   - render: render a table document from a file or stdin
//   - styles: print a sample of every border style
//   - discord: serve the /table slash command
//
// # Environment
//
// A .env file in the working directory is loaded on start. TERMTABLE_STYLE
// and TERMTABLE_MAX_WIDTH provide defaults for flags that are not given,
// DISCORD_TOKEN, DISCORD_APP_ID and DISCORD_GUILD_ID configure the bot.
package cli

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const appName = "termtable"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level, and makes its logger the slog
// default.
func New(w io.Writer, level log.Level) *CLI {
	logger := newLogger(w, level)
	slog.SetDefault(slog.New(logger))

	return &CLI{Logger: logger}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "termtable renders text tables",
		Long:         `termtable lays out rows of text cells as aligned, bordered tables for terminals, logs and chat.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c.loadEnv()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			return nil
		},
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.discordCommand())

	return root
}

// loadEnv reads .env if there is one. Variables already set win.
func (c *CLI) loadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		c.Logger.Warn("Could not load .env", "error", err)
	}
}
