// Package cli implements the gridder command-line interface.
//
// This package provides commands for validating 2D grid layout files,
// listing the regions a layout defines, and previewing the resulting grid
// in the terminal. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - check: Parse a layout and validate every constraint string
//   - regions: List the parsed regions and their grid geometry
//   - preview: Render the grid in the terminal, optionally interactively
//
// Each command accepts either a path to a TOML layout file or a literal
// layout string.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jknapka/Gridder/pkg/buildinfo"
	"github.com/jknapka/Gridder/pkg/layoutfile"
)

// appName is the application name used for display.
const appName = "gridder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Gridder parses 2D text layouts and layout constraints",
		Long:         `Gridder interprets a 2D ASCII layout language and a compact constraint mini-language, turning a textual description of a grid into named, positioned, constraint-carrying regions.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.regionsCommand())
	root.AddCommand(c.previewCommand())

	return root
}

// loadInput resolves a command argument to a layout file. An argument
// naming an existing file is decoded as TOML; anything else is treated as
// a literal layout string with no defaults or overrides.
func loadInput(arg string) (*layoutfile.File, error) {
	if _, err := os.Stat(arg); err == nil {
		return layoutfile.Load(arg)
	}
	return &layoutfile.File{Layout: arg}, nil
}
