package cli

import (
	"github.com/spf13/cobra"

	"github.com/jknapka/Gridder/pkg/gridder"
	"github.com/jknapka/Gridder/pkg/layoutfile"
)

// builtLayout bundles a parsed layout with the resolved placement of every
// region in it.
type builtLayout struct {
	gridder    *gridder.Gridder
	placements map[string]gridder.Placement
}

func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <layout>",
		Short: "Validate a layout and its constraint specs",
		Long: `Parse a layout, resolve every region against its embedded and
file-level constraints, and report the result. The argument is either a
path to a layout TOML file or an inline layout string.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)
			c.Logger.Debug("validating layout", "input", args[0])

			file, err := loadInput(args[0])
			if err != nil {
				return err
			}

			g, placements, err := file.Build()
			if err != nil {
				printError("layout is invalid")
				return err
			}
			prog.done("layout validated")

			reg := g.Registry()
			printSuccess("layout is valid")
			printDetail("%d regions over %d rows x %d cols", reg.Len(), reg.Rows(), reg.Cols())
			for _, r := range reg.Regions() {
				p := placements[r.Name]
				printDetail("%s: row=%d col=%d width=%d height=%d anchor=%s fill=%s",
					r.Name, p.Row, p.Col, p.Constraints.GridWidth, p.Constraints.GridHeight,
					p.Constraints.Anchor, p.Constraints.Fill)
			}
			return nil
		},
	}
}

// buildFromFile parses the file's layout and resolves every region placement.
// Shared by the regions and preview commands, which need the registry as well
// as the merged constraints.
func buildFromFile(file *layoutfile.File) (*builtLayout, error) {
	g, placements, err := file.Build()
	if err != nil {
		return nil, err
	}
	return &builtLayout{gridder: g, placements: placements}, nil
}
