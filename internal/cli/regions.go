package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (c *CLI) regionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions <layout>",
		Short: "List the regions of a layout with their resolved constraints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadInput(args[0])
			if err != nil {
				return err
			}
			built, err := buildFromFile(file)
			if err != nil {
				return err
			}

			reg := built.gridder.Registry()
			printInfo("%d regions (%d rows x %d cols)", reg.Len(), reg.Rows(), reg.Cols())
			fmt.Println(regionsTable(built))
			return nil
		},
	}
}

// regionsTable renders the region list as a bordered table.
func regionsTable(built *builtLayout) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("REGION", "ROW", "COL", "W", "H", "ANCHOR", "FILL", "WEIGHT")

	for _, r := range built.gridder.Registry().Regions() {
		p := built.placements[r.Name]
		cs := p.Constraints
		t.Row(
			r.Name,
			strconv.Itoa(p.Row),
			strconv.Itoa(p.Col),
			strconv.Itoa(cs.GridWidth),
			strconv.Itoa(cs.GridHeight),
			cs.Anchor.String(),
			cs.Fill.String(),
			fmt.Sprintf("%g/%g", cs.WeightX, cs.WeightY),
		)
	}
	return t.String()
}
