package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jknapka/Gridder/pkg/errors"
	"github.com/jknapka/Gridder/pkg/gridder"
)

func (c *CLI) previewCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "preview <layout>",
		Short: "Render a layout as a terminal grid",
		Long: `Render the cells of a layout as a colored terminal grid. Each
region occupies the cells its width and height span; its name is shown
in the origin cell. With --interactive, open a browsable view instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadInput(args[0])
			if err != nil {
				return err
			}
			built, err := buildFromFile(file)
			if err != nil {
				return err
			}

			if interactive {
				model := newPreviewModel(built)
				if _, err := tea.NewProgram(model).Run(); err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "interactive preview failed")
				}
				return nil
			}

			fmt.Println(renderGrid(built.gridder.Registry()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse regions interactively")
	return cmd
}

// =============================================================================
// Static Grid Rendering
// =============================================================================

// cellGrid maps every grid cell to the region that covers it, or nil for
// cells no region spans.
func cellGrid(reg *gridder.Registry) [][]*gridder.Region {
	rows, cols := reg.Rows(), reg.Cols()
	grid := make([][]*gridder.Region, rows)
	for r := range grid {
		grid[r] = make([]*gridder.Region, cols)
	}
	for _, region := range reg.Regions() {
		for r := region.Row; r < region.Row+region.Height && r < rows; r++ {
			for c := region.Col; c < region.Col+region.Width && c < cols; c++ {
				if grid[r][c] == nil {
					grid[r][c] = region
				}
			}
		}
	}
	return grid
}

// renderGrid draws the layout as fixed-width colored cells. The origin cell
// of each region carries its name; spanned cells repeat the region's color.
func renderGrid(reg *gridder.Registry) string {
	const cellWidth = 10

	grid := cellGrid(reg)
	colorOf := make(map[string]lipgloss.Color, reg.Len())
	for i, region := range reg.Regions() {
		colorOf[region.Name] = regionColors[i%len(regionColors)]
	}

	emptyStyle := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Foreground(colorDim)

	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		cells := make([]string, 0, len(row))
		for c, region := range row {
			switch {
			case region == nil:
				cells = append(cells, emptyStyle.Render("·"))
			case region.Row == r && region.Col == c:
				style := lipgloss.NewStyle().
					Width(cellWidth).
					Align(lipgloss.Center).
					Bold(true).
					Foreground(colorOf[region.Name])
				cells = append(cells, style.Render(truncateName(region.Name, cellWidth)))
			default:
				style := lipgloss.NewStyle().
					Width(cellWidth).
					Align(lipgloss.Center).
					Foreground(colorOf[region.Name])
				cells = append(cells, style.Render("─"))
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return b.String()
}

func truncateName(name string, width int) string {
	if len(name) <= width {
		return name
	}
	if width <= 1 {
		return name[:width]
	}
	return name[:width-1] + "…"
}
