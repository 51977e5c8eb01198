package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jknapka/Gridder/pkg/gridder"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// previewModel - Interactive region browsing
// =============================================================================

// previewModel is the bubbletea model for browsing a layout's regions. The
// grid is drawn with the selected region highlighted, alongside the region
// list and the resolved constraints of the selection.
type previewModel struct {
	built   *builtLayout
	regions []*gridder.Region
	cursor  int
}

func newPreviewModel(built *builtLayout) previewModel {
	return previewModel{
		built:   built,
		regions: built.gridder.Registry().Regions(),
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.regions)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Preview"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	b.WriteString(renderGrid(m.built.gridder.Registry()))
	b.WriteString("\n\n")

	for i, r := range m.regions {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-12s row=%d col=%d", cursor, r.Name, r.Row, r.Col)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.regions) > 0 {
		b.WriteString("\n")
		b.WriteString(m.detailPane())
	}

	return b.String()
}

// detailPane shows the fully resolved constraints of the selected region.
func (m previewModel) detailPane() string {
	r := m.regions[m.cursor]
	p := m.built.placements[r.Name]
	cs := p.Constraints

	var b strings.Builder
	b.WriteString(listDimStyle.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")
	b.WriteString(StyleValue.Render(r.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  size     %dx%d cells", cs.GridWidth, cs.GridHeight)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  weight   x=%g y=%g", cs.WeightX, cs.WeightY)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  anchor   %s", cs.Anchor)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  fill     %s", cs.Fill)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  padding  x=%d y=%d", cs.PadX, cs.PadY)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  insets   t=%d b=%d l=%d r=%d",
		cs.Insets.Top, cs.Insets.Bottom, cs.Insets.Left, cs.Insets.Right)))
	return b.String()
}
