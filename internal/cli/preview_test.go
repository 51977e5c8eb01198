package cli

import (
	"testing"

	"github.com/jknapka/Gridder/pkg/gridder"
)

func TestCellGrid(t *testing.T) {
	reg, err := gridder.ParseLayout("{header + +}{nav body +}{| footer +}")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}

	grid := cellGrid(reg)

	if got, want := len(grid), 3; got != want {
		t.Fatalf("rows = %d, want %d", got, want)
	}
	if got, want := len(grid[0]), 3; got != want {
		t.Fatalf("cols = %d, want %d", got, want)
	}

	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "header"},
		{0, 1, "header"},
		{0, 2, "header"},
		{1, 0, "nav"},
		{1, 1, "body"},
		{1, 2, "body"},
		{2, 0, "nav"}, // | extends nav down
		{2, 1, "footer"},
		{2, 2, "footer"},
	}
	for _, tt := range tests {
		r := grid[tt.row][tt.col]
		if r == nil {
			t.Errorf("grid[%d][%d] = nil, want %q", tt.row, tt.col, tt.want)
			continue
		}
		if r.Name != tt.want {
			t.Errorf("grid[%d][%d] = %q, want %q", tt.row, tt.col, r.Name, tt.want)
		}
	}
}

func TestCellGridLeavesGapsNil(t *testing.T) {
	// Row 1 only reaches col 1, so cols 1 and 2 of row 1... the - fills
	// nothing since no region is current at the row start.
	reg, err := gridder.ParseLayout("{a b c}{- mid -}")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}

	grid := cellGrid(reg)

	if grid[1][0] != nil {
		t.Errorf("grid[1][0] = %q, want nil", grid[1][0].Name)
	}
	if grid[1][1] == nil || grid[1][1].Name != "mid" {
		t.Errorf("grid[1][1] = %v, want mid", grid[1][1])
	}
	// The trailing - extends mid.
	if grid[1][2] == nil || grid[1][2].Name != "mid" {
		t.Errorf("grid[1][2] = %v, want mid", grid[1][2])
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"nav", 10, "nav"},
		{"exactlyten", 10, "exactlyten"},
		{"longregionname", 10, "longregio…"},
		{"ab", 1, "a"},
	}
	for _, tt := range tests {
		if got := truncateName(tt.name, tt.width); got != tt.want {
			t.Errorf("truncateName(%q, %d) = %q, want %q", tt.name, tt.width, got, tt.want)
		}
	}
}

func TestLoadInputLiteral(t *testing.T) {
	file, err := loadInput("{a b}")
	if err != nil {
		t.Fatalf("loadInput() error = %v", err)
	}
	if file.Layout != "{a b}" {
		t.Errorf("Layout = %q, want the literal argument", file.Layout)
	}
	if file.Defaults != "" || len(file.Regions) != 0 {
		t.Error("literal input should carry no defaults or overrides")
	}
}
