package gridder

import (
	"testing"

	"github.com/jknapka/Gridder/pkg/errors"
)

// checkRegion asserts one region's full geometry and constraint string.
func checkRegion(t *testing.T, reg *Registry, name string, col, row, width, height int, constraints string) {
	t.Helper()
	r, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("Lookup(%q) = not found, want region", name)
	}
	if r.Col != col {
		t.Errorf("%s: Col = %d, want %d", name, r.Col, col)
	}
	if r.Row != row {
		t.Errorf("%s: Row = %d, want %d", name, r.Row, row)
	}
	if r.Width != width {
		t.Errorf("%s: Width = %d, want %d", name, r.Width, width)
	}
	if r.Height != height {
		t.Errorf("%s: Height = %d, want %d", name, r.Height, height)
	}
	if r.Constraints != constraints {
		t.Errorf("%s: Constraints = %q, want %q", name, r.Constraints, constraints)
	}
}

func TestParseLayout_SingleRow(t *testing.T) {
	reg, err := ParseLayout("{c1 + + c2}")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}
	checkRegion(t, reg, "c1", 0, 0, 3, 1, "")
	checkRegion(t, reg, "c2", 3, 0, 1, 1, "")
}

func TestParseLayout_FourRows(t *testing.T) {
	layout := "    {c1                 +   +     c2}    " +
		"    {c3:wx1,wy2,i*5,fxy +   c4    - }    " +
		"    {|                  -   -     c5}    " +
		"    {|                  -   c6    + }    "
	reg, err := ParseLayout(layout)
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	if reg.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", reg.Len())
	}
	checkRegion(t, reg, "c1", 0, 0, 3, 1, "")
	checkRegion(t, reg, "c2", 3, 0, 1, 1, "")
	checkRegion(t, reg, "c3", 0, 1, 2, 3, "wx 1 wy 2 i* 5 f xy")
	checkRegion(t, reg, "c4", 2, 1, 2, 1, "")
	checkRegion(t, reg, "c5", 3, 2, 1, 1, "")
	checkRegion(t, reg, "c6", 2, 3, 2, 1, "")

	if got := reg.Rows(); got != 4 {
		t.Errorf("Rows() = %d, want 4", got)
	}
	if got := reg.Cols(); got != 4 {
		t.Errorf("Cols() = %d, want 4", got)
	}
}

func TestParseLayout_CompactForm(t *testing.T) {
	// The same grid without any whitespace: identifiers are delimited by
	// the structural characters themselves.
	reg, err := ParseLayout("{c1++c2}{c3:wx1,wy2,i*5,fxy+c4-}{|--c5}{|-c6+}")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	checkRegion(t, reg, "c1", 0, 0, 3, 1, "")
	checkRegion(t, reg, "c3", 0, 1, 2, 3, "wx 1 wy 2 i* 5 f xy")
	checkRegion(t, reg, "c6", 2, 3, 2, 1, "")
}

func TestParseLayout_HistoricalSynonyms(t *testing.T) {
	// < and ^ behave exactly like + and |.
	reg, err := ParseLayout("{a < < b}{^ - c -}")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	checkRegion(t, reg, "a", 0, 0, 3, 2, "")
	checkRegion(t, reg, "b", 3, 0, 1, 1, "")
	checkRegion(t, reg, "c", 2, 1, 2, 1, "")
}

func TestParseLayout_Lookup(t *testing.T) {
	reg, err := ParseLayout("{c1 c2}")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	if r, ok := reg.Lookup("nobody"); ok {
		t.Errorf("Lookup(nobody) = %+v, want not found", r)
	}
}

func TestParseLayout_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		reg, err := ParseLayout(text)
		if err != nil {
			t.Fatalf("ParseLayout(%q) error = %v", text, err)
		}
		if reg.Len() != 0 {
			t.Errorf("ParseLayout(%q).Len() = %d, want 0", text, reg.Len())
		}
	}
}

func TestParseLayout_DegenerateExtensions(t *testing.T) {
	// Extension markers with nothing to extend are silent no-ops that
	// still advance the column cursor.
	reg, err := ParseLayout("{| + - a}")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	checkRegion(t, reg, "a", 3, 0, 1, 1, "")
}

func TestParseLayout_VerticalExtendSkipsRows(t *testing.T) {
	// The | in row 2 must find region a in row 0: the search scans
	// upward through all prior rows, not just the immediate one.
	reg, err := ParseLayout("{a b}{- c}{| d}")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	checkRegion(t, reg, "a", 0, 0, 1, 2, "")
	checkRegion(t, reg, "c", 1, 1, 1, 1, "")
}

func TestParseLayout_VerticalExtendNearestRowWins(t *testing.T) {
	// Regions in rows 0 and 1 both start in column 0; the | in row 2
	// must extend the nearer one.
	reg, err := ParseLayout("{a}{b}{|}")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	checkRegion(t, reg, "a", 0, 0, 1, 1, "")
	checkRegion(t, reg, "b", 0, 1, 1, 2, "")
}

func TestParseLayout_RowEndClearsCurrentRegion(t *testing.T) {
	// A + at the start of a new row must not extend the last region of
	// the previous row.
	reg, err := ParseLayout("{a}{+ b}")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	checkRegion(t, reg, "a", 0, 0, 1, 1, "")
	checkRegion(t, reg, "b", 1, 1, 1, 1, "")
}

func TestParseLayout_BadEmbeddedConstraintAbortsParse(t *testing.T) {
	_, err := ParseLayout("{a:frob1 b}")
	if err == nil {
		t.Fatal("ParseLayout() error = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidEmbedded) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidEmbedded)
	}
}

func TestParseLayout_RegionsInsertionOrder(t *testing.T) {
	reg, err := ParseLayout("{x y}{z}")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	var names []string
	for _, r := range reg.Regions() {
		names = append(names, r.Name)
	}
	want := []string{"x", "y", "z"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("Regions() order = %v, want %v", names, want)
		}
	}
}
