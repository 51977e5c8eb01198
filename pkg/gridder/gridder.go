package gridder

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jknapka/Gridder/pkg/errors"
)

// Placement is the final position and fully merged constraint record for
// one named region of a parsed layout.
type Placement struct {
	Row         int
	Col         int
	Constraints Constraints
}

// Gridder combines a set of default constraints with a parsed layout and
// produces placements for the layout's regions. Constraints can be supplied
// any way the caller likes:
//
//   - as one big string, like "gridwidth 2 weightx 3.0"
//   - as a list of strings, like "gridwidth 2", "weightx 3.0"
//   - as alternating names and values, like "gridwidth", 2, "weightx", 3.0
//   - or any combination of these
//
// A Gridder is not safe for concurrent use without external synchronization.
type Gridder struct {
	defaults Constraints
	layout   *Registry
}

// New creates a Gridder with the given default constraints applied on top
// of DefaultConstraints.
func New(defaults ...any) (*Gridder, error) {
	c := DefaultConstraints()
	if err := c.Apply(BuildConstraintString(defaults...)); err != nil {
		return nil, err
	}
	return &Gridder{defaults: c}, nil
}

// UpdateConstraints folds additional constraints into the defaults used by
// all future Place calls.
func (g *Gridder) UpdateConstraints(parts ...any) error {
	return g.defaults.Apply(BuildConstraintString(parts...))
}

// Defaults returns a copy of the current default constraints.
func (g *Gridder) Defaults() Constraints { return g.defaults }

// ParseLayout parses a layout string and stores the resulting registry for
// Place and Registry. A previously parsed layout is replaced.
func (g *Gridder) ParseLayout(text string) error {
	reg, err := ParseLayout(text)
	if err != nil {
		return err
	}
	g.layout = reg
	return nil
}

// Registry returns the registry from the last parsed layout, or nil if no
// layout has been parsed.
func (g *Gridder) Registry() *Registry { return g.layout }

// Place resolves the named region against the last parsed layout and
// returns its placement. The constraint record is built by layering, in
// order: the defaults, the region's embedded constraints, and the given
// overrides. The grid extent always comes from the layout, so any
// gridwidth/gridheight among the overrides is superseded; and unless the
// caller supplied an explicit weightx (weighty), it is set to 1/100 of the
// region's width (height) so multi-cell regions scale sensibly by default.
func (g *Gridder) Place(name string, overrides ...any) (Placement, error) {
	if g.layout == nil {
		return Placement{}, errors.New(errors.ErrCodeNoLayout, "no layout string has been parsed")
	}
	reg, ok := g.layout.Lookup(name)
	if !ok {
		return Placement{}, errors.New(errors.ErrCodeRegionNotFound,
			"no region named %q in layout", name)
	}

	merged := BuildConstraintString(append([]any{reg.Constraints}, overrides...)...)
	toks := strings.Fields(merged)

	var b strings.Builder
	b.WriteString(merged)
	fmt.Fprintf(&b, " gridwidth %d gridheight %d", reg.Width, reg.Height)
	if !containsAny(toks, "weightx", "wx", "w*") {
		fmt.Fprintf(&b, " weightx %g", float64(reg.Width)/100.0)
	}
	if !containsAny(toks, "weighty", "wy", "w*") {
		fmt.Fprintf(&b, " weighty %g", float64(reg.Height)/100.0)
	}

	c := g.defaults
	if err := c.Apply(strings.TrimSpace(b.String())); err != nil {
		return Placement{}, err
	}
	return Placement{Row: reg.Row, Col: reg.Col, Constraints: c}, nil
}

// containsAny reports whether toks contains any of the given names.
func containsAny(toks []string, names ...string) bool {
	for _, n := range names {
		if slices.Contains(toks, n) {
			return true
		}
	}
	return false
}
