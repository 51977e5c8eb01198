package gridder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jknapka/Gridder/pkg/errors"
)

// Insets holds the external padding around a region, in pixels.
type Insets struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Constraints is the fully typed layout parameter record for one region.
// A record is always fully populated: construct it with DefaultConstraints
// and update it by applying constraint strings. Apply only overwrites the
// fields a string explicitly names, so successive applications layer
// naturally (defaults, then embedded constraints, then per-call overrides).
//
// Constraint names, synonyms, and value types:
//
//	gridwidth, width, wd               integer
//	gridheight, height, ht             integer
//	weightx, wx                        float
//	weighty, wy                        float
//	weight*, w*                        float (both weights)
//	anchor, a                          anchor value (see ParseAnchor)
//	fill, f                            fill value (see ParseFill)
//	ipadx, px                          integer
//	ipady, py                          integer
//	ipad*, p*                          integer (both paddings)
//	inset_top, insets_top, it          integer
//	inset_bottom, insets_bottom, ib    integer
//	inset_left, insets_left, il        integer
//	inset_right, insets_right, ir      integer
//	insets*, inset*, i*                integer (all four insets)
//
// Names and values are case-insensitive.
type Constraints struct {
	GridWidth  int
	GridHeight int
	WeightX    float64
	WeightY    float64
	Anchor     Anchor
	Fill       Fill
	PadX       int
	PadY       int
	Insets     Insets
}

// DefaultConstraints returns a record populated with the default value of
// every field: a 1x1 extent, zero weights and paddings, a center anchor,
// and no fill.
func DefaultConstraints() Constraints {
	return Constraints{
		GridWidth:  1,
		GridHeight: 1,
		Anchor:     Anchor{Kind: AnchorCenter},
		Fill:       Fill{Kind: FillNone},
	}
}

// fold case-folds a mnemonic or value for comparison.
func fold(s string) string { return strings.ToLower(s) }

// mnemonic binds one constraint name to the setter that interprets its
// value. The matched name is passed through so coercion errors can report
// the mnemonic exactly as the user wrote it.
type mnemonic struct {
	name string
	set  func(c *Constraints, name, value string) error
}

// mnemonics is the single ordered table shared by the canonical interpreter
// and the embedded-constraint splitter. The declared order is load-bearing
// for the splitter, which takes the first name that prefixes a token:
// "anchor" must come before "a" and "fill" before "f", or the one-letter
// names would swallow the long spellings.
var mnemonics = []mnemonic{
	{"gridwidth", setGridWidth},
	{"width", setGridWidth},
	{"wd", setGridWidth},
	{"gridheight", setGridHeight},
	{"height", setGridHeight},
	{"ht", setGridHeight},
	{"weightx", setWeightX},
	{"wx", setWeightX},
	{"weighty", setWeightY},
	{"wy", setWeightY},
	{"w*", setWeightBoth},
	{"weight*", setWeightBoth},
	{"anchor", setAnchor},
	{"a", setAnchor},
	{"fill", setFill},
	{"f", setFill},
	{"ipadx", setPadX},
	{"px", setPadX},
	{"ipady", setPadY},
	{"py", setPadY},
	{"ipad*", setPadBoth},
	{"p*", setPadBoth},
	{"inset_top", setInsetTop},
	{"insets_top", setInsetTop},
	{"it", setInsetTop},
	{"inset_bottom", setInsetBottom},
	{"insets_bottom", setInsetBottom},
	{"ib", setInsetBottom},
	{"inset_left", setInsetLeft},
	{"insets_left", setInsetLeft},
	{"il", setInsetLeft},
	{"inset_right", setInsetRight},
	{"insets_right", setInsetRight},
	{"ir", setInsetRight},
	{"insets*", setInsetAll},
	{"inset*", setInsetAll},
	{"i*", setInsetAll},
}

// Apply interprets a canonical constraint string and updates the record in
// place. The string is a whitespace-separated sequence of "name value"
// pairs; an odd token count, an unknown name, or an uninterpretable value
// is a fatal error and the record is left partially updated only up to the
// offending pair. An empty or all-whitespace string is a no-op.
func (c *Constraints) Apply(s string) error {
	toks := strings.Fields(s)
	if len(toks) == 0 {
		return nil
	}
	if len(toks)%2 != 0 {
		return errors.New(errors.ErrCodeIncompletePair,
			"incomplete constraint pair: odd number of tokens in %q", s)
	}
	for i := 0; i < len(toks); i += 2 {
		if err := c.interpret(toks[i], toks[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// interpret applies a single name/value pair to the record.
func (c *Constraints) interpret(name, value string) error {
	name, value = fold(name), fold(value)
	for _, m := range mnemonics {
		if m.name == name {
			return m.set(c, name, value)
		}
	}
	return errors.New(errors.ErrCodeUnknownConstraint, "unknown constraint name %q", name)
}

// SplitEmbedded expands the comma-separated mnemonicValue tokens of an
// embedded constraint spec (the part of a layout identifier after the
// colon) into a canonical "name value name value ..." string. Each token is
// split by trying the mnemonic table in declared order and taking the first
// name that prefixes it; a token no table entry prefixes is a fatal error.
func SplitEmbedded(spec string) (string, error) {
	var b strings.Builder
	for _, tok := range strings.Split(spec, ",") {
		name, value, ok := splitMnemonic(tok)
		if !ok {
			return "", errors.New(errors.ErrCodeInvalidEmbedded,
				"unrecognized embedded constraint %q", tok)
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteByte(' ')
		b.WriteString(value)
	}
	return b.String(), nil
}

// splitMnemonic splits a run-together mnemonicValue token such as "wx1.0"
// into its name and raw value.
func splitMnemonic(tok string) (name, value string, ok bool) {
	for _, m := range mnemonics {
		if strings.HasPrefix(tok, m.name) {
			return tok[:len(m.name)], tok[len(m.name):], true
		}
	}
	return "", "", false
}

// BuildConstraintString collapses a heterogeneous list of constraint parts
// into one canonical string with single spaces between tokens. Parts may be
// whole constraint strings ("weightx 1.0 fill both"), bare names, or
// numeric values; nil parts are skipped. This lets callers supply
// constraints as one string, several strings, or alternating name/value
// pairs interchangeably.
func BuildConstraintString(parts ...any) string {
	var b strings.Builder
	for _, p := range parts {
		if p == nil {
			continue
		}
		for _, tok := range strings.Fields(fmt.Sprint(p)) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tok)
		}
	}
	return b.String()
}

// =============================================================================
// Field Setters
// =============================================================================

func toInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidValue,
			"invalid integer value %q for constraint %s", value, name)
	}
	return n, nil
}

func toFloat(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidValue,
			"invalid float value %q for constraint %s", value, name)
	}
	return f, nil
}

func setGridWidth(c *Constraints, name, value string) error {
	n, err := toInt(name, value)
	if err != nil {
		return err
	}
	c.GridWidth = n
	return nil
}

func setGridHeight(c *Constraints, name, value string) error {
	n, err := toInt(name, value)
	if err != nil {
		return err
	}
	c.GridHeight = n
	return nil
}

func setWeightX(c *Constraints, name, value string) error {
	f, err := toFloat(name, value)
	if err != nil {
		return err
	}
	c.WeightX = f
	return nil
}

func setWeightY(c *Constraints, name, value string) error {
	f, err := toFloat(name, value)
	if err != nil {
		return err
	}
	c.WeightY = f
	return nil
}

func setWeightBoth(c *Constraints, name, value string) error {
	f, err := toFloat(name, value)
	if err != nil {
		return err
	}
	c.WeightX, c.WeightY = f, f
	return nil
}

func setAnchor(c *Constraints, _, value string) error {
	a, err := ParseAnchor(value)
	if err != nil {
		return err
	}
	c.Anchor = a
	return nil
}

func setFill(c *Constraints, _, value string) error {
	f, err := ParseFill(value)
	if err != nil {
		return err
	}
	c.Fill = f
	return nil
}

func setPadX(c *Constraints, name, value string) error {
	n, err := toInt(name, value)
	if err != nil {
		return err
	}
	c.PadX = n
	return nil
}

func setPadY(c *Constraints, name, value string) error {
	n, err := toInt(name, value)
	if err != nil {
		return err
	}
	c.PadY = n
	return nil
}

func setPadBoth(c *Constraints, name, value string) error {
	n, err := toInt(name, value)
	if err != nil {
		return err
	}
	c.PadX, c.PadY = n, n
	return nil
}

func setInsetTop(c *Constraints, name, value string) error {
	n, err := toInt(name, value)
	if err != nil {
		return err
	}
	c.Insets.Top = n
	return nil
}

func setInsetBottom(c *Constraints, name, value string) error {
	n, err := toInt(name, value)
	if err != nil {
		return err
	}
	c.Insets.Bottom = n
	return nil
}

func setInsetLeft(c *Constraints, name, value string) error {
	n, err := toInt(name, value)
	if err != nil {
		return err
	}
	c.Insets.Left = n
	return nil
}

func setInsetRight(c *Constraints, name, value string) error {
	n, err := toInt(name, value)
	if err != nil {
		return err
	}
	c.Insets.Right = n
	return nil
}

func setInsetAll(c *Constraints, name, value string) error {
	n, err := toInt(name, value)
	if err != nil {
		return err
	}
	c.Insets = Insets{Top: n, Bottom: n, Left: n, Right: n}
	return nil
}
