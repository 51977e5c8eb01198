// Package gridder interprets two small text languages for describing
// rectangular grid layouts: a 2D layout language that places named regions
// on a grid, and a constraint language that maps short mnemonic tokens to
// typed layout parameters.
//
// # The 2D Layout Language
//
// A layout string represents a rectangular array of grid cells as rows
// delimited by curly brackets. For example:
//
//	layout := "    {c1                 + + c2}    " +
//	          "    {c3:wx1,wy2,i*5,fxy + c4 -}    " +
//	          "    {|                  - - c5}    " +
//	          "    {|                  - c6 +}    "
//
// Here c1 occupies the first three cells of row 0 (+ extends the region to
// its left into the next column), c2 the fourth cell of row 0, and c3 the
// first two cells of row 1 while extending down to row 3 (| extends the
// region directly above into the current row). The - character occupies a
// cell; when it follows a region in the same row it extends that region,
// otherwise it fills empty space. < and ^ are historical synonyms for + and |.
// Whitespace is never significant except to delimit identifiers.
//
// An identifier may carry embedded constraints after a colon, written as a
// comma-separated list of mnemonicValue tokens with no internal separator
// (c3 above sets weightx 1, weighty 2, all insets 5, and fill xy).
//
// # The Constraint Language
//
// Canonical constraint strings are whitespace-separated "name value" pairs.
// Names and values are case-insensitive and drawn from a fixed mnemonic
// table (see the Constraints type). Wildcard mnemonics such as w* and i*
// fan one value out to several fields. Applying a constraint string only
// overwrites the fields it names; everything else keeps its prior value.
//
// # Usage
//
//	g, err := gridder.New("weightx 1.0 weighty 0.0", "anchor center", "fill", "xy")
//	if err != nil { ... }
//	if err := g.ParseLayout(layout); err != nil { ... }
//	p, err := g.Place("c3", "fill horizontal")
//	// p.Row, p.Col, p.Constraints describe where and how c3 is placed.
//
// All fatal conditions surface synchronously as coded errors from
// github.com/jknapka/Gridder/pkg/errors; these interpreters run at
// configuration time, so failing loudly beats defaulting silently.
package gridder
