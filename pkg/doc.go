// Package pkg provides the core libraries for Gridder layout parsing.
//
// # Overview
//
// Gridder turns compact textual descriptions of 2D grid layouts into named,
// positioned, constraint-carrying regions. The pkg directory is organized
// into four areas:
//
//  1. [gridder] - Domain logic (layout language, constraint language, placement)
//  2. [layoutfile] - TOML layout files bundling a layout with constraints
//  3. [errors] - Structured errors with stable machine-readable codes
//  4. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Parse a layout and place a region:
//
//	import "github.com/jknapka/Gridder/pkg/gridder"
//
//	g, err := gridder.New("insets* 2")
//	if err != nil {
//	    // handle error
//	}
//	if err := g.ParseLayout("{header + +}{nav body:fxy +}"); err != nil {
//	    // handle error
//	}
//	p, _ := g.Place("body", "anchor center")
//	// p.Row, p.Col, p.Constraints describe the resolved placement
//
// # Main Packages
//
// [gridder] - The two mini-languages. ParseLayout interprets the 2D ASCII
// layout language (rows in braces, region names, cell extension tokens)
// into a Registry of regions. Constraints.Apply interprets the mnemonic
// constraint language ("wx 1 fill both i* 4") into a typed constraint
// record, and SplitEmbedded expands the compact comma form ("wx1,fxy")
// attached to region names.
//
// [layoutfile] - Declarative TOML files carrying a layout string, shared
// constraint defaults, and per-region overrides. Load/Parse decode the
// file; Build resolves every region to its final placement.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test -run Example     # Examples only
//
// [gridder]: https://pkg.go.dev/github.com/jknapka/Gridder/pkg/gridder
// [layoutfile]: https://pkg.go.dev/github.com/jknapka/Gridder/pkg/layoutfile
// [errors]: https://pkg.go.dev/github.com/jknapka/Gridder/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/jknapka/Gridder/pkg/buildinfo
package pkg
