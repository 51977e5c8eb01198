package gridder

import (
	"strconv"

	"github.com/jknapka/Gridder/pkg/errors"
)

// AnchorKind distinguishes the nine named anchor positions from a raw
// numeric code passed through from the caller's domain.
type AnchorKind int

const (
	// AnchorCenter anchors a region in the middle of its cell block.
	AnchorCenter AnchorKind = iota
	AnchorNorth
	AnchorSouth
	AnchorEast
	AnchorWest
	AnchorNortheast
	AnchorNorthwest
	AnchorSoutheast
	AnchorSouthwest
	// AnchorRaw carries an unvalidated integer code supplied by the caller.
	AnchorRaw
)

// Anchor selects where a region sits within its cell block. The zero value
// is the center anchor. Raw numeric codes are kept verbatim in Code so
// toolkit-specific constants survive a round trip through the parser.
type Anchor struct {
	Kind AnchorKind
	Code int // valid only when Kind == AnchorRaw
}

// String returns the canonical spelling of the anchor value.
func (a Anchor) String() string {
	switch a.Kind {
	case AnchorCenter:
		return "center"
	case AnchorNorth:
		return "north"
	case AnchorSouth:
		return "south"
	case AnchorEast:
		return "east"
	case AnchorWest:
		return "west"
	case AnchorNortheast:
		return "northeast"
	case AnchorNorthwest:
		return "northwest"
	case AnchorSoutheast:
		return "southeast"
	case AnchorSouthwest:
		return "southwest"
	case AnchorRaw:
		return strconv.Itoa(a.Code)
	}
	return "unknown"
}

// ParseAnchor interprets an anchor value string. Integer values pass
// through verbatim as raw codes; anything else must match one of the
// compass-direction synonyms, case-insensitively.
func ParseAnchor(value string) (Anchor, error) {
	if n, err := strconv.Atoi(value); err == nil {
		return Anchor{Kind: AnchorRaw, Code: n}, nil
	}
	switch fold(value) {
	case "center", "ctr", "c":
		return Anchor{Kind: AnchorCenter}, nil
	case "north", "n", "top":
		return Anchor{Kind: AnchorNorth}, nil
	case "south", "s", "bottom", "bot":
		return Anchor{Kind: AnchorSouth}, nil
	case "east", "e", "right", "r":
		return Anchor{Kind: AnchorEast}, nil
	case "west", "w", "left", "l":
		return Anchor{Kind: AnchorWest}, nil
	case "northeast", "ne", "topright", "tr":
		return Anchor{Kind: AnchorNortheast}, nil
	case "northwest", "nw", "topleft", "tl":
		return Anchor{Kind: AnchorNorthwest}, nil
	case "southeast", "se", "bottomright", "br":
		return Anchor{Kind: AnchorSoutheast}, nil
	case "southwest", "sw", "bottomleft", "bl":
		return Anchor{Kind: AnchorSouthwest}, nil
	}
	return Anchor{}, errors.New(errors.ErrCodeUnknownAnchor, "unknown anchor value %q", value)
}

// FillKind distinguishes the four named fill modes from a raw numeric code.
type FillKind int

const (
	// FillNone leaves the region at its natural size.
	FillNone FillKind = iota
	FillHorizontal
	FillVertical
	FillBoth
	// FillRaw carries an unvalidated integer code supplied by the caller.
	FillRaw
)

// Fill selects how a region grows to occupy its cell block. The zero value
// is no fill.
type Fill struct {
	Kind FillKind
	Code int // valid only when Kind == FillRaw
}

// String returns the canonical spelling of the fill value.
func (f Fill) String() string {
	switch f.Kind {
	case FillNone:
		return "none"
	case FillHorizontal:
		return "horizontal"
	case FillVertical:
		return "vertical"
	case FillBoth:
		return "both"
	case FillRaw:
		return strconv.Itoa(f.Code)
	}
	return "unknown"
}

// ParseFill interprets a fill value string. Integer values pass through
// verbatim as raw codes; anything else must match one of the fill-mode
// synonyms, case-insensitively.
func ParseFill(value string) (Fill, error) {
	if n, err := strconv.Atoi(value); err == nil {
		return Fill{Kind: FillRaw, Code: n}, nil
	}
	switch fold(value) {
	case "none", "neither", "n":
		return Fill{Kind: FillNone}, nil
	case "horizontal", "h", "x":
		return Fill{Kind: FillHorizontal}, nil
	case "vertical", "v", "y":
		return Fill{Kind: FillVertical}, nil
	case "both", "all", "xy", "yx", "hv", "vh":
		return Fill{Kind: FillBoth}, nil
	}
	return Fill{}, errors.New(errors.ErrCodeUnknownFill, "unknown fill value %q", value)
}
