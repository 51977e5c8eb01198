// Package layoutfile loads grid layout definitions from TOML files.
//
// A layout file bundles a 2D layout string with the default constraints
// and any per-region overrides that would otherwise be spread across code:
//
//	layout = """
//	{header +          +     }
//	{nav    body:fxy   +     }
//	{|      footer     +     }
//	"""
//	defaults = "weightx 1.0 weighty 0.0 anchor center"
//
//	[regions]
//	nav = "fill vertical"
//	footer = "inset_top 4"
//
// Load reads and decodes a file; Build turns it into a ready
// [gridder.Gridder] plus the fully merged placement of every region.
// All problems are reported eagerly: layout files are configuration, so a
// bad constraint string or an override for a region the layout never
// mentions fails the build rather than being dropped.
package layoutfile

import (
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/jknapka/Gridder/pkg/errors"
	"github.com/jknapka/Gridder/pkg/gridder"
)

// File is a decoded layout file.
type File struct {
	// Layout is the 2D layout string.
	Layout string `toml:"layout"`
	// Defaults is a canonical constraint string applied to every region.
	Defaults string `toml:"defaults"`
	// Regions maps region names to per-region override constraint strings.
	Regions map[string]string `toml:"regions"`
}

// Load reads and decodes a layout file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidLayoutFile, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes layout file content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayoutFile, err, "decode layout file")
	}
	if f.Layout == "" {
		return nil, errors.New(errors.ErrCodeInvalidLayoutFile, "layout file has no layout string")
	}
	return &f, nil
}

// Build parses the layout, applies the defaults, and resolves every region
// to its final placement (defaults, then embedded constraints, then the
// region's override string from the file). Overrides naming a region the
// layout does not contain are an error.
func (f *File) Build() (*gridder.Gridder, map[string]gridder.Placement, error) {
	g, err := gridder.New(f.Defaults)
	if err != nil {
		return nil, nil, err
	}
	if err := g.ParseLayout(f.Layout); err != nil {
		return nil, nil, err
	}

	reg := g.Registry()
	placements := make(map[string]gridder.Placement, reg.Len())
	for _, r := range reg.Regions() {
		p, err := g.Place(r.Name, f.Regions[r.Name])
		if err != nil {
			return nil, nil, err
		}
		placements[r.Name] = p
	}

	// Overrides must refer to regions the layout actually defines.
	for _, name := range sortedNames(f.Regions) {
		if _, ok := reg.Lookup(name); !ok {
			return nil, nil, errors.New(errors.ErrCodeRegionNotFound,
				"override for region %q, which the layout does not define", name)
		}
	}
	return g, placements, nil
}

// sortedNames returns map keys in stable order so error reporting is
// deterministic.
func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
