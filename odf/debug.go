package odf

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"odfc/utils/debug"
)

// String returns a readable dump of the catalog. It exists solely for manual
// inspection during debugging.
func (c *Catalog) String() string {
	if c == nil {
		return "<nil Catalog>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Language: %q country: %q", c.language, c.country)

	tw.Line(0, "Named styles: %d", len(c.defined))
	keys := slices.Collect(maps.Keys(c.defined))
	sort.Sort(natural.StringSlice(keys))
	for _, k := range keys {
		tw.Line(1, "Style[%q] display[%q]", k, c.defined[k])
	}

	tw.Line(0, "Automatic styles: %d", len(c.inline))
	keys = slices.Collect(maps.Keys(c.inline))
	sort.Sort(natural.StringSlice(keys))
	for _, k := range keys {
		if parent, ok := c.parents[k]; ok {
			tw.Line(1, "Style[%q] parent[%q]", k, parent)
		} else {
			tw.Line(1, "Style[%q]", k)
		}
		tw.Items(2, "rule", c.inline[k])
	}
	return tw.String()
}
