package candidate

import (
	"sort"

	"github.com/katalvlaran/sogra/graphdata"
	"github.com/katalvlaran/sogra/pattern"
)

// SeedPatterns returns one two-node, one-edge pattern per distinct edge
// type present in g, deduplicated by the label-tuple set (reusing
// EdgeTypeCounts, which is already aggregated per distinct type). Patterns
// are emitted in a fixed deterministic order (by label/elabel/dflag) so
// two runs over the same graph produce the same seed order.
func SeedPatterns(g *graphdata.DataGraph) []pattern.Pattern {
	counts := g.EdgeTypeCounts()
	types := make([]graphdata.EdgeType, 0, len(counts))
	for et := range counts {
		types = append(types, et)
	}
	sort.Slice(types, func(i, j int) bool { return graphdata.EdgeTypeLess(types[i], types[j]) })

	seeds := make([]pattern.Pattern, 0, len(types))
	for _, et := range types {
		var label *string
		if et.HasLabel {
			l := et.ELabel
			label = &l
		}
		p, err := pattern.New([]string{et.LU, et.LV}, []graphdata.Edge{{U: 0, V: 1, Label: label}}, g.Directed())
		if err != nil {
			// et was derived from g itself, so vlabels/edges are always valid.
			continue
		}
		seeds = append(seeds, p)
	}
	return seeds
}
