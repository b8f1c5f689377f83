package heuristics

import (
	"sort"

	"github.com/katalvlaran/sogra/graphdata"
)

// Heuristics answers label-rarity and degree queries against a DataGraph,
// computing each answer from the graph on demand; one value is reused
// across every candidate-generation call in a mining run.
type Heuristics struct {
	g *graphdata.DataGraph
}

// New derives a Heuristics view over g. g must outlive the Heuristics.
func New(g *graphdata.DataGraph) *Heuristics {
	return &Heuristics{g: g}
}

// LabelRarity returns the number of graph nodes carrying lab — rarer
// labels (smaller counts) should be preferred first when ordering
// candidate extensions, since they narrow the search fastest.
func (h *Heuristics) LabelRarity(lab string) int {
	return len(h.g.Nodes(lab))
}

// NeighborOrder returns u's neighbors sorted by ascending label rarity of
// the neighbor, then descending degree of the neighbor — rare, high-degree
// neighbors are explored first.
func (h *Heuristics) NeighborOrder(u int) []graphdata.Neighbor {
	nbs := append([]graphdata.Neighbor(nil), h.g.Adj(u)...)
	sort.SliceStable(nbs, func(i, j int) bool {
		ri := h.LabelRarity(h.g.VLabel(nbs[i].To))
		rj := h.LabelRarity(h.g.VLabel(nbs[j].To))
		if ri != rj {
			return ri < rj
		}
		return h.degree(nbs[i].To) > h.degree(nbs[j].To)
	})
	return nbs
}

func (h *Heuristics) degree(v int) int {
	return len(h.g.Adj(v))
}

// DegreePrune reports whether a graph node of degree have can support a
// pattern node that, after the extension under consideration, needs
// degree need.
func (h *Heuristics) DegreePrune(need, have int) bool {
	return have >= need
}
