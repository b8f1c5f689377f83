package candidate

import (
	"github.com/katalvlaran/sogra/canon"
	"github.com/katalvlaran/sogra/embed"
	"github.com/katalvlaran/sogra/graphdata"
	"github.com/katalvlaran/sogra/heuristics"
	"github.com/katalvlaran/sogra/pattern"
)

// Extensions yields every distinct one-edge extension of p consistent with
// at least one of its embeddings, deduplicated by the extended pattern's
// canonical key. Candidates come from the right-most path of p's
// canonical code: back-edges closing a cycle onto an ancestor of the
// deepest (right-most) node, and forward edges attaching a brand-new
// vertex.
//
// heur, if non-nil, narrows the forward-growth set to the right-most node
// alone (the Open Question resolved in DESIGN.md: heuristic mode trades
// completeness for a smaller search, and orders neighbor iteration by
// label rarity) and applies a degree-admissibility prune. allowed, if
// non-nil, restricts new edges to the given edge types (pre-filtered
// mode).
func Extensions(g *graphdata.DataGraph, p pattern.Pattern, embeddings []embed.Embedding, heur *heuristics.Heuristics, allowed map[graphdata.EdgeType]struct{}) []pattern.Pattern {
	code := canon.ComputeCode(p.Directed, p.VLabels, p.Edges)
	rmpath := canon.RightmostPath(code)
	rm := rmpath[len(rmpath)-1]
	ancestors := rmpath[:len(rmpath)-1]

	growthSet := rmpath
	if heur != nil {
		growthSet = []int{rm}
	}

	existing := p.EdgeSet()
	seen := make(map[canon.Key]struct{})
	var out []pattern.Pattern

	addCandidate := func(vlabels []string, edges []graphdata.Edge, newEdge graphdata.Edge) {
		if !edgeAllowed(p.Directed, newEdge, vlabels, existing, allowed) {
			return
		}
		cand, err := pattern.New(vlabels, edges, p.Directed)
		if err != nil {
			return
		}
		if _, dup := seen[cand.Key]; dup {
			return
		}
		seen[cand.Key] = struct{}{}
		out = append(out, cand)
	}

	for _, emb := range embeddings {
		for _, e := range backEdgeCandidates(g, p, emb, rm, ancestors) {
			addCandidate(p.VLabels, append(append([]graphdata.Edge(nil), p.Edges...), e), e)
		}
		for _, fc := range forwardEdgeCandidates(g, p, emb, growthSet, heur) {
			vlabels := append(append([]string(nil), p.VLabels...), fc.newVLabel)
			edges := append(append([]graphdata.Edge(nil), p.Edges...), fc.edge)
			addCandidate(vlabels, edges, fc.edge)
		}
	}

	return out
}

// edgeAllowed applies the common per-candidate filters from spec §4.X:
// skip a duplicate of an existing pattern edge, and (pre-filtered mode)
// skip an edge type absent from the allow-set.
func edgeAllowed(directed bool, e graphdata.Edge, vlabels []string, existing map[pattern.EdgeKey]struct{}, allowed map[graphdata.EdgeType]struct{}) bool {
	u, v := e.U, e.V
	if !directed && v < u {
		u, v = v, u
	}
	key := pattern.EdgeKey{U: u, V: v, Label: graphdata.LabelString(e.Label), HasLabel: e.Label != nil}
	if _, dup := existing[key]; dup {
		return false
	}
	if allowed != nil {
		et := graphdata.EdgeTypeOf(directed, vlabels[e.U], vlabels[e.V], e.Label)
		if _, ok := allowed[et]; !ok {
			return false
		}
	}
	return true
}

func backEdgeCandidates(g *graphdata.DataGraph, p pattern.Pattern, emb embed.Embedding, rm int, ancestors []int) []graphdata.Edge {
	var out []graphdata.Edge
	grm := emb[rm]
	for i := len(ancestors) - 1; i >= 0; i-- {
		w := ancestors[i]
		gw := emb[w]
		for _, nb := range g.Adj(grm) {
			if nb.To == gw {
				out = append(out, graphdata.Edge{U: rm, V: w, Label: nb.Label})
			}
		}
		if p.Directed {
			for _, nb := range g.Adj(gw) {
				if nb.To == grm {
					out = append(out, graphdata.Edge{U: w, V: rm, Label: nb.Label})
				}
			}
		}
	}
	return out
}

type forwardCandidate struct {
	edge      graphdata.Edge
	newVLabel string
}

func forwardEdgeCandidates(g *graphdata.DataGraph, p pattern.Pattern, emb embed.Embedding, growthSet []int, heur *heuristics.Heuristics) []forwardCandidate {
	inImage := make(map[int]bool, len(emb))
	for _, gn := range emb {
		inImage[gn] = true
	}
	patDeg := patternDegrees(p)
	newIdx := p.NumVertices()

	var out []forwardCandidate
	for _, u := range growthSet {
		gu := emb[u]
		for _, nb := range neighborOrder(g, heur, gu) {
			if inImage[nb.To] {
				continue
			}
			if heur != nil && !heur.DegreePrune(patDeg[u]+1, totalDegree(g, nb.To)) {
				continue
			}
			out = append(out, forwardCandidate{
				edge:      graphdata.Edge{U: u, V: newIdx, Label: nb.Label},
				newVLabel: g.VLabel(nb.To),
			})
		}
		if !p.Directed {
			continue
		}
		for _, nb := range neighborOrderRev(g, heur, gu) {
			if inImage[nb.To] {
				continue
			}
			if heur != nil && !heur.DegreePrune(patDeg[u]+1, totalDegree(g, nb.To)) {
				continue
			}
			out = append(out, forwardCandidate{
				edge:      graphdata.Edge{U: newIdx, V: u, Label: nb.Label},
				newVLabel: g.VLabel(nb.To),
			})
		}
	}
	return out
}

func neighborOrder(g *graphdata.DataGraph, heur *heuristics.Heuristics, u int) []graphdata.Neighbor {
	if heur != nil {
		return heur.NeighborOrder(u)
	}
	return g.Adj(u)
}

func neighborOrderRev(g *graphdata.DataGraph, heur *heuristics.Heuristics, u int) []graphdata.Neighbor {
	// Incoming-edge extensions always walk rev in its stored insertion
	// order; the rarity/degree heuristic only reorders outgoing neighbors
	// per spec §4.X's emission-order rule, which is phrased over adj.
	_ = heur
	return g.Rev(u)
}

func totalDegree(g *graphdata.DataGraph, v int) int {
	return len(g.Adj(v)) + len(g.Rev(v))
}

func patternDegrees(p pattern.Pattern) []int {
	deg := make([]int, p.NumVertices())
	for _, e := range p.Edges {
		deg[e.U]++
		deg[e.V]++
	}
	return deg
}
