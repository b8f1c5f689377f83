package pattern

import (
	"github.com/katalvlaran/sogra/canon"
	"github.com/katalvlaran/sogra/graphdata"
)

// New validates and constructs a Pattern, computing its canonical Key.
// Callers are responsible for connectivity (invariant P2): New does not
// verify it, since every caller in this module builds patterns by either
// a single seed edge or an extension of an already-connected pattern.
func New(vlabels []string, edges []graphdata.Edge, directed bool) (Pattern, error) {
	if len(vlabels) == 0 {
		return Pattern{}, ErrNoVertices
	}
	n := len(vlabels)
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return Pattern{}, ErrNodeOutOfRange
		}
	}

	p := Pattern{
		Directed: directed,
		VLabels:  append([]string(nil), vlabels...),
		Edges:    append([]graphdata.Edge(nil), edges...),
	}
	code := canon.ComputeCode(directed, p.VLabels, p.Edges)
	p.Key = canon.KeyOf(directed, code)

	return p, nil
}

// NumEdges returns the edge count.
func (p Pattern) NumEdges() int { return len(p.Edges) }

// NumVertices returns the vertex count.
func (p Pattern) NumVertices() int { return len(p.VLabels) }

// EdgeKey is a comparable identity for one pattern edge, normalized so
// *string labels with equal values (but distinct pointers) compare equal
// as map keys — unlike graphdata.Edge itself, whose Label is a pointer.
type EdgeKey struct {
	U, V     int
	Label    string
	HasLabel bool
}

// EdgeSet returns a membership set of the pattern's edges, normalized the
// same way graphdata does for undirected edges (min, max endpoint order),
// for use by callers that need fast "is this edge already in the
// pattern" checks (e.g. candidate generation's duplicate-edge filter).
func (p Pattern) EdgeSet() map[EdgeKey]struct{} {
	set := make(map[EdgeKey]struct{}, len(p.Edges))
	for _, e := range p.Edges {
		u, v := e.U, e.V
		if !p.Directed && v < u {
			u, v = v, u
		}
		set[EdgeKey{U: u, V: v, Label: graphdata.LabelString(e.Label), HasLabel: e.Label != nil}] = struct{}{}
	}
	return set
}
