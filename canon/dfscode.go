package canon

import (
	"sort"

	"github.com/katalvlaran/sogra/graphdata"
)

// padjEntry is one entry of the internal per-pattern adjacency built from
// the raw edge list. direction is 0 for an undirected edge, 1 for the
// outgoing half of a directed edge, 2 for the incoming half (i.e. this
// entry was reached by walking a directed edge against its own direction).
type padjEntry struct {
	to        int
	hasLabel  bool
	elabel    string
	direction int
}

// edgeKey normalizes an edge to the original (true) edge identity, so the
// same logical edge hashes identically regardless of which adjacency side
// (outgoing or incoming) it was discovered from. Undirected edges are
// normalized so u <= v.
type edgeKey struct {
	u, v     int
	hasLabel bool
	elabel   string
	dflag    int
}

// normKey normalizes (u, v, direction) — the endpoints of one adjacency
// traversal step and its direction tag (0 undirected, 1 outgoing, 2
// incoming) — to the edge's true identity. A direction-2 step means the
// true edge runs v->u, so it normalizes to the same key as the
// direction-1 step that discovers it from the other side.
func normKey(directed bool, u, v int, hasLabel bool, elabel string, direction int) edgeKey {
	if directed {
		if direction == 2 {
			u, v = v, u
		}
		return edgeKey{u: u, v: v, hasLabel: hasLabel, elabel: elabel, dflag: 1}
	}
	a, b := u, v
	if b < a {
		a, b = b, a
	}
	return edgeKey{u: a, v: b, hasLabel: hasLabel, elabel: elabel, dflag: 0}
}

func buildAdjacency(directed bool, n int, edges []graphdata.Edge) ([][]padjEntry, map[edgeKey]struct{}) {
	adj := make([][]padjEntry, n)
	keys := make(map[edgeKey]struct{}, len(edges))
	for _, e := range edges {
		hasLabel := e.Label != nil
		elab := graphdata.LabelString(e.Label)
		if directed {
			adj[e.U] = append(adj[e.U], padjEntry{to: e.V, hasLabel: hasLabel, elabel: elab, direction: 1})
			adj[e.V] = append(adj[e.V], padjEntry{to: e.U, hasLabel: hasLabel, elabel: elab, direction: 2})
			keys[normKey(directed, e.U, e.V, hasLabel, elab, 1)] = struct{}{}
		} else {
			adj[e.U] = append(adj[e.U], padjEntry{to: e.V, hasLabel: hasLabel, elabel: elab, direction: 0})
			adj[e.V] = append(adj[e.V], padjEntry{to: e.U, hasLabel: hasLabel, elabel: elab, direction: 0})
			keys[normKey(directed, e.U, e.V, hasLabel, elab, 0)] = struct{}{}
		}
	}
	return adj, keys
}

// ComputeCode returns the canonical DFS code of the graph (directed,
// vlabels, edges): the lexicographically smallest tuple sequence produced
// by a deterministic DFS enumeration over every candidate seed edge.
// An empty edge list returns an empty code.
//
// Complexity: O(E) seeds, each enumerated in O(E log E) for the frontier
// sort, so O(E^2 log E) overall — acceptable given patterns are small
// (bounded by max_size).
func ComputeCode(directed bool, vlabels []string, edges []graphdata.Edge) []Tuple {
	n := len(vlabels)
	adj, edgeKeys := buildAdjacency(directed, n, edges)

	seeds := make([]edgeKey, 0, 2*len(edgeKeys))
	for k := range edgeKeys {
		seeds = append(seeds, k) // for directed graphs every stored key already has dflag 1 (forward)
		if !directed && k.u != k.v {
			// undirected edges are tried from both endpoints
			seeds = append(seeds, edgeKey{u: k.v, v: k.u, hasLabel: k.hasLabel, elabel: k.elabel, dflag: k.dflag})
		}
	}
	sort.Slice(seeds, func(i, j int) bool { return seedLess(seeds[i], seeds[j]) })

	var best []Tuple
	for _, s := range seeds {
		seq := dfsEnumerate(directed, vlabels, adj, edgeKeys, s.u, s.v, s.hasLabel, s.elabel)
		if best == nil || lessTupleSeq(seq, best) {
			best = seq
		}
	}
	if best == nil {
		return []Tuple{}
	}
	return best
}

func seedLess(a, b edgeKey) bool {
	if a.u != b.u {
		return a.u < b.u
	}
	if a.v != b.v {
		return a.v < b.v
	}
	if a.elabel != b.elabel {
		return a.elabel < b.elabel
	}
	return !a.hasLabel && b.hasLabel
}

// dfsEnumerate runs one deterministic DFS enumeration starting from seed
// edge (su, sv, elab), returning its code sequence.
func dfsEnumerate(directed bool, vlabels []string, adj [][]padjEntry, edgeKeys map[edgeKey]struct{}, su, sv int, hasLabel bool, elab string) []Tuple {
	visitedIdx := make(map[int]int, len(vlabels))
	assign := func(u int) int {
		if idx, ok := visitedIdx[u]; ok {
			return idx
		}
		idx := len(visitedIdx)
		visitedIdx[u] = idx
		return idx
	}

	used := make(map[edgeKey]struct{}, len(edgeKeys))
	code := make([]Tuple, 0, len(edgeKeys))

	// pushEdge assigns discovery indices to u (the already-visited anchor)
	// and v (possibly new), marks the true edge used, and emits a tuple.
	// direction==2 means the true edge runs v->u, so the tuple's i/j and
	// vlabel positions are swapped to keep the emitted direction flag in
	// {0,1} (spec: "there is no 2; reverse-directed edges are represented
	// by swapping i,j").
	pushEdge := func(u, v int, hasLabel bool, elab string, direction int) {
		ui := assign(u)
		vi := assign(v)
		used[normKey(directed, u, v, hasLabel, elab, direction)] = struct{}{}
		if direction == 2 {
			code = append(code, Tuple{I: vi, J: ui, VLabelI: vlabels[v], ELabel: elab, VLabelJ: vlabels[u], Direction: 1})
		} else {
			code = append(code, Tuple{I: ui, J: vi, VLabelI: vlabels[u], ELabel: elab, VLabelJ: vlabels[v], Direction: direction})
		}
	}

	pushEdge(su, sv, hasLabel, elab, directionFlagFor(directed))

	const sentinel = 1 << 30
	type frontierItem struct {
		u, v      int
		hasLabel  bool
		elabel    string
		direction int
		uidx      int
		vidx      int // sentinel if v not yet visited
	}
	for len(used) < len(edgeKeys) {
		var frontier []frontierItem
		for u, uidx := range visitedIdx {
			for _, nb := range adj[u] {
				key := normKey(directed, u, nb.to, nb.hasLabel, nb.elabel, nb.direction)
				if _, ok := used[key]; ok {
					continue
				}
				vidx := sentinel
				if idx, ok := visitedIdx[nb.to]; ok {
					vidx = idx
				}
				frontier = append(frontier, frontierItem{
					u: u, v: nb.to, hasLabel: nb.hasLabel, elabel: nb.elabel,
					direction: nb.direction, uidx: uidx, vidx: vidx,
				})
			}
		}
		if len(frontier) == 0 {
			break // disconnected pattern; should not happen (invariant P2)
		}
		sort.SliceStable(frontier, func(i, j int) bool {
			a, b := frontier[i], frontier[j]
			if a.uidx != b.uidx {
				return a.uidx < b.uidx
			}
			if vlabels[a.u] != vlabels[b.u] {
				return vlabels[a.u] < vlabels[b.u]
			}
			if a.elabel != b.elabel {
				return a.elabel < b.elabel
			}
			aRank, bRank := backEdgeRank(a.vidx, sentinel), backEdgeRank(b.vidx, sentinel)
			if aRank != bRank {
				return aRank < bRank
			}
			aLbl, bLbl := "~", "~"
			if a.vidx != sentinel {
				aLbl = vlabels[a.v]
			}
			if b.vidx != sentinel {
				bLbl = vlabels[b.v]
			}
			if aLbl != bLbl {
				return aLbl < bLbl
			}
			if a.direction != b.direction {
				return a.direction < b.direction
			}
			return a.vidx < b.vidx
		})
		f := frontier[0]
		pushEdge(f.u, f.v, f.hasLabel, f.elabel, f.direction)
	}
	return code
}

// backEdgeRank returns 0 for a back-edge (target already visited), 1 for a
// forward-growth edge (target not yet visited) — back-edges sort first.
func backEdgeRank(vidx, sentinel int) int {
	if vidx != sentinel {
		return 0
	}
	return 1
}

func directionFlagFor(directed bool) int {
	if directed {
		return 1
	}
	return 0
}

func lessTupleSeq(a, b []Tuple) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareTuple(a[i], b[i]); c != 0 {
			return c < 0
		}
	}
	return len(a) < len(b)
}

func compareTuple(a, b Tuple) int {
	switch {
	case a.I != b.I:
		return a.I - b.I
	case a.J != b.J:
		return a.J - b.J
	case a.VLabelI != b.VLabelI:
		return stringCmp(a.VLabelI, b.VLabelI)
	case a.ELabel != b.ELabel:
		return stringCmp(a.ELabel, b.ELabel)
	case a.VLabelJ != b.VLabelJ:
		return stringCmp(a.VLabelJ, b.VLabelJ)
	default:
		return a.Direction - b.Direction
	}
}

func stringCmp(a, b string) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
