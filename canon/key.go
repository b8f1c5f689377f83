package canon

import (
	"strconv"

	"github.com/katalvlaran/sogra/graphdata"
)

// Code computes the canonical DFS code of (directed, vlabels, edges) and
// returns it already serialized into a Key. Callers that also need the raw
// tuple sequence (e.g. to derive a right-most path) should call
// ComputeCode directly instead.
func Code(directed bool, vlabels []string, edges []graphdata.Edge) Key {
	return KeyOf(directed, ComputeCode(directed, vlabels, edges))
}

// KeyOf serializes a tuple sequence (as produced by ComputeCode) into a
// comparable Key. The encoding is injective over the tuple fields that
// matter for isomorphism classing: two sequences map to the same Key iff
// they are equal element-by-element.
func KeyOf(directed bool, code []Tuple) Key {
	buf := make([]byte, 0, len(code)*24)
	for _, t := range code {
		buf = strconv.AppendInt(buf, int64(t.I), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(t.J), 10)
		buf = append(buf, ',')
		// Each label is length-prefixed so separator characters inside a
		// label cannot make two different sequences encode alike.
		for _, s := range [...]string{t.VLabelI, t.ELabel, t.VLabelJ} {
			buf = strconv.AppendInt(buf, int64(len(s)), 10)
			buf = append(buf, ':')
			buf = append(buf, s...)
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(t.Direction), 10)
		buf = append(buf, ';')
	}
	return Key{Directed: directed, Code: string(buf)}
}

// RightmostPath returns the right-most path of a canonical code: the
// sequence of DFS indices from the root (0) down to the node with the
// largest discovery index, following each node's first-discovery parent
// edge. Candidate generation extends a pattern only from vertices on this
// path: back-edges run from its deepest node to the other path vertices,
// and forward edges grow from any path vertex (only from the deepest node
// when heuristics are enabled).
//
// An empty code (no edges yet, i.e. a single-vertex pattern) has no edges
// to derive a path from; RightmostPath returns [0] in that case.
func RightmostPath(code []Tuple) []int {
	if len(code) == 0 {
		return []int{0}
	}

	parent := make(map[int]int)
	maxIdx := 0
	for _, t := range code {
		// A tuple's "new" endpoint is whichever one wasn't seen before in
		// a lower-indexed tuple; since indices are assigned in discovery
		// order, the larger of I/J introduced later is the child whenever
		// this tuple is a forward (tree) edge. Back-edges connect two
		// already-known indices and do not introduce a parent link.
		hi, lo := t.J, t.I
		if hi < lo {
			hi, lo = lo, hi
		}
		if _, exists := parent[hi]; !exists && hi != lo {
			if _, seenLo := parent[lo]; seenLo || lo == 0 {
				parent[hi] = lo
			}
		}
		if hi > maxIdx {
			maxIdx = hi
		}
		if lo > maxIdx {
			maxIdx = lo
		}
	}

	path := []int{maxIdx}
	cur := maxIdx
	for cur != 0 {
		p, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse into root-to-leaf order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
