package graphdata

import "errors"

// Sentinel errors for graphdata construction.
var (
	// ErrEmptyVertices indicates edges were supplied but vlabels is empty.
	ErrEmptyVertices = errors.New("graphdata: empty vertex label array with non-empty edges")

	// ErrEdgeOutOfRange indicates an edge endpoint is outside 0..len(vlabels)-1.
	ErrEdgeOutOfRange = errors.New("graphdata: edge endpoint out of range")
)

// Edge is an immutable (u, v, label?) record. Label is nil when the edge
// carries no label, which is distinct from a present empty-string label.
type Edge struct {
	U, V  int
	Label *string
}

// Neighbor is one adjacency-list entry: the far endpoint and its edge label.
type Neighbor struct {
	To    int
	Label *string
}

// EdgeType is the normalized edge shape used for histograms and
// edge-type pre-filtering: (label of u, label of v, edge label?, directed flag).
// For undirected edges LU <= LV lexicographically and DFlag is 0; for
// directed edges DFlag is 1 and LU/LV preserve the edge's own direction.
//
// ELabel/HasLabel encode the optional edge label as a comparable pair
// instead of a *string, so EdgeType can be used directly as a map key:
// two pointers to equal strings are distinct pointers, so *string would
// break map-key equality, but (string, bool) compares by value.
type EdgeType struct {
	LU, LV   string
	ELabel   string
	HasLabel bool
	DFlag    int
}

// DataGraph is the immutable input graph. It is built once by New and never
// mutated afterwards, so a single *DataGraph may be shared read-only across
// goroutines.
type DataGraph struct {
	directed  bool
	vlabels   []string
	adj       [][]Neighbor
	rev       [][]Neighbor
	lab2nodes map[string][]int
}
