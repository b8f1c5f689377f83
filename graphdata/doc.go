// Package graphdata defines the immutable input graph that the mining
// engine searches for frequent patterns in: vertex labels, forward and
// reverse adjacency, and a label→nodes index.
//
// A DataGraph is built once, from an in-memory (directed, vlabels, edges)
// triple, and never mutated afterwards — it is safe to share a single
// *DataGraph read-only across goroutines (see the miner package's parallel
// evaluation mode).
//
// Key types:
//
//	Edge      — an immutable (u, v, label?) record; label nil means absent,
//	            distinct from a present empty-string label.
//	Neighbor  — one adjacency-list entry: (to, label?).
//	EdgeType  — the normalized (vlabel, vlabel, elabel?, directed-flag) shape
//	            used for edge-type histograms and pre-filtering.
//	DataGraph — the graph itself.
//
// Errors:
//
//	ErrEmptyVertices  - edges reference vertices but vlabels is empty.
//	ErrEdgeOutOfRange - an edge endpoint is not a valid node id.
package graphdata
