// Package pattern defines Pattern, the unit of mining output: a small
// vertex- and edge-labeled graph together with a cached canonical key.
//
// Pattern node ids are always dense, 0..n-1 (invariant P1). The underlying
// undirected graph of a Pattern's edges is always connected (invariant
// P2), enforced by construction: every Pattern is either a one-edge seed
// or an extension that attaches a new edge to an existing pattern vertex.
// A Pattern's Key depends only on its isomorphism class, never on
// pattern-node numbering or edge order (invariant P3).
//
// Errors:
//
//	ErrNoVertices     - vlabels is empty.
//	ErrNodeOutOfRange - an edge endpoint is outside 0..len(vlabels)-1.
package pattern
