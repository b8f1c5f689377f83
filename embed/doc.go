// Package embed enumerates injective, edge-preserving embeddings of a
// Pattern into a DataGraph, and derives support measures from them.
//
// The search is classic backtracking subgraph isomorphism with domain
// reduction: each pattern node's domain is the set of graph nodes sharing
// its label, nodes are assigned in an order that tries the
// most-constrained node first, and a partial assignment is extended only
// when it keeps every already-placed edge consistent. Adapted from
// lvlath's dfs walker idiom (visitation state carried through recursive
// calls, deterministic neighbor order) applied to backtracking instead of
// traversal.
package embed
