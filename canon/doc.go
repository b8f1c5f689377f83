// Package canon computes the canonical DFS code of a small vertex- and
// edge-labeled graph — the mining engine's isomorphism-classing primitive.
//
// The algorithm, adapted from lvlath's dfs package (a walker that carries
// visitation state and a deterministic neighbor-expansion order) onto a
// pattern's own tiny adjacency rather than a core.Graph:
//
//  1. Build an internal adjacency from the edge list. Directed edges are
//     recorded twice with a directional tag (1 outgoing, 2 incoming);
//     undirected edges are recorded twice with tag 0.
//  2. Enumerate candidate seed edges: every edge, forward orientation only
//     for directed graphs (the reverse orientation is unreachable via a
//     DFS that starts from the source end, and is isomorphic to some
//     forward-orientation seed starting from the other endpoint).
//  3. For each seed, run a deterministic DFS enumeration to obtain one
//     candidate code. The canonical code is the lexicographically
//     smallest candidate.
//
// ComputeCode returns the ordered tuple sequence; KeyOf serializes it (plus
// the directed flag) into a comparable Key suitable for map lookups and
// pattern deduplication. Two codes are equal, as tuple sequences, iff
// their Keys are equal — KeyOf is an injective encoding, not an independent
// source of truth.
package canon
