// Package miner drives frequent-subgraph mining: a frontier/BFS loop that
// fuses canonicalization, embedding enumeration and candidate generation,
// applies MNI-support pruning, and optionally parallelizes the embedding
// phase across patterns with golang.org/x/sync/errgroup (bounded fan-out
// in which the first error cancels the rest).
//
// Two configurations share one loop: base mode seeds from every edge type
// and applies no edge-type filter; pre-filtered mode seeds only from edge types whose
// occurrence count already meets the support threshold, ordered by
// descending count, and may enable heuristics.
package miner
