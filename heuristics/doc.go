// Package heuristics implements optional search-order and pruning
// guidance for candidate generation: label rarity, a derived neighbor
// visiting order, and a degree admissibility check. They change the order
// candidates are produced in, and the degree check skips some extensions.
// With heuristics enabled, candidate generation also grows new vertices
// only from the deepest right-most-path node, so the mined set can be a
// subset of what heuristics-disabled mining finds.
package heuristics
