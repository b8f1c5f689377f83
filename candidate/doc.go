// Package candidate generates the seed one-edge patterns and the
// right-most-path extensions consumed by the mining driver's frontier
// loop. Seeds cover every distinct edge type in a DataGraph; extensions
// grow a surviving pattern by exactly one edge, either closing a cycle
// back onto the right-most path (a back-edge) or attaching a fresh
// vertex (a forward edge), deduplicated by the extended pattern's
// canonical key.
package candidate
