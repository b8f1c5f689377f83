// Package sogra (frequent SubgrOGRAph mining) is a frequent-subgraph mining
// engine over a single labeled graph.
//
// 🚀 What is sogra?
//
//	Given a minimum support threshold and an optional maximum pattern size,
//	sogra enumerates every non-isomorphic connected subgraph pattern whose
//	support meets the threshold, together with witness embeddings.
//
// Under the hood, everything is organized under purpose-built subpackages:
//
//	graphdata/  — immutable input graph: adjacency, reverse adjacency, label index
//	pattern/    — vertex-labeled edge list with a cached canonical key
//	canon/      — canonical DFS-code computation (isomorphism classing)
//	embed/      — backtracking subgraph-isomorphism search and MNI support
//	candidate/  — seed patterns and right-most-path one-edge extensions
//	heuristics/ — optional label-rarity / degree-based ordering and pruning
//	miner/      — the frontier/BFS driver that fuses the above, with optional
//	              parallel embedding evaluation
//	loader/     — the `v … / e …` text graph format reader
//
// Quick ASCII example, an undirected triangle with labels X, Y, Z:
//
//	    X───Y
//	     \ /
//	      Z
//
// Mining this triangle at minimum support 1 yields three one-edge patterns,
// three two-edge paths, and the triangle itself — see TestMine_S1_Triangle
// in the miner package.
//
//	go get github.com/katalvlaran/sogra
package sogra
