// Package loader reads the line-oriented "v ... / e ..." text graph format
// into a *graphdata.DataGraph. It is the only I/O-touching component in this
// module — graphdata, pattern, canon, embed, candidate, heuristics and miner
// all operate on already-parsed in-memory data.
package loader
