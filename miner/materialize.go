package miner

import (
	"github.com/katalvlaran/sogra/embed"
	"github.com/katalvlaran/sogra/graphdata"
	"github.com/katalvlaran/sogra/pattern"
)

// MaterializedSubgraph is the concrete graph g induces over one
// embedding's image: every g-edge with both endpoints in the image, not
// only the edges the pattern itself required. This is strictly more than
// the pattern's own edge set whenever the image has "extra" incidental
// edges the pattern didn't ask for — which is exactly why induced
// materialization is not part of support computation (spec's Non-goal),
// only a witness-inspection helper supplementing the mining result.
type MaterializedSubgraph struct {
	Nodes []int
	Edges []graphdata.Edge
}

// SubgraphFromEmbedding builds the induced subgraph over emb's image,
// with Nodes in ascending pattern-node order (Nodes[i] is the graph node
// pattern-node i maps to).
func SubgraphFromEmbedding(g *graphdata.DataGraph, p pattern.Pattern, emb embed.Embedding) MaterializedSubgraph {
	n := p.NumVertices()
	nodes := make([]int, n)
	for i := 0; i < n; i++ {
		nodes[i] = emb[i]
	}

	image := make(map[int]bool, n)
	for _, gn := range nodes {
		image[gn] = true
	}

	var edges []graphdata.Edge
	seen := make(map[pattern.EdgeKey]struct{})
	for _, gn := range nodes {
		for _, nb := range g.Adj(gn) {
			if !image[nb.To] {
				continue
			}
			u, v := gn, nb.To
			if !g.Directed() && v < u {
				u, v = v, u
			}
			key := pattern.EdgeKey{U: u, V: v, Label: graphdata.LabelString(nb.Label), HasLabel: nb.Label != nil}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, graphdata.Edge{U: u, V: v, Label: nb.Label})
		}
	}

	return MaterializedSubgraph{Nodes: nodes, Edges: edges}
}

// MaterializeAllEmbeddings applies SubgraphFromEmbedding to every
// embedding of p, preserving embeddings' order.
func MaterializeAllEmbeddings(g *graphdata.DataGraph, p pattern.Pattern, embeddings []embed.Embedding) []MaterializedSubgraph {
	out := make([]MaterializedSubgraph, len(embeddings))
	for i, emb := range embeddings {
		out[i] = SubgraphFromEmbedding(g, p, emb)
	}
	return out
}
