package embed

import (
	"sort"

	"github.com/katalvlaran/sogra/graphdata"
	"github.com/katalvlaran/sogra/pattern"
)

// incident is one pattern edge touching a given pattern node, with the
// information needed to check consistency against an already-assigned
// neighbor: fromHere is true when the pattern edge runs node->other, false
// when it runs other->node. Direction only matters for directed patterns;
// undirected graphs are symmetric in graphdata so it's ignored there.
type incident struct {
	other    int
	hasLabel bool
	label    string
	fromHere bool
}

func buildIncidence(p pattern.Pattern) [][]incident {
	n := p.NumVertices()
	inc := make([][]incident, n)
	for _, e := range p.Edges {
		hasLabel := e.Label != nil
		lab := graphdata.LabelString(e.Label)
		inc[e.U] = append(inc[e.U], incident{other: e.V, hasLabel: hasLabel, label: lab, fromHere: true})
		inc[e.V] = append(inc[e.V], incident{other: e.U, hasLabel: hasLabel, label: lab, fromHere: false})
	}
	return inc
}

// assignmentOrder sorts pattern nodes by (|D[i]|, -patternDegree(i), i)
// ascending, the most-constrained-first order spec §4.E requires for
// determinism and search efficiency.
func assignmentOrder(domains [][]int, inc [][]incident) []int {
	n := len(domains)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if len(domains[ia]) != len(domains[ib]) {
			return len(domains[ia]) < len(domains[ib])
		}
		if len(inc[ia]) != len(inc[ib]) {
			return len(inc[ia]) > len(inc[ib]) // -degree ascending: higher degree first
		}
		return ia < ib
	})
	return order
}

func labelPtr(hasLabel bool, s string) *string {
	if !hasLabel {
		return nil
	}
	return &s
}

func consistent(g *graphdata.DataGraph, directed bool, inc []incident, candidate int, assigned []int, isAssigned []bool) bool {
	for _, nb := range inc {
		if !isAssigned[nb.other] {
			continue
		}
		other := assigned[nb.other]
		label := labelPtr(nb.hasLabel, nb.label)
		var ok bool
		switch {
		case !directed:
			ok = g.HasEdge(candidate, other, label)
		case nb.fromHere:
			ok = g.HasEdge(candidate, other, label)
		default:
			ok = g.HasEdge(other, candidate, label)
		}
		if !ok {
			return false
		}
	}
	return true
}

// searchResult bundles what every caller of the backtracking core needs;
// collect controls whether full Embedding copies are materialized (costly)
// or only counted (cheap, used by FullSupportCount).
type searchResult struct {
	embeddings []Embedding
	count      int
	capHit     bool
}

func search(g *graphdata.DataGraph, p pattern.Pattern, collect bool, cap int) searchResult {
	n := p.NumVertices()
	if n == 0 {
		return searchResult{}
	}

	inc := buildIncidence(p)
	domains := make([][]int, n)
	for i, lab := range p.VLabels {
		domains[i] = g.Nodes(lab)
	}
	order := assignmentOrder(domains, inc)

	assigned := make([]int, n)
	isAssigned := make([]bool, n)
	usedGraphNodes := make(map[int]bool, n)

	var res searchResult

	var rec func(pos int) bool // returns true once the cap has been hit
	rec = func(pos int) bool {
		if pos == n {
			res.count++
			if collect {
				emb := make(Embedding, n)
				for i := 0; i < n; i++ {
					emb[i] = assigned[i]
				}
				res.embeddings = append(res.embeddings, emb)
			}
			if cap > 0 && res.count >= cap {
				res.capHit = true
				return true
			}
			return false
		}
		node := order[pos]
		for _, cand := range domains[node] {
			if usedGraphNodes[cand] {
				continue
			}
			if !consistent(g, p.Directed, inc[node], cand, assigned, isAssigned) {
				continue
			}
			assigned[node] = cand
			isAssigned[node] = true
			usedGraphNodes[cand] = true
			stop := rec(pos + 1)
			usedGraphNodes[cand] = false
			isAssigned[node] = false
			if stop {
				return true
			}
		}
		return false
	}
	rec(0)

	return res
}

// FullMNIEmbeddings returns every injective, edge-preserving embedding of
// p into g. Uncapped: for large patterns against dense graphs this search
// is exponential, the caller's responsibility to bound via pattern size.
func FullMNIEmbeddings(g *graphdata.DataGraph, p pattern.Pattern) []Embedding {
	return search(g, p, true, 0).embeddings
}

// FullSupportCount runs the identical search without materializing
// embeddings, stopping early once cap is reached. cap <= 0 means
// uncapped. capHit reports whether the count reached cap; the count is then
// at most the true full support (an undercount whenever more embeddings
// exist), which callers surface to their own callers.
func FullSupportCount(g *graphdata.DataGraph, p pattern.Pattern, cap int) (count int, capHit bool) {
	res := search(g, p, false, cap)
	return res.count, res.capHit
}

// MNISupport computes the Minimum Image-based support over k = |vlabels|
// pattern positions: for each position, the count of distinct graph nodes
// that position maps to across all embeddings, minimized over positions.
// Returns 0 for k == 0.
func MNISupport(embeddings []Embedding, k int) int {
	if k == 0 {
		return 0
	}
	images := make([]map[int]struct{}, k)
	for i := range images {
		images[i] = make(map[int]struct{})
	}
	for _, emb := range embeddings {
		for i := 0; i < k; i++ {
			images[i][emb[i]] = struct{}{}
		}
	}
	minSupport := len(images[0])
	for i := 1; i < k; i++ {
		if c := len(images[i]); c < minSupport {
			minSupport = c
		}
	}
	return minSupport
}
