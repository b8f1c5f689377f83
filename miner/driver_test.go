package miner_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/sogra/graphdata"
	"github.com/katalvlaran/sogra/miner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

// TestMine_S1_Triangle is scenario S1: undirected triangle of distinct
// labels, tau=1, max_size=3.
func TestMine_S1_Triangle(t *testing.T) {
	g, err := graphdata.New(false, []string{"X", "Y", "Z"}, []graphdata.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0},
	})
	require.NoError(t, err)

	d := miner.New(g, miner.Config{MinSupport: 1, MaxSize: intPtr(3)})
	results, err := d.Mine(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 7) // 3 one-edge + 3 two-edge + 1 three-edge

	var triangle *miner.Result
	for k := range results {
		r := results[k]
		if r.Pattern.NumEdges() == 3 {
			triangle = &r
		}
	}
	require.NotNil(t, triangle)
	// Every vertex label (X, Y, Z) is globally unique in this graph, so
	// every pattern's per-position domain is a singleton: exactly one
	// embedding exists for any pattern built from these labels, whatever
	// its edge count. mni_support and full_support are both 1 throughout.
	assert.Equal(t, 1, triangle.MNISupport)
	assert.Equal(t, 1, triangle.FullSupport)

	oneEdgeCount := 0
	for _, r := range results {
		if r.Pattern.NumEdges() == 1 {
			oneEdgeCount++
			assert.Equal(t, 1, r.MNISupport)
			assert.Equal(t, 1, r.FullSupport)
		}
	}
	assert.Equal(t, 3, oneEdgeCount)
}

// TestMine_S3_SupportThreshold is scenario S3: a 4-node path of distinct
// labels, tau=2; every edge type occurs exactly once, so nothing is
// frequent.
func TestMine_S3_SupportThreshold(t *testing.T) {
	g, err := graphdata.New(false, []string{"A", "B", "C", "D"}, []graphdata.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3},
	})
	require.NoError(t, err)

	d := miner.New(g, miner.Config{MinSupport: 2})
	results, err := d.Mine(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}

// TestMine_S4_MNIVsFullSupport is scenario S4: K4 clique, all vertices
// labeled A, tau=1.
func TestMine_S4_MNIVsFullSupport(t *testing.T) {
	vlabels := []string{"A", "A", "A", "A"}
	var edges []graphdata.Edge
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, graphdata.Edge{U: i, V: j})
		}
	}
	g, err := graphdata.New(false, vlabels, edges)
	require.NoError(t, err)

	d := miner.New(g, miner.Config{MinSupport: 1, MaxSize: intPtr(3)})
	results, err := d.Mine(context.Background())
	require.NoError(t, err)

	var triangle *miner.Result
	for k := range results {
		r := results[k]
		if r.Pattern.NumEdges() == 3 {
			triangle = &r
		}
	}
	require.NotNil(t, triangle)
	assert.Equal(t, 4, triangle.MNISupport)
	assert.Equal(t, 24, triangle.FullSupport)
}

// TestMine_S5_DirectedAsymmetry is scenario S5.
func TestMine_S5_DirectedAsymmetry(t *testing.T) {
	g, err := graphdata.New(true, []string{"a", "b"}, []graphdata.Edge{
		{U: 0, V: 1}, {U: 1, V: 0},
	})
	require.NoError(t, err)

	d := miner.New(g, miner.Config{MinSupport: 1, MaxSize: intPtr(2)})
	results, err := d.Mine(context.Background())
	require.NoError(t, err)

	oneEdge, twoEdge := 0, 0
	for _, r := range results {
		switch r.Pattern.NumEdges() {
		case 1:
			oneEdge++
		case 2:
			twoEdge++
		}
	}
	assert.Equal(t, 2, oneEdge)
	assert.Equal(t, 1, twoEdge)
}

// TestMine_S6_PrefilteredEquivalence is scenario S6: on a graph where
// every edge type already meets tau, pre-filtered mode's result set must
// equal base mode's.
func TestMine_S6_PrefilteredEquivalence(t *testing.T) {
	g, err := graphdata.New(false, []string{"X", "Y", "Z"}, []graphdata.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0},
	})
	require.NoError(t, err)

	base := miner.New(g, miner.Config{MinSupport: 1, MaxSize: intPtr(3)})
	baseResults, err := base.Mine(context.Background())
	require.NoError(t, err)

	pre := miner.New(g, miner.Config{MinSupport: 1, MaxSize: intPtr(3), UseEdgeTypePrefilter: true})
	preResults, err := pre.Mine(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(baseResults), len(preResults))
	for k := range baseResults {
		_, ok := preResults[k]
		assert.True(t, ok, "missing key in pre-filtered results: %v", k)
	}
}

// TestMine_NegativeSupport covers the invalid-input fail-fast path.
func TestMine_NegativeSupport(t *testing.T) {
	g, err := graphdata.New(false, []string{"X"}, nil)
	require.NoError(t, err)
	d := miner.New(g, miner.Config{MinSupport: -1})
	_, err = d.Mine(context.Background())
	assert.ErrorIs(t, err, miner.ErrNegativeSupport)
}

// TestMine_ParallelEquivalence is property #10: parallel and sequential
// evaluation must produce identical result sets.
func TestMine_ParallelEquivalence(t *testing.T) {
	g, err := graphdata.New(false, []string{"X", "Y", "Z"}, []graphdata.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0},
	})
	require.NoError(t, err)

	seq := miner.New(g, miner.Config{MinSupport: 1, MaxSize: intPtr(3)})
	seqResults, err := seq.Mine(context.Background())
	require.NoError(t, err)

	par := miner.New(g, miner.Config{MinSupport: 1, MaxSize: intPtr(3), Parallel: true, MaxWorkers: 4})
	parResults, err := par.Mine(context.Background())
	require.NoError(t, err)

	require.Equal(t, len(seqResults), len(parResults))
	for k, r := range seqResults {
		pr, ok := parResults[k]
		require.True(t, ok)
		assert.Equal(t, r.MNISupport, pr.MNISupport)
		assert.Equal(t, r.FullSupport, pr.FullSupport)
	}
}

// TestMine_Deterministic is property #9.
func TestMine_Deterministic(t *testing.T) {
	g, err := graphdata.New(false, []string{"X", "Y", "Z"}, []graphdata.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0},
	})
	require.NoError(t, err)

	d1 := miner.New(g, miner.Config{MinSupport: 1, MaxSize: intPtr(3)})
	r1, err := d1.Mine(context.Background())
	require.NoError(t, err)

	d2 := miner.New(g, miner.Config{MinSupport: 1, MaxSize: intPtr(3)})
	r2, err := d2.Mine(context.Background())
	require.NoError(t, err)

	require.Equal(t, len(r1), len(r2))
	for k, r := range r1 {
		assert.Equal(t, r.MNISupport, r2[k].MNISupport)
	}
}

// TestMine_DriverSoundness is property #8: no result has support below tau.
func TestMine_DriverSoundness(t *testing.T) {
	g, err := graphdata.New(false, []string{"A", "B", "C", "D"}, []graphdata.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0},
	})
	require.NoError(t, err)

	d := miner.New(g, miner.Config{MinSupport: 1})
	results, err := d.Mine(context.Background())
	require.NoError(t, err)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.MNISupport, 1)
	}
}
