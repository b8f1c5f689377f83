package graphdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sogra/graphdata"
)

func lbl(s string) *string { return &s }

func TestNew_EmptyVerticesWithEdges(t *testing.T) {
	_, err := graphdata.New(false, nil, []graphdata.Edge{{U: 0, V: 1}})
	assert.ErrorIs(t, err, graphdata.ErrEmptyVertices)
}

func TestNew_EdgeOutOfRange(t *testing.T) {
	_, err := graphdata.New(false, []string{"A", "B"}, []graphdata.Edge{{U: 0, V: 2}})
	assert.ErrorIs(t, err, graphdata.ErrEdgeOutOfRange)
}

func TestNew_UndirectedSymmetry(t *testing.T) {
	g, err := graphdata.New(false, []string{"X", "Y", "Z"}, []graphdata.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0},
	})
	require.NoError(t, err)

	assert.True(t, g.HasEdge(0, 1, nil))
	assert.True(t, g.HasEdge(1, 0, nil))
	assert.Len(t, g.Adj(0), 2)
	assert.Len(t, g.Rev(0), 2)
}

func TestNew_ParallelEdgesDistinctLabels(t *testing.T) {
	g, err := graphdata.New(true, []string{"A", "B"}, []graphdata.Edge{
		{U: 0, V: 1, Label: lbl("x")},
		{U: 0, V: 1, Label: lbl("y")},
	})
	require.NoError(t, err)

	assert.True(t, g.HasEdge(0, 1, lbl("x")))
	assert.True(t, g.HasEdge(0, 1, lbl("y")))
	assert.False(t, g.HasEdge(0, 1, lbl("z")))
	assert.True(t, g.HasEdge(0, 1, nil))
	assert.Len(t, g.Adj(0), 2)
}

func TestNilLabelDistinctFromEmptyString(t *testing.T) {
	g, err := graphdata.New(true, []string{"A", "B", "C"}, []graphdata.Edge{
		{U: 0, V: 1, Label: nil},
		{U: 0, V: 2, Label: lbl("")},
	})
	require.NoError(t, err)

	assert.True(t, g.HasEdge(0, 1, nil))
	assert.False(t, g.HasEdge(0, 1, lbl("")))
	assert.True(t, g.HasEdge(0, 2, lbl("")))
}

func TestEdgeTypeCounts_Undirected(t *testing.T) {
	g, err := graphdata.New(false, []string{"X", "Y", "Z"}, []graphdata.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0},
	})
	require.NoError(t, err)

	counts := g.EdgeTypeCounts()
	assert.Len(t, counts, 3)
	for typ, c := range counts {
		assert.Equal(t, 0, typ.DFlag)
		assert.LessOrEqual(t, typ.LU, typ.LV)
		assert.Equal(t, 1, c)
	}
}

func TestEdgeTypeCounts_Directed(t *testing.T) {
	g, err := graphdata.New(true, []string{"a", "b"}, []graphdata.Edge{
		{U: 0, V: 1, Label: lbl("a->b")},
		{U: 1, V: 0, Label: lbl("b->a")},
	})
	require.NoError(t, err)

	counts := g.EdgeTypeCounts()
	require.Len(t, counts, 2)
	assert.Equal(t, 1, counts[graphdata.EdgeType{LU: "a", LV: "b", ELabel: "a->b", HasLabel: true, DFlag: 1}])
	assert.Equal(t, 1, counts[graphdata.EdgeType{LU: "b", LV: "a", ELabel: "b->a", HasLabel: true, DFlag: 1}])
}

func TestNodesByLabel(t *testing.T) {
	g, err := graphdata.New(false, []string{"A", "A", "B"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, g.Nodes("A"))
	assert.Equal(t, []int{2}, g.Nodes("B"))
	assert.Nil(t, g.Nodes("C"))
}
