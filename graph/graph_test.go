package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tachygraph/hgvroute/graph"
)

func simpleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	// S1 from SPEC_FULL.md §8: first_out=[0,1,2,3,5], head=[1,2,3,0,1], w=[2,3,3,1,5]
	g, err := graph.New(
		[]int32{0, 1, 2, 3, 5},
		[]graph.NodeId{1, 2, 3, 0, 1},
		[]graph.Weight{2, 3, 3, 1, 5},
	)
	require.NoError(t, err)
	return g
}

func TestGraphBasics(t *testing.T) {
	g := simpleGraph(t)
	require.Equal(t, 4, g.NumNodes())
	require.Equal(t, 5, g.NumArcs())
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 2, g.Degree(3))

	var heads []graph.NodeId
	g.ForEachOut(3, func(a graph.Arc) { heads = append(heads, a.Head) })
	require.Equal(t, []graph.NodeId{0, 1}, heads)
}

func TestGraphReverse(t *testing.T) {
	g := simpleGraph(t)
	rg := g.Reverse()
	require.Equal(t, g.NumNodes(), rg.NumNodes())
	require.Equal(t, g.NumArcs(), rg.NumArcs())

	var into0 []graph.NodeId
	rg.ForEachOut(0, func(a graph.Arc) { into0 = append(into0, a.Head) })
	require.Equal(t, []graph.NodeId{3}, into0)

	var into1 []graph.NodeId
	rg.ForEachOut(1, func(a graph.Arc) { into1 = append(into1, a.Head) })
	require.ElementsMatch(t, []graph.NodeId{0, 3}, into1)
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := graph.New([]int32{0, 2, 2}, []graph.NodeId{1, 5}, []graph.Weight{1, 1})
	require.ErrorIs(t, err, graph.ErrHeadOutOfRange)

	_, err = graph.New([]int32{0, 1, 0}, []graph.NodeId{0, 1}, []graph.Weight{1, 1})
	require.ErrorIs(t, err, graph.ErrFirstOutInvalid)

	_, err = graph.New([]int32{0, 1, 1}, []graph.NodeId{1}, []graph.Weight{-1})
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestNewRejectsSelfLoop(t *testing.T) {
	// Node 1 has an arc to itself: first_out=[0,1,2], head=[1,1], w=[1,1].
	_, err := graph.New([]int32{0, 1, 2}, []graph.NodeId{1, 1}, []graph.Weight{1, 1})
	require.ErrorIs(t, err, graph.ErrSelfLoop)
}
