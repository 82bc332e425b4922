package ch_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tachygraph/hgvroute/ch"
	"github.com/tachygraph/hgvroute/graph"
)

// pathHierarchy builds a degenerate but valid 5-node contraction hierarchy:
// a rank-ascending unit-weight path 0-1-2-3-4, with Up and Down carrying
// the same arcs (valid because the underlying real graph is symmetric).
func pathHierarchy(t *testing.T) *ch.Hierarchy {
	t.Helper()
	g, err := graph.New(
		[]int32{0, 1, 2, 3, 4, 4},
		[]graph.NodeId{1, 2, 3, 4},
		[]graph.Weight{1, 1, 1, 1},
	)
	require.NoError(t, err)
	h, err := ch.NewHierarchy(g, g, []int32{0, 1, 2, 3, 4})
	require.NoError(t, err)
	return h
}

func TestBidirectionalQueryMatchesPathLength(t *testing.T) {
	h := pathHierarchy(t)
	q, err := ch.NewQuery(h)
	require.NoError(t, err)

	require.NoError(t, q.InitNewST(0, 4))
	d, ok := q.RunQuery()
	require.True(t, ok)
	require.Equal(t, graph.Weight(4), d)
}

func TestBidirectionalQueryShortHop(t *testing.T) {
	h := pathHierarchy(t)
	q, err := ch.NewQuery(h)
	require.NoError(t, err)

	require.NoError(t, q.InitNewST(1, 3))
	d, ok := q.RunQuery()
	require.True(t, ok)
	require.Equal(t, graph.Weight(2), d)
}

func TestHierarchyRejectsBadRank(t *testing.T) {
	g, err := graph.New([]int32{0, 0}, nil, nil)
	require.NoError(t, err)
	_, err = ch.NewHierarchy(g, g, []int32{0, 0})
	require.ErrorIs(t, err, ch.ErrBadRank)
}
