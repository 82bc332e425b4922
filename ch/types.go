package ch

import (
	"errors"

	"github.com/tachygraph/hgvroute/graph"
)

// Sentinel errors returned by this package.
var (
	ErrNilGraph       = errors.New("ch: up/down graph is nil")
	ErrBadRank        = errors.New("ch: rank is not a permutation of [0,n)")
	ErrMismatchedSize = errors.New("ch: up and down graphs have different node counts")
)

// Hierarchy bundles the inputs a contraction hierarchy query needs: a
// rank permutation over original node ids, its inverse, and the upward
// and downward CSR graphs, both indexed by rank (not original node id).
type Hierarchy struct {
	Up    *graph.Graph
	Down  *graph.Graph
	Rank  []int32 // Rank[origNode] = rank position
	Order []int32 // Order[rank] = origNode, the inverse of Rank
}

// NewHierarchy validates and wraps a precomputed CH.
func NewHierarchy(up, down *graph.Graph, rank []int32) (*Hierarchy, error) {
	if up == nil || down == nil {
		return nil, ErrNilGraph
	}
	if up.NumNodes() != down.NumNodes() {
		return nil, ErrMismatchedSize
	}
	n := up.NumNodes()
	if len(rank) != n {
		return nil, ErrBadRank
	}
	seen := make([]bool, n)
	for _, r := range rank {
		if int(r) < 0 || int(r) >= n || seen[r] {
			return nil, ErrBadRank
		}
		seen[r] = true
	}
	order := make([]int32, n)
	for orig, r := range rank {
		order[r] = int32(orig)
	}
	return &Hierarchy{Up: up, Down: down, Rank: rank, Order: order}, nil
}

// NumNodes returns the hierarchy's node count.
func (h *Hierarchy) NumNodes() int { return h.Up.NumNodes() }
