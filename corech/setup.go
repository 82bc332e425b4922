package corech

import (
	"github.com/tachygraph/hgvroute/bfs"
	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/ch"
)

// ReachableFromCore precomputes, once per hierarchy, the two bit vectors
// a Core-CH CSP query's early-termination check needs (§4.10): whether a
// side's remaining frontier can still possibly reach the core set at all.
//
//   - fromCoreUp holds every node a core node can reach by following Up
//     edges forward — bfs.ReachableSet(h.Up, isCore).
//   - toCoreDown holds every node that can reach a core node by following
//     Down edges — bfs.ReachableSet(h.Down.Reverse(), isCore).
//
// Both are indexed by rank, matching h.Up/h.Down's own indexing.
func ReachableFromCore(h *ch.Hierarchy, isCore *bitset.BitSet) (fromCoreUp, toCoreDown *bitset.BitSet, err error) {
	fromCoreUp, err = bfs.ReachableSet(h.Up, isCore)
	if err != nil {
		return nil, nil, err
	}
	toCoreDown, err = bfs.ReachableSet(h.Down.Reverse(), isCore)
	if err != nil {
		return nil, nil, err
	}
	return fromCoreUp, toCoreDown, nil
}
