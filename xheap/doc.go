// Package xheap implements a 4-ary index-addressable min-heap keyed by a
// small integer id (typically a node id) with an O(1) position lookup.
//
// Unlike a lazy container/heap priority queue (which tolerates stale
// duplicate entries and discards them on pop), xheap requires every id to
// appear at most once: Push fails its precondition if the id is already
// present, and DecreaseKey/IncreaseKey mutate the existing entry in place.
// This is the shape every search in this repository needs, since a node's
// queue priority must be updated, not accumulated, as better labels for it
// are discovered.
//
// Complexity:
//
//	– Push/Pop/DecreaseKey/IncreaseKey: O(log n) with base-4 branching,
//	  trading comparisons-per-level for fewer levels.
//	– Contains/PriorityOf: O(1).
package xheap
