package label

import "container/heap"

// Item is one label: a distance tuple, its derived scalar priority, and
// the back-pointer used for path reconstruction.
type Item[D any] struct {
	Dist      D
	Prio      int64
	PrevNode  int32 // InvalidNode for the source label
	PrevLabel int32 // index into the predecessor node's Set, -1 if none
	dominated bool
	settled   bool
}

// Set is one node's label store: an append-only arena of labels plus a
// binary min-heap (by Prio) over the indices of labels still active
// (neither settled nor dominated).
type Set[D any] struct {
	items   []Item[D]
	active  []int32
	settled []int32
}

// NewSet returns an empty label set.
func NewSet[D any]() *Set[D] {
	return &Set[D]{}
}

// Reset clears the set back to empty, in O(size).
func (s *Set[D]) Reset() {
	s.items = s.items[:0]
	s.active = s.active[:0]
	s.settled = s.settled[:0]
}

// Len returns the number of labels ever created in this set (including
// dominated and settled ones).
func (s *Set[D]) Len() int { return len(s.items) }

// At returns the label at the given stable index.
func (s *Set[D]) At(idx int32) *Item[D] { return &s.items[idx] }

// activeHeap adapts a Set's active-index slice to container/heap, ordering
// by the priority stored in the owning Set's item arena.
type activeHeap[D any] struct{ s *Set[D] }

func (h activeHeap[D]) Len() int { return len(h.s.active) }
func (h activeHeap[D]) Less(i, j int) bool {
	return h.s.items[h.s.active[i]].Prio < h.s.items[h.s.active[j]].Prio
}
func (h activeHeap[D]) Swap(i, j int) {
	h.s.active[i], h.s.active[j] = h.s.active[j], h.s.active[i]
}
func (h *activeHeap[D]) Push(x interface{}) {
	h.s.active = append(h.s.active, x.(int32))
}
func (h *activeHeap[D]) Pop() interface{} {
	old := h.s.active
	n := len(old)
	v := old[n-1]
	h.s.active = old[:n-1]
	return v
}

func (s *Set[D]) heapAdapter() *activeHeap[D] { return &activeHeap[D]{s: s} }

// PeekMin returns the index and priority of the best active (not yet
// settled, not dominated) label, if any.
func (s *Set[D]) PeekMin() (idx int32, prio int64, ok bool) {
	if len(s.active) == 0 {
		return 0, 0, false
	}
	idx = s.active[0]
	return idx, s.items[idx].Prio, true
}

// PopMin removes and returns the best active label, marking it settled.
func (s *Set[D]) PopMin() (idx int32, ok bool) {
	if len(s.active) == 0 {
		return 0, false
	}
	top := heap.Pop(s.heapAdapter()).(int32)
	s.items[top].settled = true
	s.settled = append(s.settled, top)
	return top, true
}

// Settled returns the indices of settled labels, in ascending settle order
// (equivalently, ascending priority at the time each was popped).
func (s *Set[D]) Settled() []int32 { return s.settled }

// Insert attempts dominance-preserving admission of a new label. dominates
// reports whether a's distance dominates b's. On success the new label's
// stable index is returned; on rejection (an existing, non-dominated
// active label already dominates the candidate) ok is false and no label
// is created.
func (s *Set[D]) Insert(dist D, prio int64, prevNode, prevLabel int32, dominates func(a, b D) bool) (idx int32, ok bool) {
	for _, i := range s.active {
		if dominates(s.items[i].Dist, dist) {
			return 0, false
		}
	}

	kept := s.active[:0]
	for _, i := range s.active {
		if dominates(dist, s.items[i].Dist) {
			s.items[i].dominated = true
			continue
		}
		kept = append(kept, i)
	}
	s.active = kept
	heap.Init(s.heapAdapter())

	newIdx := int32(len(s.items))
	s.items = append(s.items, Item[D]{
		Dist:      dist,
		Prio:      prio,
		PrevNode:  prevNode,
		PrevLabel: prevLabel,
	})
	heap.Push(s.heapAdapter(), newIdx)
	return newIdx, true
}
