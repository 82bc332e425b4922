package xheap

import "fmt"

const arity = 4

const sentinel = int32(-1)

// entry is one (id, priority) pair stored in the heap array.
type entry struct {
	id   int32
	prio int64
}

// Heap is a 4-ary index-addressable min-heap over ids in [0, capacity).
type Heap struct {
	data      []entry
	positions []int32 // positions[id] = slot in data, or sentinel if absent
}

// New allocates a Heap over the id universe [0, capacity).
func New(capacity int) *Heap {
	positions := make([]int32, capacity)
	for i := range positions {
		positions[i] = sentinel
	}
	return &Heap{data: make([]entry, 0, capacity), positions: positions}
}

// Len returns the number of elements currently in the heap.
func (h *Heap) Len() int { return len(h.data) }

// Contains reports whether id is currently present.
func (h *Heap) Contains(id int32) bool {
	return h.positions[id] != sentinel
}

// PriorityOf returns the current priority of id, if present.
func (h *Heap) PriorityOf(id int32) (int64, bool) {
	slot := h.positions[id]
	if slot == sentinel {
		return 0, false
	}
	return h.data[slot].prio, true
}

// Push inserts id with the given priority. Panics if id is already present;
// that is a precondition violation, not a recoverable runtime condition.
func (h *Heap) Push(id int32, prio int64) {
	if h.positions[id] != sentinel {
		panic(fmt.Sprintf("xheap: push of id %d already present", id))
	}
	slot := len(h.data)
	h.data = append(h.data, entry{id: id, prio: prio})
	h.positions[id] = int32(slot)
	h.siftUp(slot)
}

// Peek returns the minimum element without removing it.
func (h *Heap) Peek() (id int32, prio int64, ok bool) {
	if len(h.data) == 0 {
		return 0, 0, false
	}
	return h.data[0].id, h.data[0].prio, true
}

// Pop removes and returns the minimum element.
func (h *Heap) Pop() (id int32, prio int64, ok bool) {
	if len(h.data) == 0 {
		return 0, 0, false
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.positions[h.data[0].id] = 0
	h.data = h.data[:last]
	h.positions[top.id] = sentinel
	if last > 0 {
		h.siftDown(0)
	}
	return top.id, top.prio, true
}

// DecreaseKey lowers id's priority. Panics if id is absent.
func (h *Heap) DecreaseKey(id int32, newPrio int64) {
	slot := h.mustSlot(id)
	h.data[slot].prio = newPrio
	h.siftUp(int(slot))
}

// IncreaseKey raises id's priority. Panics if id is absent.
func (h *Heap) IncreaseKey(id int32, newPrio int64) {
	slot := h.mustSlot(id)
	h.data[slot].prio = newPrio
	h.siftDown(int(slot))
}

func (h *Heap) mustSlot(id int32) int32 {
	slot := h.positions[id]
	if slot == sentinel {
		panic(fmt.Sprintf("xheap: key update on absent id %d", id))
	}
	return slot
}

// Clear empties the heap in O(current size).
func (h *Heap) Clear() {
	for _, e := range h.data {
		h.positions[e.id] = sentinel
	}
	h.data = h.data[:0]
}

func parent(i int) int  { return (i - 1) / arity }
func child(i, k int) int { return i*arity + 1 + k }

func (h *Heap) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if h.data[p].prio <= h.data[i].prio {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.data)
	for {
		smallest := i
		for k := 0; k < arity; k++ {
			c := child(i, k)
			if c < n && h.data[c].prio < h.data[smallest].prio {
				smallest = c
			}
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Heap) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.positions[h.data[i].id] = int32(i)
	h.positions[h.data[j].id] = int32(j)
}
