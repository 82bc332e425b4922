package tsvector

import "math"

// Vector is a fixed-size lazily-reset slice of T.
type Vector[T any] struct {
	stamp   []uint64
	current uint64
	values  []T
	def     T
}

// New allocates a Vector of size n whose logical value at every slot is
// def until explicitly Set.
func New[T any](n int, def T) *Vector[T] {
	stamp := make([]uint64, n)
	values := make([]T, n)
	for i := range values {
		values[i] = def
	}
	return &Vector[T]{stamp: stamp, current: 1, values: values, def: def}
}

// Len returns the vector's fixed size.
func (v *Vector[T]) Len() int { return len(v.values) }

// Reset logically clears every slot back to the default, in O(1)
// amortized. On generation-counter overflow it performs a real O(n)
// physical reset instead.
func (v *Vector[T]) Reset() {
	if v.current == math.MaxUint64 {
		v.Clean()
		return
	}
	v.current++
}

// Clean forces an immediate physical reset of every slot to the default,
// in O(n). Use after a search is torn down mid-run, or periodically to
// bound worst-case latency of the lazy path.
func (v *Vector[T]) Clean() {
	for i := range v.values {
		v.values[i] = v.def
		v.stamp[i] = 0
	}
	v.current = 1
}

// IsSet reports whether slot i holds a value from the current generation.
func (v *Vector[T]) IsSet(i int) bool {
	return v.stamp[i] == v.current
}

// Get returns the logical value at i: the stored value if live, else the
// default.
func (v *Vector[T]) Get(i int) T {
	if v.stamp[i] == v.current {
		return v.values[i]
	}
	return v.def
}

// GetPtr returns a pointer to slot i's value, lazily resetting it to the
// default and marking it live in the current generation first if it was
// stale. Safe to mutate through.
func (v *Vector[T]) GetPtr(i int) *T {
	if v.stamp[i] != v.current {
		v.values[i] = v.def
		v.stamp[i] = v.current
	}
	return &v.values[i]
}

// Set writes x at i and marks it live in the current generation.
func (v *Vector[T]) Set(i int, x T) {
	v.values[i] = x
	v.stamp[i] = v.current
}
