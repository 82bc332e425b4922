// Package ch implements queries over a precomputed contraction hierarchy:
// a node ranking plus an upward graph (edges from lower to higher rank)
// and a downward graph (edges from higher to lower rank, stored as an
// edge-reversed CSR so both directions are forward-star iterable).
//
// Two query shapes live here:
//
//   - Query: the plain bidirectional CH search (C6), forward on Up from
//     rank(s), backward on Down from rank(t), meeting in the middle.
//   - Potential: the lazy CH landmark-free heuristic (C7), a memoized
//     reverse search on Down from rank(t) used as an admissible, monotone
//     A* heuristic by csp and cspcorech.
//
// This package does not perform CH preprocessing (node ordering,
// witness search, shortcut insertion); it consumes an already-contracted
// Up/Down pair and a rank permutation as given.
package ch
