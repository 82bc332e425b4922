// Package bfs provides breadth-first search over a graph.Graph, returning
// unweighted distances, parent links, and visit order. It is a
// construction-time tool: the Core-CH setup path (corech, cspcorech) uses
// it once per hierarchy to precompute the "reachable-from-core" and
// "can-reach-core" bit vectors that drive early termination on an empty
// core frontier.
package bfs
