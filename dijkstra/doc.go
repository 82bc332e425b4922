// Package dijkstra computes single-source shortest paths over a CSR
// graph.Graph using a reusable Query: construct once per graph, then call
// InitNewSource/DistQuery/PathTo repeatedly across many queries without
// reallocating the queue or distance arrays.
//
// Every other search in this repository (ch's bidirectional search, the
// CH potential oracle's backward exploration, corech) is a Query run over
// a different graph with a different termination condition; this package
// is the base every one of them embeds.
//
// Complexity:
//
//	– Time:  O((n + m) log n), using the 4-ary index-addressable heap in
//	  xheap for true decrease-key instead of lazy duplicate pushes.
//	– Space: O(n + m): one tsvector.Vector[Weight] for distances, one
//	  tsvector.Vector[int32] for predecessors, one xheap.Heap for the queue.
//
// Options:
//
//	– WithMaxDistance(d): nodes whose tentative distance would exceed d are
//	  not explored further.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if a nil graph is passed to NewQuery.
//	– ErrBadNode       if a node id is outside [0, NumNodes).
//	– ErrBadMaxDistance: WithMaxDistance panics with its message when given
//	  a negative value (it is not returned as an error).
package dijkstra
