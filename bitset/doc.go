// Package bitset provides a fixed-size bit vector indexed by node id.
//
// It backs the parking-node predicate and the core/is-core predicate used
// throughout the routing engine. There is no growth: capacity is fixed at
// construction, matching the fact that every bit vector in this repository
// is sized to a graph's node count up front.
package bitset
