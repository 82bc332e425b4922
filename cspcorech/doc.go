// Package cspcorech implements the CSP-1 driving-time restriction search
// over a Core-CH hierarchy (C10): a bidirectional label-setting search
// whose forward side walks h.Up and whose backward side walks h.Down,
// each guided by a CH potential pointed at the opposite endpoint, and
// each able to stop early once its remaining frontier can no longer
// possibly reach the uncontracted core set.
//
// It is grounded on three existing packages rather than built from
// scratch: the label-setting machinery and break-counter join are
// csp/bidir.go's (C9) with the graph swapped from g/g.Reverse() to the
// hierarchy's independently precomputed Up/Down graphs; the potential
// adapter wraps ch.Potential (C7) to translate between the rank space a
// Core-CH search operates in and the original node space ch.Potential
// itself expects; and the core-reachability bit vectors driving early
// termination come from corech.ReachableFromCore, itself built on
// bfs.ReachableSet.
//
// Only the CSP-1 family is supported here: SPEC_FULL.md's testable
// property 4 names five CSP-1 variants requiring cross-agreement (plain,
// A*, bidirectional A*, Core-CH, and A*-Core-CH) and no two-restriction
// Core-CH variant, so csp's CSP-2 helpers were left unexported rather
// than given a second adaptation here.
package cspcorech
