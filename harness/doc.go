// Package harness implements the testable-property oracles (C11): reusable
// checks for the seven properties and six concrete scenarios this system's
// correctness rests on, so that every query variant — plain CSP-1,
// A*-accelerated, bidirectional, Core-CH, and A*-Core-CH — can be run
// against the same fixtures and cross-checked without duplicating the
// assertions in every package's own _test.go files.
//
// Each Check* function takes the oracle(s) under test as plain function
// values (ScalarOracle, CSPOracle, CSP2Oracle) and returns a non-nil error
// wrapping ErrPropertyViolated on failure, so package tests can assert with
// require.NoError and get a descriptive message for free.
//
// Grounded on the teacher's testify-based, table-driven test style
// (dijkstra/dijkstra_test.go), generalized
// from per-package assertions into a shared conformance package: the
// scenarios in fixtures.go are the same S1-S6 fixtures csp's own _test.go
// files already exercise individually, collected once here so cross-variant
// agreement (property 4) can be checked without rebuilding them per caller.
package harness
