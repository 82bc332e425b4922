// Package tsvector implements a timestamped vector: a fixed-size slice
// that supports an O(1)-amortized "reset every slot to its default" by
// bumping a generation counter instead of touching every slot.
//
// A slot is considered live only while its stored stamp equals the
// vector's current generation; Reset advances the generation so all
// slots become stale at once. On (extremely unlikely) stamp overflow the
// vector falls back to a real O(n) reset, which is also the path used
// by Clean for callers that want to force a physical reset.
//
// Grounded on the timestamped_vector used throughout the reference
// label-setting search, where it backs per-node settled distances and
// per-node label sets so a new query never pays to clear the whole graph.
package tsvector
