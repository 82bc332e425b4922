// Package corech implements Core-CH queries (C8): a bidirectional
// contraction-hierarchy search whose Up/Down graphs stop contracting at a
// designated "core" subset of highest-rank nodes. Because every pair of
// core nodes is connected directly by a shortcut in Up/Down once they are
// both part of the core, a side whose own endpoint already lies in the
// core can skip its exploration entirely: the opposite side's ascent
// through Up/Down is guaranteed to reach it directly.
//
// This mirrors the contraction hierarchy query in package ch, adding the
// is-core skip and the direct-hit termination (settling the other side's
// endpoint ends the query immediately, without waiting for the queue-min
// crossing condition).
package corech
