package csp

import "github.com/tachygraph/hgvroute/graph"

// Dist1 is a CSP-1 distance label: total elapsed time and time driven
// since the last break.
type Dist1 [2]graph.Weight

// Link adds w (an edge's travel time) to every component.
func (d Dist1) Link(w graph.Weight) Dist1 {
	return Dist1{d[0] + w, d[1] + w}
}

// ResetAt returns a copy with component i zeroed and a break of duration
// pause added to total time. i must be 1.
func (d Dist1) ResetAt(i int, pause graph.Weight) Dist1 {
	out := d
	out[0] += pause
	out[i] = 0
	return out
}

func Dist1Dominates(a, b Dist1) bool {
	if a == b {
		return false
	}
	return a[0] <= b[0] && a[1] <= b[1]
}

// Priority1 computes the scalar CSP-1 priority: an admissible estimate of
// total completion time including future mandatory breaks, given the CH
// potential h at the label's current node.
func Priority1(d Dist1, h graph.Weight, r Restriction) graph.Weight {
	if h >= graph.Infinity || r.MaxDrivingTime == 0 {
		return graph.Infinity
	}
	est0 := addH(d[0], h)
	if r.MaxDrivingTime >= graph.Infinity {
		return est0
	}
	est1 := addH(d[1], h)
	breaks := floorDivBreaks(est1, r.MaxDrivingTime)
	if est0 >= graph.Infinity {
		return graph.Infinity
	}
	return est0 + breaks*r.PauseTime
}

// Dist2 is a CSP-2 distance label: total elapsed time, time driven since
// the last short break, and time driven since the last long break.
type Dist2 [3]graph.Weight

// Link adds w to every component.
func (d Dist2) Link(w graph.Weight) Dist2 {
	return Dist2{d[0] + w, d[1] + w, d[2] + w}
}

// ResetAt returns a copy with component i zeroed and a break of duration
// pause added to total time. i must be 1 (short) or 2 (long); resetting
// the long counter (i=2) also resets the short counter, since a long
// break satisfies both restrictions at once.
func (d Dist2) ResetAt(i int, pause graph.Weight) Dist2 {
	out := d
	out[0] += pause
	out[i] = 0
	if i == 2 {
		out[1] = 0
	}
	return out
}

func dist2Dominates(a, b Dist2) bool {
	if a == b {
		return false
	}
	return a[0] <= b[0] && a[1] <= b[1] && a[2] <= b[2]
}

// priority2 computes the scalar CSP-2 priority.
func priority2(d Dist2, h graph.Weight, short, long Restriction) graph.Weight {
	if h >= graph.Infinity || short.MaxDrivingTime == 0 || long.MaxDrivingTime == 0 {
		return graph.Infinity
	}
	est0 := addH(d[0], h)
	if est0 >= graph.Infinity {
		return graph.Infinity
	}
	est1 := addH(d[1], h)
	est2 := addH(d[2], h)

	longBreaks := floorDivBreaks(est2, long.MaxDrivingTime)
	shortBreaks := floorDivBreaks(est1, short.MaxDrivingTime) - longBreaks
	if shortBreaks < 0 {
		shortBreaks = 0
	}
	return est0 + longBreaks*long.PauseTime + shortBreaks*short.PauseTime
}
