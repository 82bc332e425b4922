package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/tachygraph/hgvroute/graph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when a start node id is not in [0, n).
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a BFS traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error, the
	// traversal aborts and propagates that error.
	OnVisit func(v graph.NodeId, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. Zero explicitly
	// disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip an edge by returning false.
	FilterNeighbor func(cur, neighbor graph.NodeId) bool

	err error
}

// DefaultOptions returns sane defaults: background context, no depth
// limit, no filtering, a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(graph.NodeId, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ graph.NodeId) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(v graph.NodeId, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth (inclusive).
// d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(cur, neighbor graph.NodeId) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal over an n-node graph.
// Depth and Parent are indexed by node id; an unvisited node has
// Depth == -1 and Parent == graph.InvalidNode.
type Result struct {
	Order  []graph.NodeId
	Depth  []int32
	Parent []graph.NodeId
}

// PathTo reconstructs the path from a traversal's source(s) to dest.
func (r *Result) PathTo(dest graph.NodeId) ([]graph.NodeId, error) {
	if r.Depth[dest] < 0 {
		return nil, fmt.Errorf("bfs: no path to node %d", dest)
	}
	path := []graph.NodeId{dest}
	for cur := dest; r.Parent[cur] != graph.InvalidNode; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
