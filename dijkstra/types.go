package dijkstra

import (
	"errors"

	"github.com/tachygraph/hgvroute/graph"
)

// Sentinel errors returned by this package.
var (
	ErrNilGraph       = errors.New("dijkstra: graph is nil")
	ErrBadNode        = errors.New("dijkstra: node id out of range")
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a Query.
type Options struct {
	MaxDistance graph.Weight
}

// Option is a functional option for configuring a Query.
type Option func(*Options)

// WithMaxDistance caps exploration: nodes whose tentative distance would
// exceed max are not relaxed further. Panics on a negative value.
func WithMaxDistance(max graph.Weight) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the default configuration: no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: graph.Infinity}
}
