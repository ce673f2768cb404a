// Package dijkstra defines the result types, options and sentinel errors of
// the shortest-path solver over a core.Graph.
//
// Edge weights are the Euclidean distances between the endpoints' coordinates
// as captured by core.Graph.Snapshot at the start of each query; they are
// never cached between queries.
//
// Options:
//
//	– WithMaxDistance: cap on explored distance; targets beyond it are reported as ErrNoPath.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrPointNotFound   if the source or target is not registered (wraps core.ErrPointNotFound).
//	– ErrNoPath          if the target is not reachable from the source.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pointfield/core"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrPointNotFound indicates that an endpoint is not a registered point.
	// errors.Is(err, core.ErrPointNotFound) also holds.
	ErrPointNotFound = fmt.Errorf("dijkstra: %w", core.ErrPointNotFound)

	// ErrNoPath indicates that the endpoints lie in different connected components
	// (or that the target is beyond MaxDistance). It is a query result, not a
	// graph fault.
	ErrNoPath = errors.New("dijkstra: no path between points")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the solver.
//
// MaxDistance – points whose shortest distance exceeds this value are not
// explored and count as unreachable. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// A negative or NaN value makes the query fail with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// Path is one minimum-weight route between two points.
type Path struct {
	// Names lists the points from source to target inclusive.
	Names []string `json:"names"`

	// Distance is the sum of the Euclidean lengths of the traversed edges.
	Distance float64 `json:"distance"`
}

// ShortestPathTree holds single-source results.
//
// Dist has an entry for every point of the queried snapshot; unreachable
// points map to +Inf. Prev[v] == u means the chosen shortest path to v
// arrives from u; the source and unreachable points have no entry.
type ShortestPathTree struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// PathTo reconstructs the path from the tree's source to target.
//
// Errors:
//   - ErrPointNotFound: target was not a point when the tree was computed.
//   - ErrNoPath: target is unreachable.
func (t *ShortestPathTree) PathTo(target string) (Path, error) {
	d, ok := t.Dist[target]
	if !ok {
		return Path{}, fmt.Errorf("%w: %q", ErrPointNotFound, target)
	}
	if math.IsInf(d, 1) {
		return Path{}, fmt.Errorf("%w: %s → %s", ErrNoPath, t.Source, target)
	}

	// build reversed path
	names := []string{target}
	for cur := target; cur != t.Source; {
		cur = t.Prev[cur]
		names = append(names, cur)
	}
	// reverse to get source → target
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}

	return Path{Names: names, Distance: d}, nil
}
