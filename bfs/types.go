// File: types.go
// Role: Search options, sentinel errors and the Result of a traversal.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start name is not a registered point.
	ErrStartNotFound = errors.New("bfs: start point not found")

	// ErrOptionViolation wraps any rejected Option value.
	ErrOptionViolation = errors.New("bfs: invalid option")

	// ErrNotReached is returned by Result.PathTo for a point outside the search.
	ErrNotReached = errors.New("bfs: point not reached")
)

// Option tunes one traversal. A rejected value is remembered and reported by
// BFS as ErrOptionViolation before any work is done.
type Option func(*Options)

// Options is the resolved traversal configuration.
type Options struct {
	// Ctx is polled once per dequeued point; cancellation aborts with ctx.Err().
	Ctx context.Context

	// MaxDepth > 0 keeps only points within that many hops; 0 means unbounded.
	MaxDepth int

	// OnVisit runs for each point in visit order; an error aborts the search.
	OnVisit func(name string, depth int) error

	// Skip, when set, hides the edge from→to from the search.
	Skip func(from, to string) bool

	err error
}

// DefaultOptions returns an unbounded, uncancellable search with no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext makes the search stop when ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the hop count; d == 0 lifts the bound, d < 0 is rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative max depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit installs a per-point callback.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithSkip hides edges for which fn reports true.
func WithSkip(fn func(from, to string) bool) Option {
	return func(o *Options) { o.Skip = fn }
}

// Result is a breadth-first tree rooted at the start point.
type Result struct {
	// Order lists reached points in the order they were visited.
	Order []string

	// Depth maps every reached point to its hop count from the start.
	Depth map[string]int

	// Parent maps every reached point except the start to the point it was
	// discovered from.
	Parent map[string]string
}

// PathTo returns a fewest-hops route from the start to dest, both included.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	route := make([]string, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		route[i] = cur
		cur = r.Parent[cur]
	}

	return route, nil
}
