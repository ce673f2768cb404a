// File: registry.go
// Role: Point Registry: named points and their current coordinates.
// Determinism:
//   - Names() returns names in natural order ("2" before "10").
//   - Names are allocated from a per-registry counter starting at 1 and are never reused.
// Concurrency:
//   - Registry is not synchronized; Graph serializes access under its own lock.

package core

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/maruel/natural"
)

// Registry owns the set of named points.
//
// It knows nothing about edges: removing a point here does not clean up
// adjacency. Graph.DeletePoint orders the two steps so that no edge ever
// references a missing point.
type Registry struct {
	next   uint64           // last allocated sequence number
	points map[string]Point // name → coordinates
}

// NewRegistry returns an empty Registry whose first allocated name is "1".
func NewRegistry() *Registry {
	return &Registry{points: make(map[string]Point)}
}

// AddPoint allocates the next sequential name, stores (x, y) under it and
// returns the name. It never fails.
//
// Complexity: O(1) amortized.
func (r *Registry) AddPoint(x, y float64) string {
	r.next++
	name := strconv.FormatUint(r.next, 10)
	r.points[name] = Point{X: x, Y: y}

	return name
}

// MovePoint overwrites the coordinates of an existing point.
// Returns ErrPointNotFound if name is absent.
func (r *Registry) MovePoint(name string, x, y float64) error {
	if _, ok := r.points[name]; !ok {
		return fmt.Errorf("%w: %q", ErrPointNotFound, name)
	}
	r.points[name] = Point{X: x, Y: y}

	return nil
}

// RemovePoint deletes the point record.
// Returns ErrPointNotFound if name is absent.
func (r *Registry) RemovePoint(name string) error {
	if _, ok := r.points[name]; !ok {
		return fmt.Errorf("%w: %q", ErrPointNotFound, name)
	}
	delete(r.points, name)

	return nil
}

// Get returns the coordinates of name, or ErrPointNotFound.
func (r *Registry) Get(name string) (Point, error) {
	p, ok := r.points[name]
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrPointNotFound, name)
	}

	return p, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.points[name]
	return ok
}

// Len returns the number of registered points.
func (r *Registry) Len() int { return len(r.points) }

// Names returns every registered name in natural order.
//
// Complexity: O(V log V).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.points))
	var name string
	for name = range r.points {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	return names
}

// Points returns a copy of the name → coordinates mapping.
//
// Complexity: O(V).
func (r *Registry) Points() map[string]Point {
	out := make(map[string]Point, len(r.points))
	var name string
	var p Point
	for name, p = range r.points {
		out[name] = p
	}

	return out
}
