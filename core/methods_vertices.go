// File: methods_vertices.go
// Role: Point lifecycle & queries on Graph: AddPoint/MovePoint/DeletePoint/Point/HasPoint/Names.
//
// Determinism:
//   - Names() returns point names in natural order.
//   - DeletePoint returns removed neighbors in natural order.
//
// Concurrency:
//   - Mutations hold g.mu for writing; queries hold it for reading.
package core

import "fmt"

// AddPoint registers a new point at (x, y) and returns its name.
//
// Implementation:
//   - Stage 1: Under the write lock, allocate the next sequential name in the registry.
//   - Stage 2: Create the empty adjacency entry for the new name.
//
// Returns:
//   - string: the allocated name ("1", "2", ...). Names are never reused.
//
// Errors:
//   - None.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddPoint(x, y float64) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	name := g.points.AddPoint(x, y)
	g.links.Track(name)

	g.log.Debug().Str("point", name).Float64("x", x).Float64("y", y).Msg("point added")

	return name
}

// MovePoint overwrites the coordinates of an existing point.
//
// Edges are not touched: their weights are derived from coordinates at query
// time, so every incident edge changes weight implicitly.
//
// Errors:
//   - ErrPointNotFound: name is not registered (state unchanged).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) MovePoint(name string, x, y float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.points.MovePoint(name, x, y); err != nil {
		return err
	}
	g.log.Debug().Str("point", name).Float64("x", x).Float64("y", y).Msg("point moved")

	return nil
}

// DeletePoint removes a point and every edge incident to it.
//
// Implementation:
//   - Stage 1: Under the write lock, verify the point exists (ErrPointNotFound).
//   - Stage 2: Disconnect all incident edges and back-references in the store.
//   - Stage 3: Drop the point's own adjacency entry.
//   - Stage 4: Remove the point from the registry.
//
// Behavior highlights:
//   - Stages run in this order so that no edge ever references a missing point.
//   - The write lock spans all stages; readers never see a partial deletion.
//   - Deleting an already deleted name fails with ErrPointNotFound.
//
// Returns:
//   - []string: former neighbors, in natural order, so the caller can erase rendered edges.
//
// Complexity:
//   - Time O(E + d log d), Space O(d).
func (g *Graph) DeletePoint(name string) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.points.Has(name) {
		return nil, fmt.Errorf("%w: %q", ErrPointNotFound, name)
	}

	removed := g.links.DisconnectAll(name)
	g.links.Untrack(name)
	if err := g.points.RemovePoint(name); err != nil {
		// Presence was checked under the same lock.
		return nil, err
	}

	g.log.Debug().Str("point", name).Strs("neighbors", removed).Msg("point deleted")

	return removed, nil
}

// Point returns the current coordinates of name.
//
// Errors:
//   - ErrPointNotFound: name is not registered.
func (g *Graph) Point(name string) (Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.points.Get(name)
}

// HasPoint reports whether name is a registered point.
func (g *Graph) HasPoint(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.points.Has(name)
}

// Names returns all point names in natural order ("2" before "10").
//
// Complexity: O(V log V).
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.points.Names()
}

// PointCount returns the number of registered points.
func (g *Graph) PointCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.points.Len()
}

// AllPoints returns a copy of the name → coordinates mapping.
// Mutating the returned map does not affect the graph.
//
// Complexity: O(V).
func (g *Graph) AllPoints() map[string]Point {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.points.Points()
}
