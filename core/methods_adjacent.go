// File: methods_adjacent.go
// Role: Neighborhood queries and whole-graph read views: NeighborsOf, AdjacencyList,
//       Snapshot, Stats, Check.
// Determinism:
//   - Neighbor lists are in natural order; Snapshot edges keep insertion order.
// Concurrency:
//   - Every method holds the read lock for its whole duration, so multi-part
//     results (Snapshot, Stats) describe a single consistent state.

package core

import (
	"fmt"
	"slices"
)

// NeighborsOf returns the names directly connected to name, in natural order.
//
// Errors:
//   - ErrPointNotFound: name is not registered.
//
// Complexity: O(d log d).
func (g *Graph) NeighborsOf(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.points.Has(name) {
		return nil, fmt.Errorf("%w: %q", ErrPointNotFound, name)
	}

	return g.links.NeighborsOf(name), nil
}

// AdjacencyList returns a copy of the adjacency mapping: every registered
// point maps to its naturally sorted neighbor list (empty for isolated points).
//
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.links.adjacency()
}

// Snapshot is an immutable copy of the whole graph taken under one read lock.
//
// Solvers work on snapshots so a query never mixes coordinates or edges from
// two different states.
type Snapshot struct {
	// Points maps each name to its coordinates at snapshot time.
	Points map[string]Point `json:"points"`

	// Edges lists edges in insertion order.
	Edges []Edge `json:"edges"`

	// Adjacency maps each name to its naturally sorted neighbors.
	Adjacency map[string][]string `json:"adjacency"`

	// Names lists every point name in natural order.
	Names []string `json:"names"`
}

// Snapshot captures points, edges and adjacency atomically.
//
// Complexity: O(V log V + E log E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &Snapshot{
		Points:    g.points.Points(),
		Edges:     slices.Collect(g.links.Edges()),
		Adjacency: g.links.adjacency(),
		Names:     g.points.Names(),
	}
}

// Weight returns the derived weight of the edge between a and b in the
// snapshot. It does not check that the edge exists.
func (s *Snapshot) Weight(a, b string) float64 {
	return Distance(s.Points[a], s.Points[b])
}

// GraphStats is a compact summary of a graph.
type GraphStats struct {
	PointCount     int     `json:"point_count"`
	EdgeCount      int     `json:"edge_count"`
	IsolatedPoints int     `json:"isolated_points"`
	TotalLength    float64 `json:"total_length"` // sum of current edge weights
}

// Stats computes a GraphStats under one read lock.
//
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		PointCount: g.points.Len(),
		EdgeCount:  g.links.Len(),
	}
	for _, name := range g.points.Names() {
		if len(g.links.adj[name]) == 0 {
			st.IsolatedPoints++
		}
	}
	for e := range g.links.Edges() {
		st.TotalLength += Distance(g.points.points[e.A], g.points.points[e.B])
	}

	return st
}

// Check verifies that the registry, the edge list and the adjacency mapping
// agree: every referenced name is registered, adjacency is symmetric, every
// adjacency entry is backed by exactly one edge, there are no loops or
// duplicate pairs, and every registered point has an adjacency entry.
//
// Errors:
//   - ErrInconsistent wrapped with the first violation found.
//
// Complexity: O(V + E).
func (g *Graph) Check() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.links.verify(g.points.Has); err != nil {
		return err
	}
	for name := range g.points.points {
		if _, ok := g.links.adj[name]; !ok {
			return fmt.Errorf("%w: point %q has no adjacency entry", ErrInconsistent, name)
		}
	}

	return nil
}
