// File: methods_edges.go
// Role: Edge lifecycle & queries on Graph: ConnectPoints/HasEdge/AllEdges/EdgeCount/EdgeWeight.
// Determinism:
//   - AllEdges() returns edges in insertion order.
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.

package core

import (
	"fmt"
	"slices"
)

// ConnectPoints adds the undirected edge {a,b}.
//
// Steps:
//  1. Lock g.mu for writing.
//  2. Both endpoints must be registered ⇒ else ErrPointNotFound.
//  3. Store.Connect rejects a == b (ErrSelfLoop) and an existing pair in
//     either orientation (ErrDuplicateEdge).
//
// ConnectPoints(a,b) and ConnectPoints(b,a) are equivalent; the second call
// fails with ErrDuplicateEdge. On any error the graph is unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) ConnectPoints(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.points.Has(a) {
		return fmt.Errorf("%w: %q", ErrPointNotFound, a)
	}
	if !g.points.Has(b) {
		return fmt.Errorf("%w: %q", ErrPointNotFound, b)
	}
	if err := g.links.Connect(a, b); err != nil {
		return err
	}

	g.log.Debug().Str("a", a).Str("b", b).Msg("points connected")

	return nil
}

// HasEdge reports whether {a,b} exists, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.links.HasEdge(a, b)
}

// AllEdges returns all edges in insertion order. The slice is a copy.
// Complexity: O(E).
func (g *Graph) AllEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Collect(g.links.Edges())
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.links.Len()
}

// EdgeWeight returns the current weight of {a,b}: the Euclidean distance
// between the endpoints' coordinates at the time of the call.
//
// Errors:
//   - ErrPointNotFound: a or b is not registered.
//   - ErrEdgeNotFound: a and b are not connected.
//
// Complexity: O(1).
func (g *Graph) EdgeWeight(a, b string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pa, err := g.points.Get(a)
	if err != nil {
		return 0, err
	}
	pb, err := g.points.Get(b)
	if err != nil {
		return 0, err
	}
	if !g.links.HasEdge(a, b) {
		return 0, fmt.Errorf("%w: {%s,%s}", ErrEdgeNotFound, a, b)
	}

	return Distance(pa, pb), nil
}
