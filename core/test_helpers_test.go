// Package core_test contains test helpers for pointfield/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by core tests.
//   - Provide invariant assertions usable after every mutation step.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointfield/core"
)

// Names allocated by a fresh graph, in allocation order.
const (
	Point1 = "1"
	Point2 = "2"
	Point3 = "3"
	Point4 = "4"

	PointMissing = "99"
	PointEmpty   = ""
)

// NewRightTriangle builds the 3-4-5 triangle used across tests:
//
//	3 (3,4)
//	|  \
//	4    5
//	|      \
//	2 (3,0)-3-1 (0,0)
//
// Edges 1-2 (3), 2-3 (4), 1-3 (5) are added in that order.
func NewRightTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	require.Equal(t, Point1, g.AddPoint(0, 0))
	require.Equal(t, Point2, g.AddPoint(3, 0))
	require.Equal(t, Point3, g.AddPoint(3, 4))
	require.NoError(t, g.ConnectPoints(Point1, Point2))
	require.NoError(t, g.ConnectPoints(Point2, Point3))
	require.NoError(t, g.ConnectPoints(Point1, Point3))

	return g
}

// RequireConsistent asserts consistency through Check and re-derives adjacency
// symmetry and edge/adjacency agreement from the public accessors only.
func RequireConsistent(t *testing.T, g *core.Graph) {
	t.Helper()

	require.NoError(t, g.Check())

	points := g.AllPoints()
	edges := g.AllEdges()

	// Every edge is between registered, distinct points and appears in both neighbor sets.
	for _, e := range edges {
		require.NotEqual(t, e.A, e.B, "self-loop %v", e)
		require.Contains(t, points, e.A)
		require.Contains(t, points, e.B)

		na, err := g.NeighborsOf(e.A)
		require.NoError(t, err)
		require.Contains(t, na, e.B)

		nb, err := g.NeighborsOf(e.B)
		require.NoError(t, err)
		require.Contains(t, nb, e.A)
	}

	// Every neighbor relation is symmetric and backed by exactly one edge.
	for name := range points {
		nbrs, err := g.NeighborsOf(name)
		require.NoError(t, err)
		for _, n := range nbrs {
			back, err := g.NeighborsOf(n)
			require.NoError(t, err)
			require.Contains(t, back, name, "%s lists %s but not vice versa", name, n)
			require.Equal(t, 1, countEdges(edges, name, n), "edge {%s,%s}", name, n)
		}
	}
}

// countEdges counts edges joining a and b in either orientation.
func countEdges(edges []core.Edge, a, b string) int {
	want := core.Edge{A: a, B: b}
	n := 0
	for _, e := range edges {
		if e.Same(want) {
			n++
		}
	}

	return n
}
