// File: geometry.go
// Role: Euclidean weight of an edge, derived from current coordinates.
// Policy:
//   - Weights are a pure function of coordinates and are never cached.

package core

import "gonum.org/v1/gonum/spatial/r2"

// Vec converts p to a gonum planar vector.
func (p Point) Vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Distance returns the Euclidean distance between p and q.
//
// This is the only definition of edge weight in the module: an edge {a,b}
// weighs Distance(coords(a), coords(b)) at the moment it is asked for, so
// moving a point changes the weight of every incident edge.
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return r2.Norm(r2.Sub(p.Vec(), q.Vec()))
}
