// Package dijkstra answers shortest-path queries on a core.Graph.
//
// Overview:
//
//   - ShortestPath(g, source, target) returns one minimum total-distance route
//     between two named points, or ErrNoPath / ErrPointNotFound.
//   - Tree(g, source) returns single-source distances and predecessors; use
//     ShortestPathTree.PathTo to rebuild any route from it.
//
// Weights:
//
//   - The weight of edge {a,b} is core.Distance between the coordinates of a
//     and b in the snapshot taken at the start of the query. Moving a point
//     changes later results; nothing is cached between queries.
//   - Distances are never negative, so the greedy extraction order is exact.
//
// Determinism:
//
//   - When several routes share the minimum weight, the one reached first in
//     (distance, natural name) order is returned, the same one on every call.
//
// API reference:
//
//	func ShortestPath(g *core.Graph, source, target string, opts ...Option) (Path, error)
//	func Tree(g *core.Graph, source string, opts ...Option) (*ShortestPathTree, error)
//
//	  - opts: WithMaxDistance(float64) caps the explored distance.
//	  - err:  ErrNilGraph, ErrBadMaxDistance, ErrPointNotFound, ErrNoPath.
//
// Thread safety:
//
//   - Queries only read a snapshot and may run concurrently with edits of g.
//
// See also:
//
//   - core.Graph: point and edge mutation.
//   - bfs.Components: cheap unweighted reachability check.
package dijkstra
