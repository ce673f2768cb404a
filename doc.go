// Package pointfield is an in-memory editor model for a field of named
// points in the plane joined by undirected edges, with shortest-path queries
// weighted by Euclidean distance.
//
// What is pointfield?
//
//	A thread-safe graph core plus the pieces needed to drive it interactively:
//		• core:        Point Registry, Edge/Adjacency Store, Graph Mutator
//		• dijkstra:    shortest weighted path between two named points
//		• bfs:         hop-count traversal and connected components ("islands")
//		• interaction: headless gesture layer (modes, hit-testing, link gesture, drag)
//		• config:      YAML settings for the command-line driver
//		• cmd/pointfield: line-oriented driver
//
// Key guarantees
//
//   - Point names "1", "2", ... come from a per-graph counter and are never reused.
//   - Edges are unordered pairs; {a,b} and {b,a} are the same edge.
//   - Deleting a point removes every incident edge and back-reference at once.
//   - Edge weights are never stored: moving a point changes every incident
//     weight for the next query.
//
// Quick ASCII example:
//
//	    3 (3,4)
//	    │ ╲
//	  4 │   ╲ 5
//	    │     ╲
//	    2───────1
//	  (3,0)  3  (0,0)
//
//	ShortestPath(1, 3) = 1-3 (5), not 1-2-3 (7).
//
//	go get github.com/katalvlaran/pointfield
package pointfield
