// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore points in non-decreasing hop count from a start point.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from point → edges from start
//   - Parent: map from point → its predecessor in the BFS tree
//   - OnVisit hook, which may abort the search with an error.
//   - Hiding individual edges via WithSkip.
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Components / SameComponent split the field into islands.
//
// Why
//
//   - Cheap reachability: two points have a weighted path iff they share a component.
//   - Island listing for the command-line driver.
//
// Determinism
//
//	Adjacency lists in core.Snapshot are in natural name order and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = points, E = edges)
//
//   - Time:   O(V + E) plus the snapshot cost
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "1",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(name string, depth int) error { return nil }),
//	)
//
//	islands := bfs.Components(g) // [][]string
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if the start point does not exist.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached       from Result.PathTo for unreached points.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err() on cancellation.
package bfs
