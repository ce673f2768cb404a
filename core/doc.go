// Package core provides the in-memory point field: named points in the plane,
// undirected edges between them, and the adjacency mapping derived from those
// edges, kept mutually consistent under interactive editing.
//
// The field G = (P, E) is built from three parts:
//
//   - Registry – the Point Registry. Owns names and current coordinates.
//     Names are "1", "2", ... from a per-registry counter and are never reused.
//   - Store    – the Edge/Adjacency Store. Owns the edge list (insertion order)
//     and the symmetric adjacency mapping name → neighbor set.
//   - Graph    – the Graph Mutator. Owns one Registry and one Store behind a
//     single sync.RWMutex and is the only type callers should mutate.
//
// Edge weights are never stored. The weight of {a,b} is Distance between the
// current coordinates of a and b, so MovePoint changes the weight of every
// incident edge without touching the Store.
//
// Invariants (hold after every exported Graph method returns):
//
//   - every name in an edge or in the adjacency mapping is registered
//   - adjacency is symmetric: b ∈ adj[a] ⇔ a ∈ adj[b]
//   - {a,b} ∈ edges ⇔ b ∈ adj[a]
//   - no self-loops, no duplicate unordered pairs
//   - DeletePoint removes the point, its edges and all back-references atomically
//
// Graph.Check verifies the first four and is cheap enough to call in tests after every step.
//
// Core Methods:
//
//	// Point lifecycle
//	AddPoint(x, y float64) string                 // O(1)
//	MovePoint(name string, x, y float64) error    // O(1)
//	DeletePoint(name string) ([]string, error)    // O(E + d·log d), returns former neighbors
//
//	// Edge lifecycle
//	ConnectPoints(a, b string) error              // O(1)
//
//	// Query
//	AllPoints() map[string]Point                  // O(V)
//	AllEdges() []Edge                             // O(E), insertion order
//	NeighborsOf(name string) ([]string, error)    // O(d·log d), natural order
//	AdjacencyList() map[string][]string           // O(V + E·log E)
//	EdgeWeight(a, b string) (float64, error)      // O(1)
//	Snapshot() *Snapshot                          // consistent copy for solvers
//	Stats() GraphStats
//	Check() error
//
// Errors:
//
//	ErrPointNotFound – name is not registered
//	ErrSelfLoop      – ConnectPoints(a, a)
//	ErrDuplicateEdge – {a,b} already connected (either orientation)
//	ErrEdgeNotFound  – EdgeWeight on an unconnected pair
//	ErrInconsistent  – Check found a violated invariant
//
// Every failing operation leaves the graph exactly as it was.
package core
