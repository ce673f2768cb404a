// Package dijkstra implements Dijkstra's shortest-path algorithm on a point field.
//
// Each query takes one core.Snapshot and works only on it, so the result is
// computed against a single consistent state even if the graph is edited
// concurrently. Edge weights are Euclidean distances between the snapshot's
// coordinates and are therefore always non-negative.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each point is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to 2E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Heap entries are ordered by distance, then by natural name order, and
//     neighbors are relaxed in natural order. Together with strict “<”
//     relaxation this makes the chosen path among equal-weight paths stable.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - ShortestPath stops as soon as the target is finalized.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/maruel/natural"

	"github.com/katalvlaran/pointfield/core"
)

// ShortestPath returns a minimum total-distance path from source to target.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance).
//  3. source and target must be registered points (ErrPointNotFound).
//
// Returns:
//   - Path{[source], 0} when source == target.
//   - ErrNoPath when no chain of edges joins the two points.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case, plus O(V log V + E log E) for the snapshot.
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGraph
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return Path{}, err
	}

	snap := g.Snapshot()
	if _, ok := snap.Points[source]; !ok {
		return Path{}, fmt.Errorf("%w: %q", ErrPointNotFound, source)
	}
	if _, ok := snap.Points[target]; !ok {
		return Path{}, fmt.Errorf("%w: %q", ErrPointNotFound, target)
	}
	if source == target {
		return Path{Names: []string{source}, Distance: 0}, nil
	}

	r := newRunner(snap, cfg, source)
	r.stopAt = target
	r.process()

	return r.tree().PathTo(target)
}

// Tree computes shortest distances from source to every point of g.
//
// Preconditions mirror ShortestPath (ErrNilGraph, ErrBadMaxDistance,
// ErrPointNotFound). Unreachable points get +Inf in Dist.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Tree(g *core.Graph, source string, opts ...Option) (*ShortestPathTree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	snap := g.Snapshot()
	if _, ok := snap.Points[source]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrPointNotFound, source)
	}

	r := newRunner(snap, cfg, source)
	r.process()

	return r.tree(), nil
}

// buildOptions applies opts over the defaults and surfaces recorded errors.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Options{}, cfg.err
	}

	return cfg, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	snap    *core.Snapshot      // The frozen graph state; read-only.
	options Options             // Configuration options.
	source  string              // Source point name.
	stopAt  string              // Optional early-exit target ("" = explore all).
	dist    map[string]float64  // Point name → current best distance from source.
	prev    map[string]string   // Point name → predecessor on the shortest path.
	visited map[string]struct{} // Points whose distance is final.
	pq      nodePQ              // Min-heap of *nodeItem for lazy priority queue.
}

// newRunner initializes distances to +Inf, the source to 0, and seeds the heap.
func newRunner(snap *core.Snapshot, cfg Options, source string) *runner {
	V := len(snap.Names)
	r := &runner{
		snap:    snap,
		options: cfg,
		source:  source,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]struct{}, V),
		pq:      make(nodePQ, 0, V),
	}
	for _, name := range snap.Names {
		r.dist[name] = math.Inf(1)
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// process repeatedly extracts the closest unvisited point and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable points processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The early-exit target has been finalized.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if _, done := r.visited[u]; done {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = struct{}{}

		if u == r.stopAt {
			return
		}
		r.relax(u)
	}
}

// relax tries to improve the distance of every neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) {
	for _, v := range r.snap.Adjacency[u] {
		if _, done := r.visited[v]; done {
			continue
		}

		newDist := r.dist[u] + r.snap.Weight(u, v)
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict “<”: an equal-weight alternative never replaces the path found first.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// tree packages the runner state; points beyond MaxDistance are reset to +Inf.
func (r *runner) tree() *ShortestPathTree {
	for name, d := range r.dist {
		if d > r.options.MaxDistance {
			r.dist[name] = math.Inf(1)
			delete(r.prev, name)
		}
	}

	return &ShortestPathTree{Source: r.source, Dist: r.dist, Prev: r.prev}
}

// nodeItem represents a point and its tentative distance from the source.
type nodeItem struct {
	id   string  // point name
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, natural name order).
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, then natural name order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return natural.Less(pq[i].id, pq[j].id)
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
