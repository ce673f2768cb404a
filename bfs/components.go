// File: components.go
// Role: Connected components ("islands") of the point field.
// Determinism:
//   - Each component is in natural name order; components are ordered by
//     their smallest name, which is also the order they are discovered in.
// Concurrency:
//   - Works on a single g.Snapshot().

package bfs

import (
	"sort"

	"github.com/maruel/natural"

	"github.com/katalvlaran/pointfield/core"
)

// Components partitions the points of g into connected components.
// Isolated points form singleton components. A nil graph has none.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	snap := g.Snapshot()

	return components(snap.Names, snap.Adjacency)
}

// components scans names in natural order and floods each unvisited one.
func components(names []string, adj map[string][]string) [][]string {
	visited := make(map[string]bool, len(names))
	var islands [][]string

	for _, n := range names {
		if visited[n] {
			continue
		}
		island := []string{}
		queue := []string{n}
		visited[n] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			island = append(island, v)
			for _, nei := range adj[v] {
				if !visited[nei] {
					visited[nei] = true
					queue = append(queue, nei)
				}
			}
		}
		sort.Sort(natural.StringSlice(island))
		islands = append(islands, island)
	}

	return islands
}

// SameComponent reports whether a and b are joined by some chain of edges.
// A point is in the same component as itself; unknown names never are.
//
// Complexity: O(V + E) worst case.
func SameComponent(g *core.Graph, a, b string) bool {
	if g == nil {
		return false
	}
	res, err := BFS(g, a)
	if err != nil {
		return false
	}
	_, ok := res.Depth[b]

	return ok
}
