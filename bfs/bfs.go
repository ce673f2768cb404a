// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order, plus
// connected components ("islands") of the point field.
//
// Edge weights are ignored: BFS counts edges, not distance.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/pointfield/core"
)

// frontierItem is a queued point and its hop count.
type frontierItem struct {
	name  string
	depth int
}

// walker holds the mutable state of one traversal.
type walker struct {
	adj   map[string][]string
	opts  Options
	queue []frontierItem
	res   *Result
}

// BFS explores g breadth-first from start.
//
// The search runs on one g.Snapshot(), so concurrent edits never produce a
// torn traversal. Neighbors are expanded in natural name order, which makes
// Order fully reproducible.
//
// Errors (in check order):
//   - ErrGraphNil: g is nil.
//   - ErrOptionViolation: an Option was rejected.
//   - ErrStartNotFound: start is not a registered point.
//   - ctx.Err() on cancellation, or the wrapped OnVisit error.
//
// On a mid-search error the partial Result is returned alongside it.
//
// Complexity: O(V + E) after the snapshot.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	snap := g.Snapshot()
	if _, ok := snap.Points[start]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := len(snap.Names)
	w := &walker{
		adj:   snap.Adjacency,
		opts:  o,
		queue: make([]frontierItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.discover(start, 0, "")

	return w.res, w.run()
}

// discover records name at depth d and queues it.
func (w *walker) discover(name string, d int, from string) {
	w.res.Depth[name] = d
	if from != "" {
		w.res.Parent[name] = from
	}
	w.queue = append(w.queue, frontierItem{name: name, depth: d})
}

// run drains the queue.
func (w *walker) run() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		cur := w.queue[head]
		w.res.Order = append(w.res.Order, cur.name)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(cur.name, cur.depth); err != nil {
				return fmt.Errorf("bfs: visit %q: %w", cur.name, err)
			}
		}

		next := cur.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[cur.name] {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			if w.opts.Skip != nil && w.opts.Skip(cur.name, nbr) {
				continue
			}
			w.discover(nbr, next, cur.name)
		}
	}

	return nil
}
