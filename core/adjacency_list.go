// File: adjacency_list.go
// Role: Edge/Adjacency Store: the undirected edge list and its derived adjacency mapping.
// Determinism:
//   - Edges() yields edges in insertion order.
//   - NeighborsOf() and DisconnectAll() return names in natural order.
// Concurrency:
//   - Store is not synchronized; Graph serializes access under its own lock.

package core

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/maruel/natural"
)

// Store owns the undirected edge set and the adjacency mapping derived from it.
//
// Invariants kept by every method:
//   - adjacency is symmetric: b ∈ adj[a] ⇔ a ∈ adj[b];
//   - {a,b} ∈ edges ⇔ b ∈ adj[a];
//   - no self-loops, at most one edge per unordered pair.
//
// Whether a name is a registered point is the caller's concern.
type Store struct {
	edges []Edge                         // insertion order
	index map[edgeKey]struct{}           // orientation-free membership of edges
	adj   map[string]map[string]struct{} // name → neighbor set
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		index: make(map[edgeKey]struct{}),
		adj:   make(map[string]map[string]struct{}),
	}
}

// Track creates an empty adjacency entry for name if it has none.
func (s *Store) Track(name string) {
	if _, ok := s.adj[name]; !ok {
		s.adj[name] = make(map[string]struct{})
	}
}

// Untrack drops the adjacency entry of name, disconnecting it first if it
// still has edges. It returns the neighbors that were disconnected.
func (s *Store) Untrack(name string) []string {
	var removed []string
	if len(s.adj[name]) > 0 {
		removed = s.DisconnectAll(name)
	}
	delete(s.adj, name)

	return removed
}

// Connect inserts the undirected edge {a,b}.
//
// Errors:
//   - ErrSelfLoop: a == b.
//   - ErrDuplicateEdge: {a,b} or {b,a} already present.
//
// On error the store is unchanged.
//
// Complexity: O(1) amortized.
func (s *Store) Connect(a, b string) error {
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}
	k := makeKey(a, b)
	if _, dup := s.index[k]; dup {
		return fmt.Errorf("%w: {%s,%s}", ErrDuplicateEdge, a, b)
	}

	s.Track(a)
	s.Track(b)
	s.edges = append(s.edges, Edge{A: a, B: b})
	s.index[k] = struct{}{}
	s.adj[a][b] = struct{}{}
	s.adj[b][a] = struct{}{} // mirror

	return nil
}

// DisconnectAll removes every edge touching name and removes name from each
// neighbor's adjacency set. The adjacency entry of name itself stays, empty.
// It returns the former neighbors; a point without edges yields an empty slice.
//
// Complexity: O(E + d log d) where d is the degree of name.
func (s *Store) DisconnectAll(name string) []string {
	nbrs := s.adj[name]
	removed := make([]string, 0, len(nbrs))
	if len(nbrs) == 0 {
		return removed
	}

	var n string
	for n = range nbrs {
		delete(s.adj[n], name)
		delete(s.index, makeKey(name, n))
		removed = append(removed, n)
	}
	s.adj[name] = make(map[string]struct{})

	// Compact the edge list in place, keeping insertion order of survivors.
	s.edges = slices.DeleteFunc(s.edges, func(e Edge) bool { return e.Has(name) })

	sort.Sort(natural.StringSlice(removed))

	return removed
}

// HasEdge reports whether {a,b} is present, in either orientation.
func (s *Store) HasEdge(a, b string) bool {
	_, ok := s.index[makeKey(a, b)]
	return ok
}

// Edges returns a lazy sequence over the edges present at call time, in
// insertion order. The sequence can be ranged over any number of times and
// is not affected by later mutations of the store.
func (s *Store) Edges() iter.Seq[Edge] {
	snapshot := slices.Clone(s.edges)

	return func(yield func(Edge) bool) {
		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of edges.
func (s *Store) Len() int { return len(s.edges) }

// NeighborsOf returns the neighbor set of name in natural order.
// Unknown names have no neighbors.
func (s *Store) NeighborsOf(name string) []string {
	nbrs := s.adj[name]
	out := make([]string, 0, len(nbrs))
	var n string
	for n = range nbrs {
		out = append(out, n)
	}
	sort.Sort(natural.StringSlice(out))

	return out
}

// adjacency renders the whole mapping with naturally sorted neighbor lists.
func (s *Store) adjacency() map[string][]string {
	out := make(map[string][]string, len(s.adj))
	var name string
	for name = range s.adj {
		out[name] = s.NeighborsOf(name)
	}

	return out
}

// verify checks the store against itself and against the set of registered names.
// It returns the first violation found, wrapped in ErrInconsistent.
func (s *Store) verify(registered func(string) bool) error {
	if len(s.index) != len(s.edges) {
		return fmt.Errorf("%w: %d edges but %d index keys", ErrInconsistent, len(s.edges), len(s.index))
	}

	// Every edge: no loop, endpoints registered, mirrored in adjacency.
	seen := make(map[edgeKey]struct{}, len(s.edges))
	arcs := 0
	for _, e := range s.edges {
		if e.A == e.B {
			return fmt.Errorf("%w: self-loop on %q", ErrInconsistent, e.A)
		}
		if _, dup := seen[e.key()]; dup {
			return fmt.Errorf("%w: duplicate edge {%s,%s}", ErrInconsistent, e.A, e.B)
		}
		seen[e.key()] = struct{}{}
		if !registered(e.A) || !registered(e.B) {
			return fmt.Errorf("%w: edge {%s,%s} references a missing point", ErrInconsistent, e.A, e.B)
		}
		if _, ok := s.adj[e.A][e.B]; !ok {
			return fmt.Errorf("%w: edge {%s,%s} missing from adjacency of %q", ErrInconsistent, e.A, e.B, e.A)
		}
		if _, ok := s.adj[e.B][e.A]; !ok {
			return fmt.Errorf("%w: edge {%s,%s} missing from adjacency of %q", ErrInconsistent, e.A, e.B, e.B)
		}
	}

	// Every adjacency entry: registered, symmetric, backed by an edge.
	var a, b string
	var nbrs map[string]struct{}
	for a, nbrs = range s.adj {
		if !registered(a) {
			return fmt.Errorf("%w: adjacency entry for missing point %q", ErrInconsistent, a)
		}
		for b = range nbrs {
			if _, ok := s.adj[b][a]; !ok {
				return fmt.Errorf("%w: %q lists %q but not vice versa", ErrInconsistent, a, b)
			}
			if _, ok := seen[makeKey(a, b)]; !ok {
				return fmt.Errorf("%w: adjacency %q-%q has no edge", ErrInconsistent, a, b)
			}
			arcs++
		}
	}
	if arcs != 2*len(s.edges) {
		return fmt.Errorf("%w: %d adjacency arcs for %d edges", ErrInconsistent, arcs, len(s.edges))
	}

	return nil
}
