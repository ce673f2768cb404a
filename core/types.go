// Package core defines the central Graph, Point, and Edge types,
// and provides the primitives for building and querying a point field.
//
// A single sync.RWMutex on Graph serializes every mutation and query, so the
// Point Registry and the Edge/Adjacency Store are always observed together in
// a consistent state.
//
// This file declares Point, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrPointNotFound  - requested point does not exist.
//	ErrSelfLoop       - an edge from a point to itself was requested.
//	ErrDuplicateEdge  - the unordered pair is already connected.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrInconsistent   - Check detected a broken registry/store invariant.
package core

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// Sentinel errors for core graph operations.
var (
	// ErrPointNotFound indicates an operation referenced a point that is not registered.
	ErrPointNotFound = errors.New("core: point not found")

	// ErrSelfLoop indicates an attempt to connect a point to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an attempt to connect an already connected pair.
	ErrDuplicateEdge = errors.New("core: points are already connected")

	// ErrEdgeNotFound indicates an operation referenced a pair that is not connected.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInconsistent indicates that the edge list and adjacency mapping disagree,
	// or that either references a point missing from the registry.
	ErrInconsistent = errors.New("core: inconsistent graph state")
)

// Point is a position in the plane. The unit is chosen by the caller.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Edge is an unordered pair of point names.
//
// A and B keep the order in which the pair was first connected; that order
// carries no meaning. Use Same to compare edges irrespective of orientation.
// Edges have no weight field: the weight is Distance between the current
// coordinates of A and B, computed on demand.
type Edge struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// edgeKey is the orientation-free identity of an Edge.
type edgeKey struct{ lo, hi string }

// Same reports whether e and o connect the same pair, in either orientation.
func (e Edge) Same(o Edge) bool { return e.key() == o.key() }

func (e Edge) key() edgeKey { return makeKey(e.A, e.B) }

// Has reports whether name is one of the endpoints of e.
func (e Edge) Has(name string) bool { return e.A == name || e.B == name }

// Other returns the endpoint opposite to name, and false if name is not an endpoint.
func (e Edge) Other(name string) (string, bool) {
	switch name {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	default:
		return "", false
	}
}

// makeKey orders the pair lexicographically so both orientations collapse to one key.
func makeKey(a, b string) edgeKey {
	if b < a {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger attaches a zerolog logger; mutations are reported at debug level.
func WithLogger(l zerolog.Logger) GraphOption {
	return func(g *Graph) { g.log = l }
}

// Graph is the Graph Mutator: it owns a Registry and a Store and keeps them
// mutually consistent under AddPoint, MovePoint, ConnectPoints and DeletePoint.
//
// mu guards both containers; every exported method holds it for its whole
// duration, so no caller can observe a partially applied operation.
type Graph struct {
	mu sync.RWMutex

	points *Registry // name → coordinates, name allocation
	links  *Store    // edge list + adjacency mapping

	log zerolog.Logger
}

// NewGraph creates an empty Graph. The first point added is named "1".
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		points: NewRegistry(),
		links:  NewStore(),
		log:    zerolog.Nop(),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
