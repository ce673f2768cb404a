package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pointfield/core"
)

// ExampleGraph demonstrates adding, connecting and deleting points.
func ExampleGraph() {
	g := core.NewGraph()

	// 1) Place three points; names are allocated sequentially.
	a := g.AddPoint(0, 0)
	b := g.AddPoint(3, 0)
	c := g.AddPoint(3, 4)

	// 2) Connect them into a triangle.
	_ = g.ConnectPoints(a, b)
	_ = g.ConnectPoints(b, c)
	_ = g.ConnectPoints(a, c)
	fmt.Println("edges:", g.AllEdges())

	// 3) Delete the corner; its edges go with it.
	removed, _ := g.DeletePoint(b)
	fmt.Println("removed neighbors:", removed)
	fmt.Println("edges:", g.AllEdges())

	// Output:
	// edges: [{1 2} {2 3} {1 3}]
	// removed neighbors: [1 3]
	// edges: [{1 3}]
}

// ExampleGraph_EdgeWeight shows that weights follow point moves.
func ExampleGraph_EdgeWeight() {
	g := core.NewGraph()
	a := g.AddPoint(0, 0)
	b := g.AddPoint(3, 4)
	_ = g.ConnectPoints(a, b)

	w, _ := g.EdgeWeight(a, b)
	fmt.Println(w)

	_ = g.MovePoint(b, 6, 8)
	w, _ = g.EdgeWeight(a, b)
	fmt.Println(w)

	// Output:
	// 5
	// 10
}

// ExampleGraph_ConnectPoints shows the rejected connections.
func ExampleGraph_ConnectPoints() {
	g := core.NewGraph()
	a := g.AddPoint(0, 0)
	b := g.AddPoint(1, 0)

	fmt.Println(g.ConnectPoints(a, b))
	fmt.Println(errors.Is(g.ConnectPoints(b, a), core.ErrDuplicateEdge))
	fmt.Println(errors.Is(g.ConnectPoints(a, a), core.ErrSelfLoop))
	fmt.Println(errors.Is(g.ConnectPoints(a, "7"), core.ErrPointNotFound))

	// Output:
	// <nil>
	// true
	// true
	// true
}
