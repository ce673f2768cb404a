package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pointfield/bfs"
	"github.com/katalvlaran/pointfield/core"
)

// ExampleBFS_grid demonstrates BFS layering on a 3×3 grid of points.
// Names run row by row: 1 2 3 / 4 5 6 / 7 8 9.
func ExampleBFS_grid() {
	g := core.NewGraph()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.AddPoint(float64(x), float64(y))
		}
	}
	name := func(x, y int) string { return fmt.Sprint(y*3 + x + 1) }
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x+1 < 3 {
				_ = g.ConnectPoints(name(x, y), name(x+1, y))
			}
			if y+1 < 3 {
				_ = g.ConnectPoints(name(x, y), name(x, y+1))
			}
		}
	}

	res, err := bfs.BFS(g, "1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	path, _ := res.PathTo("9")
	fmt.Println(path)
	// Output:
	// [1 2 4 3 5 7 6 8 9]
	// [1 2 3 6 9]
}

// ExampleComponents lists the islands of a small field.
func ExampleComponents() {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		g.AddPoint(float64(i), 0)
	}
	_ = g.ConnectPoints("1", "3")
	_ = g.ConnectPoints("4", "5")

	fmt.Println(bfs.Components(g))
	// Output: [[1 3] [2] [4 5]]
}
