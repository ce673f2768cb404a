package dijkstra_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/pointfield/core"
	"github.com/katalvlaran/pointfield/dijkstra"
)

// buildGrid lays out side×side points on a unit grid with 4-neighborhood edges.
func buildGrid(side int) *core.Graph {
	g := core.NewGraph()
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			g.AddPoint(float64(x), float64(y))
		}
	}
	name := func(x, y int) string { return strconv.Itoa(y*side + x + 1) }
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if x+1 < side {
				_ = g.ConnectPoints(name(x, y), name(x+1, y))
			}
			if y+1 < side {
				_ = g.ConnectPoints(name(x, y), name(x, y+1))
			}
		}
	}

	return g
}

// BenchmarkShortestPath_Grid runs corner-to-corner queries on a 50×50 grid.
func BenchmarkShortestPath_Grid(b *testing.B) {
	const side = 50
	g := buildGrid(side)
	target := strconv.Itoa(side * side)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, "1", target)
	}
}

// BenchmarkTree_Random measures full single-source runs on a random field.
func BenchmarkTree_Random(b *testing.B) {
	const (
		V = 2000
		E = 8000
	)
	rng := rand.New(rand.NewSource(7))
	g := core.NewGraph()
	for i := 0; i < V; i++ {
		g.AddPoint(rng.Float64()*1000, rng.Float64()*1000)
	}
	for i := 0; i < E; i++ {
		_ = g.ConnectPoints(strconv.Itoa(rng.Intn(V)+1), strconv.Itoa(rng.Intn(V)+1))
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Tree(g, "1")
	}
}
