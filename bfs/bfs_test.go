package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointfield/bfs"
	"github.com/katalvlaran/pointfield/core"
)

// buildChain adds n points along the x axis and links consecutive ones.
func buildChain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddPoint(float64(i), 0)
	}
	for i := 1; i < n; i++ {
		require.NoError(t, g.ConnectPoints(strconv.Itoa(i), strconv.Itoa(i+1)))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "1")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "1")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	g.AddPoint(0, 0)
	_, err = bfs.BFS(g, "1", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SinglePoint covers the trivial one-point field.
func TestBFS_SinglePoint(t *testing.T) {
	g := core.NewGraph()
	g.AddPoint(1, 1)

	res, err := bfs.BFS(g, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, res.Order)
	assert.Equal(t, 0, res.Depth["1"])
	assert.Empty(t, res.Parent)
}

// TestBFS_CycleDepths covers a square cycle 1-2-3-4-1.
func TestBFS_CycleDepths(t *testing.T) {
	g := buildChain(t, 4)
	require.NoError(t, g.ConnectPoints("4", "1"))

	res, err := bfs.BFS(g, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "3"}, res.Order)
	assert.Equal(t, map[string]int{"1": 0, "2": 1, "4": 1, "3": 2}, res.Depth)
	assert.Equal(t, "2", res.Parent["3"], "lower-named neighbor discovers 3 first")

	path, err := res.PathTo("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, path)
}

// TestBFS_NaturalOrder checks that "10" is expanded after "9".
func TestBFS_NaturalOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 10; i++ {
		g.AddPoint(float64(i), 0)
	}
	for i := 2; i <= 10; i++ {
		require.NoError(t, g.ConnectPoints("1", strconv.Itoa(i)))
	}

	res, err := bfs.BFS(g, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 5)

	res, err := bfs.BFS(g, "1", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, res.Order)

	_, err = res.PathTo("5")
	assert.ErrorIs(t, err, bfs.ErrNotReached)

	res, err = bfs.BFS(g, "1", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5, "zero means unlimited")
}

func TestBFS_Filter(t *testing.T) {
	g := buildChain(t, 4)

	res, err := bfs.BFS(g, "1", bfs.WithSkip(func(_, to string) bool { return to == "3" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, res.Order)
}

func TestBFS_OnVisit(t *testing.T) {
	g := buildChain(t, 4)

	var seen []string
	stop := errors.New("stop")
	res, err := bfs.BFS(g, "1",
		bfs.WithOnVisit(func(name string, depth int) error {
			seen = append(seen, name+"@"+strconv.Itoa(depth))
			if name == "3" {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"1@0", "2@1", "3@2"}, seen)
	assert.Equal(t, []string{"1", "2", "3"}, res.Order, "partial result is kept")
}

func TestBFS_Cancel(t *testing.T) {
	g := buildChain(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "1", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_AfterDelete confirms deleted points vanish from traversal.
func TestBFS_AfterDelete(t *testing.T) {
	g := buildChain(t, 3)
	_, err := g.DeletePoint("2")
	require.NoError(t, err)

	res, err := bfs.BFS(g, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, res.Order)

	_, err = bfs.BFS(g, "2")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)
}
