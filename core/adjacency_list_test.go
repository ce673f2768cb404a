package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointfield/core"
)

// TestStore_Connect covers self-loop and duplicate rejection in both orientations.
func TestStore_Connect(t *testing.T) {
	s := core.NewStore()
	s.Track("1")
	s.Track("2")

	assert.ErrorIs(t, s.Connect("1", "1"), core.ErrSelfLoop)
	require.NoError(t, s.Connect("1", "2"))
	assert.ErrorIs(t, s.Connect("1", "2"), core.ErrDuplicateEdge)
	assert.ErrorIs(t, s.Connect("2", "1"), core.ErrDuplicateEdge)

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.HasEdge("1", "2"))
	assert.True(t, s.HasEdge("2", "1"))
	assert.Equal(t, []string{"2"}, s.NeighborsOf("1"))
	assert.Equal(t, []string{"1"}, s.NeighborsOf("2"))
}

// TestStore_DisconnectAll verifies cascading removal and idempotence.
func TestStore_DisconnectAll(t *testing.T) {
	s := core.NewStore()
	for _, n := range []string{"1", "2", "3", "4"} {
		s.Track(n)
	}
	require.NoError(t, s.Connect("1", "2"))
	require.NoError(t, s.Connect("3", "2"))
	require.NoError(t, s.Connect("2", "4"))
	require.NoError(t, s.Connect("1", "3"))

	removed := s.DisconnectAll("2")
	assert.Equal(t, []string{"1", "3", "4"}, removed)
	assert.Empty(t, s.NeighborsOf("2"))
	assert.Equal(t, []string{"3"}, s.NeighborsOf("1"))
	assert.Equal(t, []string{"1"}, s.NeighborsOf("3"))
	assert.Empty(t, s.NeighborsOf("4"))
	assert.Equal(t, []core.Edge{{A: "1", B: "3"}}, slices.Collect(s.Edges()))

	// Second call is a no-op.
	assert.Empty(t, s.DisconnectAll("2"))
	assert.Equal(t, 1, s.Len())
}

// TestStore_EdgesSnapshot verifies insertion order and that the sequence is
// restartable and detached from later mutations.
func TestStore_EdgesSnapshot(t *testing.T) {
	s := core.NewStore()
	require.NoError(t, s.Connect("3", "1"))
	require.NoError(t, s.Connect("1", "2"))

	seq := s.Edges()
	require.NoError(t, s.Connect("2", "3"))

	want := []core.Edge{{A: "3", B: "1"}, {A: "1", B: "2"}}
	assert.Equal(t, want, slices.Collect(seq))
	assert.Equal(t, want, slices.Collect(seq), "sequence must be restartable")

	// Early break stops iteration.
	var first []core.Edge
	for e := range s.Edges() {
		first = append(first, e)
		break
	}
	assert.Equal(t, []core.Edge{{A: "3", B: "1"}}, first)
}

// TestStore_Untrack verifies the entry is dropped and edges are cleaned if any remain.
func TestStore_Untrack(t *testing.T) {
	s := core.NewStore()
	require.NoError(t, s.Connect("1", "2"))

	assert.Equal(t, []string{"2"}, s.Untrack("1"))
	assert.Zero(t, s.Len())
	assert.Empty(t, s.NeighborsOf("2"))
	assert.Empty(t, s.Untrack("1"))
}
