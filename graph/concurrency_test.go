// Package graph_test verifies thread-safety of graph.Graph under
// concurrent operations.
package graph_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cetrei/relationutils/graph"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe
// and every neighbor appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num, "expected %d unique neighbors", num)
}

// TestConcurrentReadWrite mixes queries with mutation to verify no races
// or panics occur under concurrent access.
func TestConcurrentReadWrite(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("Base", fmt.Sprintf("V%d", id))
		}(i)

		go func() {
			defer wg.Done()
			_ = g.Vertices()
			_, _, _ = g.Degree("Base")
			_ = g.Kind()
		}()
	}
	wg.Wait()

	require.Equal(t, rounds+1, g.VertexCount())
	require.Equal(t, rounds, g.EdgeCount())
}
