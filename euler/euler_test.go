package euler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetrei/relationutils/euler"
	"github.com/cetrei/relationutils/graph"
)

// pathGraph builds the undirected path A—B—C.
func pathGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C")
	require.NoError(t, err)

	return g
}

// TestNilGuards rejects nil graphs on every entry point.
func TestNilGuards(t *testing.T) {
	_, err := euler.HasEulerCircuit(nil)
	assert.ErrorIs(t, err, euler.ErrGraphNil)
	_, err = euler.HasEulerPath(nil)
	assert.ErrorIs(t, err, euler.ErrGraphNil)
	_, _, err = euler.Endpoints(nil)
	assert.ErrorIs(t, err, euler.ErrGraphNil)
	_, err = euler.EulerPath(nil)
	assert.ErrorIs(t, err, euler.ErrGraphNil)
}

// TestNoEdges: an edgeless graph has no walk to make.
func TestNoEdges(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	ok, err := euler.HasEulerPath(g)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = euler.EulerPath(g)
	assert.ErrorIs(t, err, euler.ErrNoEulerPath)
}

// TestUndirectedPath: A—B—C has two odd vertices, so an open walk
// A,B,C exists but no circuit.
func TestUndirectedPath(t *testing.T) {
	g := pathGraph(t)

	circuit, err := euler.HasEulerCircuit(g)
	require.NoError(t, err)
	assert.False(t, circuit)

	open, err := euler.HasEulerPath(g)
	require.NoError(t, err)
	assert.True(t, open)

	start, end, err := euler.Endpoints(g)
	require.NoError(t, err)
	assert.Equal(t, "A", start)
	assert.Equal(t, "C", end)

	path, err := euler.EulerPath(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

// TestUndirectedTriangle: all degrees even, circuit from the smallest
// vertex back to itself.
func TestUndirectedTriangle(t *testing.T) {
	g := pathGraph(t)
	_, err := g.AddEdge("C", "A")
	require.NoError(t, err)

	circuit, err := euler.HasEulerCircuit(g)
	require.NoError(t, err)
	assert.True(t, circuit)

	start, end, err := euler.Endpoints(g)
	require.NoError(t, err)
	assert.Equal(t, "A", start)
	assert.Equal(t, "A", end)

	path, err := euler.EulerPath(g)
	require.NoError(t, err)
	require.Len(t, path, 4)
	assert.Equal(t, "A", path[0])
	assert.Equal(t, "A", path[3])
}

// TestFourOddVertices: the bridges-of-Königsberg shape admits no walk.
func TestFourOddVertices(t *testing.T) {
	g := graph.NewGraph(graph.WithMultiEdges())
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "B"}, {"A", "C"}, {"A", "C"}, {"A", "D"}, {"B", "D"}, {"C", "D"},
	} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	ok, err := euler.HasEulerPath(g)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = euler.EulerPath(g)
	assert.ErrorIs(t, err, euler.ErrNoEulerPath)
}

// TestDirectedCycle: balanced in/out degrees admit a circuit.
func TestDirectedCycle(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("x", "y")
	_, _ = g.AddEdge("y", "z")
	_, _ = g.AddEdge("z", "x")

	circuit, err := euler.HasEulerCircuit(g)
	require.NoError(t, err)
	assert.True(t, circuit)

	path, err := euler.EulerPath(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z", "x"}, path)
}

// TestDirectedOpenPath: one surplus and one deficit vertex force the
// endpoints.
func TestDirectedOpenPath(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")

	circuit, err := euler.HasEulerCircuit(g)
	require.NoError(t, err)
	assert.False(t, circuit)

	start, end, err := euler.Endpoints(g)
	require.NoError(t, err)
	assert.Equal(t, "a", start)
	assert.Equal(t, "c", end)

	path, err := euler.EulerPath(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, path)
}

// TestDirectedImbalanced: a two-out-surplus profile admits nothing.
func TestDirectedImbalanced(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("hub", "a")
	_, _ = g.AddEdge("hub", "b")

	ok, err := euler.HasEulerPath(g)
	require.NoError(t, err)
	assert.False(t, ok)
	_, _, err = euler.Endpoints(g)
	assert.ErrorIs(t, err, euler.ErrNoEulerPath)
}

// TestDisconnectedEdges: two separate edges cannot share one walk.
func TestDisconnectedEdges(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("c", "d")

	ok, err := euler.HasEulerPath(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestIsolatedVertexIgnored: a lone vertex does not break connectivity.
func TestIsolatedVertexIgnored(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.AddVertex("island"))

	ok, err := euler.HasEulerPath(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestSelfLoop: an undirected loop keeps degrees even.
func TestSelfLoop(t *testing.T) {
	g := graph.NewGraph(graph.WithLoops())
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("b", "b")

	path, err := euler.EulerPath(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "b", "c"}, path)
}
