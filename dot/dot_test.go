package dot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetrei/relationutils/dot"
	"github.com/cetrei/relationutils/graph"
	"github.com/cetrei/relationutils/relation"
)

// TestGraph_Directed emits a digraph with arrows in edge-ID order.
func TestGraph_Directed(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("b", "a")
	_, _ = g.AddEdge("a", "c")

	var sb strings.Builder
	require.NoError(t, dot.Graph(&sb, g))
	assert.Equal(t, `digraph "G" {
	"a";
	"b";
	"c";
	"b" -> "a";
	"a" -> "c";
}
`, sb.String())
}

// TestGraph_Undirected switches keyword and connector.
func TestGraph_Undirected(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddEdge("x", "y")

	var sb strings.Builder
	require.NoError(t, dot.Graph(&sb, g))
	assert.Contains(t, sb.String(), "graph \"G\" {")
	assert.Contains(t, sb.String(), `"x" -- "y";`)
	assert.NotContains(t, sb.String(), "->")
}

// TestGraph_Options covers name, rankdir, and edge labels.
func TestGraph_Options(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, err := g.AddEdge("job", "done", graph.WithLabel("ok"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, dot.Graph(&sb, g,
		dot.WithName("pipeline"),
		dot.WithRankDir("LR"),
		dot.WithEdgeLabels(),
	))
	out := sb.String()
	assert.Contains(t, out, `digraph "pipeline" {`)
	assert.Contains(t, out, "rankdir=LR;")
	assert.Contains(t, out, `"job" -> "done" [label="ok"];`)
}

// TestGraph_Guards rejects nil writer and graph.
func TestGraph_Guards(t *testing.T) {
	assert.ErrorIs(t, dot.Graph(nil, graph.NewGraph()), dot.ErrNilWriter)
	var sb strings.Builder
	assert.ErrorIs(t, dot.Graph(&sb, nil), dot.ErrNilGraph)
}

// TestRelation renders sorted pairs as arrows.
func TestRelation(t *testing.T) {
	r, err := relation.New([]string{"a", "b"}, relation.WithPairs(
		relation.Pair{A: "b", B: "a"},
		relation.Pair{A: "a", B: "a"},
	))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, dot.Relation(&sb, r))
	assert.Equal(t, `digraph "G" {
	"a";
	"b";
	"a" -> "a";
	"b" -> "a";
}
`, sb.String())

	assert.ErrorIs(t, dot.Relation(&sb, nil), dot.ErrNilRelation)
}

// TestQuoting escapes embedded quotes in IDs.
func TestQuoting(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	require.NoError(t, g.AddVertex(`say "hi"`))

	var sb strings.Builder
	require.NoError(t, dot.Graph(&sb, g))
	assert.Contains(t, sb.String(), `"say \"hi\"";`)
}
