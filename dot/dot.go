// Package dot: Graphviz DOT rendering.
package dot

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cetrei/relationutils/graph"
	"github.com/cetrei/relationutils/relation"
)

var (
	// ErrNilWriter is returned when the destination writer is nil.
	ErrNilWriter = errors.New("dot: writer is nil")
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("dot: graph is nil")
	// ErrNilRelation is returned when the relation argument is nil.
	ErrNilRelation = errors.New("dot: relation is nil")
)

// Options configures DOT rendering.
type Options struct {
	// Name is the graph identifier after the digraph/graph keyword.
	Name string
	// RankDir sets the layout direction attribute ("LR", "TB", ...);
	// empty omits it.
	RankDir string
	// EdgeLabels emits the stored edge label as a label attribute.
	EdgeLabels bool
}

// DefaultOptions names the graph "G" with no extra attributes.
func DefaultOptions() Options {
	return Options{Name: "G"}
}

// Option mutates Options.
type Option func(*Options)

// WithName overrides the graph identifier.
func WithName(name string) Option { return func(o *Options) { o.Name = name } }

// WithRankDir emits a rankdir attribute.
func WithRankDir(dir string) Option { return func(o *Options) { o.RankDir = dir } }

// WithEdgeLabels enables label attributes on edges.
func WithEdgeLabels() Option { return func(o *Options) { o.EdgeLabels = true } }

// Graph writes g as DOT source: digraph with "->" arrows when g is
// directed, graph with "--" otherwise. Vertices are sorted, edges
// follow edge-ID order.
func Graph(w io.Writer, g *graph.Graph, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	if g == nil {
		return ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	keyword, arrow := "digraph", "->"
	if !g.Directed() {
		keyword, arrow = "graph", "--"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s {\n", keyword, quote(o.Name))
	if o.RankDir != "" {
		fmt.Fprintf(&b, "\trankdir=%s;\n", o.RankDir)
	}
	for _, v := range g.Vertices() {
		fmt.Fprintf(&b, "\t%s;\n", quote(v))
	}
	for _, e := range g.Edges() {
		if o.EdgeLabels && e.Label != "" {
			fmt.Fprintf(&b, "\t%s %s %s [label=%s];\n", quote(e.From), arrow, quote(e.To), quote(e.Label))
		} else {
			fmt.Fprintf(&b, "\t%s %s %s;\n", quote(e.From), arrow, quote(e.To))
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// Relation writes r as a DOT digraph: one node per universe element,
// one arrow per pair.
func Relation(w io.Writer, r *relation.Relation, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	if r == nil {
		return ErrNilRelation
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", quote(o.Name))
	if o.RankDir != "" {
		fmt.Fprintf(&b, "\trankdir=%s;\n", o.RankDir)
	}
	for _, e := range r.Elements() {
		fmt.Fprintf(&b, "\t%s;\n", quote(e))
	}
	for _, p := range r.Pairs() {
		fmt.Fprintf(&b, "\t%s -> %s;\n", quote(p.A), quote(p.B))
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// quote wraps s in double quotes, escaping embedded quotes and
// backslashes.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return `"` + s + `"`
}
