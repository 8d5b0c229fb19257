// Package convert: lossless hops between relation, matrix, and graph.
package convert

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cetrei/relationutils/graph"
	"github.com/cetrei/relationutils/matrix"
	"github.com/cetrei/relationutils/relation"
)

var (
	// ErrNilSource is returned when the value to convert is nil.
	ErrNilSource = errors.New("convert: nil source")
	// ErrLabelMismatch is returned when the label count differs from the
	// matrix dimension.
	ErrLabelMismatch = errors.New("convert: label count does not match matrix size")
	// ErrDuplicateLabel is returned when two rows share a label.
	ErrDuplicateLabel = errors.New("convert: duplicate label")
)

// RelationToMatrix renders r as an n×n boolean matrix whose rows and
// columns follow r.Elements() order: cell (i,j) is set iff the pair
// (elements[i], elements[j]) belongs to r.
// Complexity: O(n²/64 + |R|) time.
func RelationToMatrix(r *relation.Relation) (*matrix.Dense, error) {
	if r == nil {
		return nil, ErrNilSource
	}

	elems := r.Elements()
	index := indexOf(elems)
	m, err := matrix.NewDense(len(elems))
	if err != nil {
		return nil, err
	}
	for _, p := range r.Pairs() {
		if err = m.Set(index[p.A], index[p.B], true); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MatrixToRelation rebuilds a relation from m, naming row i and column
// i after elements[i]. The label slice must cover every row exactly
// once.
func MatrixToRelation(m *matrix.Dense, elements []string) (*relation.Relation, error) {
	if m == nil {
		return nil, ErrNilSource
	}
	if len(elements) != m.N() {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrLabelMismatch, len(elements), m.N())
	}
	if err := checkDistinct(elements); err != nil {
		return nil, err
	}

	r, err := relation.New(elements)
	if err != nil {
		return nil, err
	}
	for _, p := range m.Pairs() {
		if err = r.AddPair(elements[p[0]], elements[p[1]]); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// RelationToGraph renders r as a directed graph with loops enabled:
// one vertex per element, one edge per pair.
func RelationToGraph(r *relation.Relation) (*graph.Graph, error) {
	if r == nil {
		return nil, ErrNilSource
	}

	g := graph.NewGraph(graph.WithDirected(true), graph.WithLoops())
	for _, id := range r.Elements() {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, p := range r.Pairs() {
		if _, err := g.AddEdge(p.A, p.B); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// GraphToRelation projects g onto a relation over its vertex set.
// Parallel edges collapse to a single pair; an undirected edge
// contributes both orientations.
func GraphToRelation(g *graph.Graph) (*relation.Relation, error) {
	if g == nil {
		return nil, ErrNilSource
	}

	r, err := relation.New(g.Vertices())
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if err = r.AddPair(e.From, e.To); err != nil {
			return nil, err
		}
		if !g.Directed() {
			if err = r.AddPair(e.To, e.From); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// GraphToMatrix renders g's adjacency as a boolean matrix indexed by
// the sorted vertex list. Undirected edges set both cells; parallel
// edges collapse.
func GraphToMatrix(g *graph.Graph) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilSource
	}

	verts := g.Vertices()
	index := indexOf(verts)
	m, err := matrix.NewDense(len(verts))
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if err = m.Set(index[e.From], index[e.To], true); err != nil {
			return nil, err
		}
		if !g.Directed() {
			if err = m.Set(index[e.To], index[e.From], true); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// MatrixToGraph interprets m as the adjacency matrix of a directed
// graph with loops, naming vertex i after labels[i]. A nil label slice
// falls back to decimal row numbers.
func MatrixToGraph(m *matrix.Dense, labels []string) (*graph.Graph, error) {
	if m == nil {
		return nil, ErrNilSource
	}
	if labels == nil {
		labels = make([]string, m.N())
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(labels) != m.N() {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrLabelMismatch, len(labels), m.N())
	}
	if err := checkDistinct(labels); err != nil {
		return nil, err
	}

	g := graph.NewGraph(graph.WithDirected(true), graph.WithLoops())
	for _, id := range labels {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, p := range m.Pairs() {
		if _, err := g.AddEdge(labels[p[0]], labels[p[1]]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// indexOf maps each id to its slice position.
func indexOf(ids []string) map[string]int {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	return index
}

// checkDistinct rejects repeated labels.
func checkDistinct(labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		seen[l] = struct{}{}
	}

	return nil
}
