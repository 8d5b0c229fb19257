// Package traverse: topological sort on directed graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v. If the graph contains a
// cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package traverse

import (
	"context"

	"github.com/cetrei/relationutils/graph"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only
// cancellation.
type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context for TopologicalSort.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *graph.Graph
	opts  topoOptions
	state map[string]int // white/gray/black
	order []string       // post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Ties are broken by the sorted vertex order, so the result is
// deterministic.
// Returns ErrGraphNil, ErrUndirected, ErrCycleDetected, or the context
// error on cancellation.
func TopologicalSort(g *graph.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only directed graphs are orderable.
	if !g.Directed() {
		return nil, ErrUndirected
	}
	// 3. Apply optional settings.
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}
	// 4. Initialize sorter state.
	verts := g.Vertices()
	s := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	// 5. Drive DFS from every unvisited vertex.
	for _, v := range verts {
		if s.state[v] == white {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 6. Reverse post-order to produce the topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (s *topoSorter) visit(id string) error {
	// 1. Cancellation check at entry.
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	// 2. A gray vertex on the stack means a back edge.
	if s.state[id] == gray {
		return ErrCycleDetected
	}
	// 3. Already fully processed? Skip.
	if s.state[id] == black {
		return nil
	}
	// 4. Mark in-progress and recurse.
	s.state[id] = gray
	nbs, _ := s.graph.NeighborIDs(id)
	for _, nid := range nbs {
		if err := s.visit(nid); err != nil {
			return err
		}
	}
	// 5. Finish and record post-order.
	s.state[id] = black
	s.order = append(s.order, id)

	return nil
}
