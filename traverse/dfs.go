// Package traverse: depth-first search.
//
// DFS supports single-source and forest traversal, pre-/post-order
// hooks, depth limits, neighbor filtering, and context cancellation,
// over directed and undirected graphs alike.
package traverse

import (
	"fmt"

	"github.com/cetrei/relationutils/graph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *graph.Graph // underlying graph
	opts  Options      // traversal options
	res   *Result      // result collector
}

// DFS performs depth-first search on g starting from start. With
// WithFullTraversal it covers all disconnected components; otherwise it
// explores only the tree rooted at start.
// Returns the Result, or an error if aborted by context or a hook.
// Complexity: O(V+E) time, O(V) memory.
func DFS(g *graph.Graph, start string, opts ...Option) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify start.
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartNotFound
	}

	// 4. Initialize result with capacity hint.
	vertices := g.Vertices()
	w := &dfsWalker{graph: g, opts: o, res: newResult(len(vertices))}

	// 5. Traverse: forest or single tree.
	if o.FullTraversal {
		for _, v := range vertices {
			if !w.res.Visited[v] {
				if err := w.walk(v, "", 0); err != nil {
					return w.res, err
				}
			}
		}
	} else if err := w.walk(start, "", 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// walk visits id at the given depth, recursing into unvisited neighbors.
// It honors cancellation, the depth limit, hooks, and filtering.
// parent is "" for roots; it is recorded only once the depth limit
// admits id, so Parent never names an undiscovered vertex.
func (w *dfsWalker) walk(id, parent string, depth int) error {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop below the cut.
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited, record depth and discovery edge.
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}

	// 4. Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("traverse: OnVisit hook for %q: %w", id, err)
		}
	}

	// 5. Explore neighbors in deterministic order.
	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("traverse: neighbors of %q: %w", id, err)
	}
	for _, nid := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			continue
		}
		if !w.res.Visited[nid] {
			if err = w.walk(nid, id, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook, then record finish order.
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("traverse: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
