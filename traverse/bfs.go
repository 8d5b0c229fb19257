// Package traverse: breadth-first search.
package traverse

import (
	"fmt"

	"github.com/cetrei/relationutils/graph"
)

// BFS performs breadth-first search on g starting from start, recording
// vertices in level order. Supports WithContext, WithOnVisit,
// WithMaxDepth, WithFilterNeighbor, and WithFullTraversal; the OnExit
// hook is DFS-only and ignored here.
// Complexity: O(V+E) time, O(V) memory.
func BFS(g *graph.Graph, start string, opts ...Option) (*Result, error) {
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

	vertices := g.Vertices()
	res := newResult(len(vertices))

	roots := []string{start}
	if o.FullTraversal {
		roots = vertices
	}

	// 4. Level-order sweep from each root.
	for _, root := range roots {
		if res.Visited[root] {
			continue
		}
		res.Visited[root] = true
		res.Depth[root] = 0
		queue := []string{root}

		for len(queue) > 0 {
			// Cancellation check once per dequeue.
			select {
			case <-o.Ctx.Done():
				return res, o.Ctx.Err()
			default:
			}

			id := queue[0]
			queue = queue[1:]

			if o.OnVisit != nil {
				if err := o.OnVisit(id); err != nil {
					return res, fmt.Errorf("traverse: OnVisit hook for %q: %w", id, err)
				}
			}
			res.Order = append(res.Order, id)

			// Depth limit: do not enqueue past the cut.
			if o.MaxDepth >= 0 && res.Depth[id] >= o.MaxDepth {
				continue
			}

			nbs, err := g.NeighborIDs(id)
			if err != nil {
				return res, fmt.Errorf("traverse: neighbors of %q: %w", id, err)
			}
			for _, nid := range nbs {
				if o.FilterNeighbor != nil && !o.FilterNeighbor(nid) {
					continue
				}
				if !res.Visited[nid] {
					res.Visited[nid] = true
					res.Depth[nid] = res.Depth[id] + 1
					res.Parent[nid] = id
					queue = append(queue, nid)
				}
			}
		}
	}

	return res, nil
}
