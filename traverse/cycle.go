// Package traverse: cycle detection.
//
// Directed graphs use white/gray/black coloring with back-edge
// detection. Undirected graphs use DFS over the undirected view,
// skipping the edge back to the immediate parent; self-loops and
// parallel edges always count as cycles.
package traverse

import "github.com/cetrei/relationutils/graph"

// HasCycle reports whether g contains at least one cycle.
// Complexity: O(V+E) time, O(V) memory.
func HasCycle(g *graph.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	// Self-loops are one-vertex cycles in either mode.
	for _, e := range g.Edges() {
		if e.From == e.To {
			return true, nil
		}
	}

	if g.Directed() {
		return hasDirectedCycle(g), nil
	}

	return hasUndirectedCycle(g), nil
}

// hasDirectedCycle runs coloring DFS from every unvisited vertex.
func hasDirectedCycle(g *graph.Graph) bool {
	state := make(map[string]int, g.VertexCount())

	var visit func(id string) bool
	visit = func(id string) bool {
		state[id] = gray
		nbs, _ := g.NeighborIDs(id)
		for _, nid := range nbs {
			switch state[nid] {
			case gray:
				return true // back edge
			case white:
				if visit(nid) {
					return true
				}
			}
		}
		state[id] = black

		return false
	}

	for _, v := range g.Vertices() {
		if state[v] == white && visit(v) {
			return true
		}
	}

	return false
}

// hasUndirectedCycle runs parent-skipping DFS over the undirected view.
// Parallel edges between two vertices form a cycle and are caught by the
// multigraph check up front.
func hasUndirectedCycle(g *graph.Graph) bool {
	// A parallel pair is already a cycle.
	seen := make(map[[2]string]bool)
	for _, e := range g.Edges() {
		key := [2]string{e.From, e.To}
		if e.To < e.From {
			key = [2]string{e.To, e.From}
		}
		if seen[key] {
			return true
		}
		seen[key] = true
	}

	und := undirectedAdjacency(g)
	visited := make(map[string]bool, len(und))

	var visit func(id, parent string) bool
	visit = func(id, parent string) bool {
		visited[id] = true
		for _, nid := range und[id] {
			if nid == parent {
				continue
			}
			if visited[nid] {
				return true
			}
			if visit(nid, id) {
				return true
			}
		}

		return false
	}

	for _, v := range g.Vertices() {
		if !visited[v] && visit(v, "") {
			return true
		}
	}

	return false
}
