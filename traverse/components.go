// Package traverse: connectivity analysis.
package traverse

import (
	"sort"

	"github.com/cetrei/relationutils/graph"
)

// Components returns the weakly connected components of g: edge
// direction is ignored, so two vertices share a component iff some
// undirected path joins them. Each component is sorted internally and
// components are ordered by their first vertex.
// Complexity: O(V+E) time, O(V+E) memory.
func Components(g *graph.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// 1. Build the undirected view once.
	und := undirectedAdjacency(g)

	// 2. Sweep every vertex, flooding its component.
	visited := make(map[string]bool, len(und))
	components := make([][]string, 0)
	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		component := make([]string, 0)
		stack := []string{root}
		visited[root] = true
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, id)
			for _, nid := range und[id] {
				if !visited[nid] {
					visited[nid] = true
					stack = append(stack, nid)
				}
			}
		}
		sort.Strings(component)
		components = append(components, component)
	}
	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })

	return components, nil
}

// IsConnected reports whether g is connected: strongly connected for
// directed graphs (every ordered pair mutually reachable), a single
// weak component for undirected graphs. The empty graph is connected.
// Complexity: O(V·(V+E)) directed, O(V+E) undirected.
func IsConnected(g *graph.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return true, nil
	}

	if !g.Directed() {
		comps, err := Components(g)
		if err != nil {
			return false, err
		}

		return len(comps) == 1, nil
	}

	// Directed: every vertex must reach every other along forward edges.
	for _, root := range vertices {
		res, err := BFS(g, root)
		if err != nil {
			return false, err
		}
		if len(res.Order) != len(vertices) {
			return false, nil
		}
	}

	return true, nil
}

// undirectedAdjacency flattens g's adjacency with edge direction erased.
// Neighbor lists come out sorted for deterministic traversal.
func undirectedAdjacency(g *graph.Graph) map[string][]string {
	sets := make(map[string]map[string]struct{})
	for _, v := range g.Vertices() {
		sets[v] = make(map[string]struct{})
	}
	for _, e := range g.Edges() {
		if e.From != e.To {
			sets[e.From][e.To] = struct{}{}
			sets[e.To][e.From] = struct{}{}
		}
	}

	out := make(map[string][]string, len(sets))
	for v, set := range sets {
		nbs := make([]string, 0, len(set))
		for n := range set {
			nbs = append(nbs, n)
		}
		sort.Strings(nbs)
		out[v] = nbs
	}

	return out
}
