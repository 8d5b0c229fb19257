// Package graph: structural classification.
package graph

import "strings"

// Kind classifies the graph in textbook vocabulary:
// "directed" or "undirected", plus ", multigraph" when parallel edges
// are present and ", pseudograph" when self-loops are present.
// Classification reflects the stored edges, not the policy flags.
// Complexity: O(E).
func (g *Graph) Kind() string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	parts := make([]string, 0, 3)
	if g.directed {
		parts = append(parts, "directed")
	} else {
		parts = append(parts, "undirected")
	}

	hasMulti, hasLoops := false, false
	for _, nbrs := range g.adjacency {
		for _, edgeSet := range nbrs {
			if len(edgeSet) > 1 {
				hasMulti = true
			}
		}
	}
	for _, e := range g.edges {
		if e.From == e.To {
			hasLoops = true
			break
		}
	}
	if hasMulti {
		parts = append(parts, "multigraph")
	}
	if hasLoops {
		parts = append(parts, "pseudograph")
	}

	return strings.Join(parts, ", ")
}
