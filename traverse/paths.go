// Package traverse: path search between two vertices.
package traverse

import "github.com/cetrei/relationutils/graph"

// FindPath returns the first path from → to discovered by DFS over
// sorted neighbor order, or nil if no path exists. Deterministic, but
// not necessarily shortest; use BFS parents for shortest hops.
// Returns ErrGraphNil, ErrStartNotFound, or ErrTargetNotFound.
// Complexity: O(V+E).
func FindPath(g *graph.Graph, from, to string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(from) {
		return nil, ErrStartNotFound
	}
	if !g.HasVertex(to) {
		return nil, ErrTargetNotFound
	}

	visited := make(map[string]bool)

	var walk func(id string) []string
	walk = func(id string) []string {
		visited[id] = true
		if id == to {
			return []string{id}
		}
		nbs, _ := g.NeighborIDs(id)
		for _, nid := range nbs {
			if visited[nid] {
				continue
			}
			if rest := walk(nid); rest != nil {
				return append([]string{id}, rest...)
			}
		}

		return nil
	}

	return walk(from), nil
}

// AllSimplePaths enumerates every simple path from → to (no repeated
// vertices) in deterministic order. limit > 0 caps the number of paths
// collected; limit <= 0 means unbounded.
// Returns ErrGraphNil, ErrStartNotFound, or ErrTargetNotFound.
// Complexity: exponential in the worst case; bound it with limit.
func AllSimplePaths(g *graph.Graph, from, to string, limit int) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(from) {
		return nil, ErrStartNotFound
	}
	if !g.HasVertex(to) {
		return nil, ErrTargetNotFound
	}

	paths := make([][]string, 0)
	onPath := make(map[string]bool)
	path := make([]string, 0)

	var walk func(id string)
	walk = func(id string) {
		if limit > 0 && len(paths) >= limit {
			return
		}
		onPath[id] = true
		path = append(path, id)

		if id == to {
			found := make([]string, len(path))
			copy(found, path)
			paths = append(paths, found)
		} else {
			nbs, _ := g.NeighborIDs(id)
			for _, nid := range nbs {
				if !onPath[nid] {
					walk(nid)
				}
			}
		}

		path = path[:len(path)-1]
		onPath[id] = false
	}
	walk(from)

	return paths, nil
}
