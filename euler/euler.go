// Package euler: Eulerian tests and Hierholzer path construction.
package euler

import (
	"errors"
	"sort"

	"github.com/cetrei/relationutils/graph"
	"github.com/cetrei/relationutils/traverse"
)

var (
	// ErrGraphNil is returned when the graph argument is nil.
	ErrGraphNil = errors.New("euler: graph is nil")
	// ErrNoEulerPath is returned when no edge-covering walk exists.
	ErrNoEulerPath = errors.New("euler: no euler path exists")
)

// HasEulerCircuit reports whether g admits a closed walk using every
// edge exactly once. Requires at least one edge, one component among
// non-isolated vertices, and balanced degrees (directed: in==out
// everywhere; undirected: all degrees even).
func HasEulerCircuit(g *graph.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.EdgeCount() == 0 {
		return false, nil
	}
	ok, err := edgeConnected(g)
	if err != nil || !ok {
		return false, err
	}
	odd, start, end, err := imbalance(g)
	if err != nil {
		return false, err
	}

	return odd == 0 && start == "" && end == "", nil
}

// HasEulerPath reports whether g admits a walk (open or closed) using
// every edge exactly once.
func HasEulerPath(g *graph.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.EdgeCount() == 0 {
		return false, nil
	}
	ok, err := edgeConnected(g)
	if err != nil || !ok {
		return false, err
	}

	return openOrClosed(g)
}

// Endpoints returns the forced start and end vertices of an Euler path
// in g. When a circuit exists the walk may close anywhere, so both
// endpoints are the smallest non-isolated vertex. Returns
// ErrNoEulerPath when no walk exists.
func Endpoints(g *graph.Graph) (start, end string, err error) {
	if g == nil {
		return "", "", ErrGraphNil
	}
	if g.EdgeCount() == 0 {
		return "", "", ErrNoEulerPath
	}
	ok, err := edgeConnected(g)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", ErrNoEulerPath
	}

	odd, s, e, err := imbalance(g)
	if err != nil {
		return "", "", err
	}
	switch {
	case g.Directed() && odd == 0 && s != "" && e != "":
		return s, e, nil
	case g.Directed() && odd == 0 && s == "" && e == "":
		v := smallestActive(g)

		return v, v, nil
	case !g.Directed() && odd == 2:
		return s, e, nil
	case !g.Directed() && odd == 0:
		v := smallestActive(g)

		return v, v, nil
	default:
		return "", "", ErrNoEulerPath
	}
}

// EulerPath returns a vertex sequence walking every edge of g exactly
// once, starting at the forced endpoint (or the smallest active vertex
// for circuits). Returns ErrNoEulerPath when no such walk exists.
func EulerPath(g *graph.Graph) ([]string, error) {
	start, _, err := Endpoints(g)
	if err != nil {
		return nil, err
	}

	// 1. Build per-vertex arc lists sorted by (neighbor, edge ID).
	type arc struct{ to, id string }
	adj := make(map[string][]arc, g.VertexCount())
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], arc{to: e.To, id: e.ID})
		if !g.Directed() && e.From != e.To {
			adj[e.To] = append(adj[e.To], arc{to: e.From, id: e.ID})
		}
	}
	for v := range adj {
		arcs := adj[v]
		sort.Slice(arcs, func(i, j int) bool {
			if arcs[i].to != arcs[j].to {
				return arcs[i].to < arcs[j].to
			}

			return arcs[i].id < arcs[j].id
		})
	}

	// 2. Hierholzer: push forward greedily, emit on retreat.
	used := make(map[string]bool, g.EdgeCount())
	ptr := make(map[string]int, len(adj))
	stack := []string{start}
	path := make([]string, 0, g.EdgeCount()+1)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		advanced := false
		for ptr[v] < len(adj[v]) {
			a := adj[v][ptr[v]]
			ptr[v]++
			if used[a.id] {
				continue
			}
			used[a.id] = true
			stack = append(stack, a.to)
			advanced = true

			break
		}
		if !advanced {
			path = append(path, v)
			stack = stack[:len(stack)-1]
		}
	}

	// 3. Emission order is reversed; flip it in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if len(path) != g.EdgeCount()+1 {
		return nil, ErrNoEulerPath
	}

	return path, nil
}

// openOrClosed reports whether the degree profile permits any Euler
// walk, assuming edge-connectivity already holds.
func openOrClosed(g *graph.Graph) (bool, error) {
	odd, s, e, err := imbalance(g)
	if err != nil {
		return false, err
	}
	if g.Directed() {
		return odd == 0 && ((s == "" && e == "") || (s != "" && e != "")), nil
	}

	return odd == 0 || odd == 2, nil
}

// imbalance scans degrees once. For directed graphs it returns the
// unique +1 out-surplus vertex in start and the unique +1 in-surplus
// vertex in end ("" for balanced profiles, both "" with odd=-1 when the
// profile rules out any walk). For undirected graphs it returns the odd
// vertex count with the two smallest odd vertices in start/end.
func imbalance(g *graph.Graph) (odd int, start, end string, err error) {
	if g.Directed() {
		surplus, deficit := "", ""
		for _, v := range g.Vertices() {
			in, out, derr := g.Degree(v)
			if derr != nil {
				return 0, "", "", derr
			}
			switch out - in {
			case 0:
			case 1:
				if surplus != "" {
					return -1, "", "", nil
				}
				surplus = v
			case -1:
				if deficit != "" {
					return -1, "", "", nil
				}
				deficit = v
			default:
				return -1, "", "", nil
			}
		}
		if (surplus == "") != (deficit == "") {
			return -1, "", "", nil
		}

		return 0, surplus, deficit, nil
	}

	oddVerts := make([]string, 0, 2)
	for _, v := range g.Vertices() {
		_, out, derr := g.Degree(v)
		if derr != nil {
			return 0, "", "", derr
		}
		if out%2 == 1 {
			oddVerts = append(oddVerts, v)
		}
	}
	sort.Strings(oddVerts)
	if len(oddVerts) >= 1 {
		start = oddVerts[0]
	}
	if len(oddVerts) >= 2 {
		end = oddVerts[1]
	}

	return len(oddVerts), start, end, nil
}

// edgeConnected reports whether every vertex with at least one incident
// edge lies in a single weak component.
func edgeConnected(g *graph.Graph) (bool, error) {
	comps, err := traverse.Components(g)
	if err != nil {
		return false, err
	}
	active := 0
	for _, comp := range comps {
		for _, v := range comp {
			in, out, derr := g.Degree(v)
			if derr != nil {
				return false, derr
			}
			if in+out > 0 {
				active++

				break
			}
		}
	}

	return active <= 1, nil
}

// smallestActive returns the lexicographically first vertex touching at
// least one edge.
func smallestActive(g *graph.Graph) string {
	for _, v := range g.Vertices() {
		in, out, err := g.Degree(v)
		if err == nil && in+out > 0 {
			return v
		}
	}

	return ""
}
