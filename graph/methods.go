// Package graph: thread-safe Graph method implementations.
//
// This file provides O(1) (amortized) operations for vertex and edge
// management on the Graph type defined in types.go. Separate RWMutex
// locks for vertices (muVert) and edges+adjacency (muEdgeAdj) minimize
// contention. Adjacency is stored as a nested map
// adjacency[from][to][edgeID] = struct{}{}, allowing constant-time
// existence, insertion, and deletion of edges.
package graph

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(deg(v) + M) where M is the number of unique neighbors.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Remove outgoing edges and their mirror entries.
	for to, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			delete(g.edges, eid)
		}
		delete(g.adjacency[to], id)
	}
	delete(g.adjacency, id)

	// Remove edges arriving from elsewhere.
	for from, nbrs := range g.adjacency {
		if edgeSet, ok := nbrs[id]; ok {
			for eid := range edgeSet {
				delete(g.edges, eid)
			}
			delete(g.adjacency[from], id)
		}
	}
	delete(g.vertices, id)

	return nil
}

// AddEdge creates an edge from → to, auto-adding missing endpoints,
// and returns the new edge ID.
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, or ErrMultiEdgeNotAllowed.
// In undirected graphs one edge is stored and mirrored in the adjacency.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	// 1. Validate endpoints and policy.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2. Ensure both endpoints exist.
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 3. Parallel-edge policy.
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4. Materialize the edge with a unique ID and apply options.
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	e := &Edge{ID: eid, From: from, To: to, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[eid] = e

	// 5. Record adjacency; mirror for undirected graphs.
	g.ensureAdjID(from)
	g.ensureAdjID(to)
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
	if !g.directed && from != to {
		if g.adjacency[to][from] == nil {
			g.adjacency[to][from] = make(map[string]struct{})
		}
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if absent.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From][e.To], eid)
	if !g.directed && e.From != e.To {
		delete(g.adjacency[e.To][e.From], eid)
	}

	return nil
}

// HasEdge reports whether at least one edge from → to exists.
// In undirected graphs the orientation is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Neighbors returns copies of all edges incident to id, oriented so that
// From == id, sorted by edge ID.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0)
	for to, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			c := *e
			// Orient undirected mirrors away from the queried vertex.
			if c.From != id {
				c.From, c.To = id, e.From
			} else {
				c.To = to
			}
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the sorted unique IDs adjacent to id.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, 0, len(g.adjacency[id]))
	for to, edgeSet := range g.adjacency[id] {
		if len(edgeSet) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns copies of all edges sorted by edge ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		c := *e
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Degree returns the in- and out-degree of id. In undirected graphs both
// values are equal and a self-loop contributes 2.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(E) worst case (incoming scan in directed graphs).
func (g *Graph) Degree(id string) (in, out int, err error) {
	if !g.HasVertex(id) {
		return 0, 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, e := range g.edges {
		if g.directed {
			if e.From == id {
				out++
			}
			if e.To == id {
				in++
			}
			continue
		}
		if e.From == id {
			out++
		}
		if e.To == id {
			out++
		}
	}
	if !g.directed {
		in = out
	}

	return in, out, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of stored edges. Undirected edges count
// once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Clone returns a deep copy sharing no mutable state with the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id := range g.vertices {
		c.vertices[id] = &Vertex{ID: id}
	}
	for eid, e := range g.edges {
		ce := *e
		c.edges[eid] = &ce
	}
	for from, nbrs := range g.adjacency {
		cn := make(map[string]map[string]struct{}, len(nbrs))
		for to, edgeSet := range nbrs {
			cs := make(map[string]struct{}, len(edgeSet))
			for eid := range edgeSet {
				cs[eid] = struct{}{}
			}
			cn[to] = cs
		}
		c.adjacency[from] = cn
	}

	return c
}

// Clear removes every vertex and edge but keeps configuration flags.
// Complexity: O(1) (maps are reallocated).
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
}

// ensureAdjID lazily initializes the adjacency row for id.
// Caller holds muEdgeAdj.
func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}
