// Package traverse: options, results, and sentinel errors shared by the
// traversal algorithms.
package traverse

import (
	"context"
	"errors"
)

// Vertex visitation states for cycle detection and topological sort.
const (
	white = iota // not visited yet
	gray         // in the recursion stack
	black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed in.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartNotFound indicates the start vertex ID does not exist.
	ErrStartNotFound = errors.New("traverse: start vertex not found")

	// ErrTargetNotFound indicates the target vertex ID does not exist.
	ErrTargetNotFound = errors.New("traverse: target vertex not found")

	// ErrCycleDetected indicates a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("traverse: cycle detected")

	// ErrUndirected indicates a directed-only operation was invoked on an
	// undirected graph.
	ErrUndirected = errors.New("traverse: directed graph required")
)

// Option configures optional behavior of DFS and BFS traversal.
type Option func(*Options)

// Options holds configurable traversal parameters: hooks, limits,
// filtering, full-graph mode. Complexity remains O(V+E) when filters and
// hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order, DFS only). Returning an error
	// aborts traversal.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before
	// descending. Return true to traverse into it, false to skip it.
	FilterNeighbor func(id string) bool

	// FullTraversal, if true, restarts from every unvisited vertex,
	// covering disconnected components. Default is false.
	FullTraversal bool
}

// DefaultOptions returns Options with a Background context, no hooks,
// no depth limit, no filtering, and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook (DFS only).
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth. A limit of 0 visits only the
// start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor filters neighbor IDs; fn(id) == false skips id.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a traversal.
type Result struct {
	// Order records vertices in visit sequence: pre-order (level order)
	// for BFS, post-order for DFS.
	Order []string

	// Depth maps each visited vertex to its distance (#edges) from the
	// start of its tree.
	Depth map[string]int

	// Parent maps each vertex to the vertex from which it was first
	// discovered. Roots do not appear.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool
}

// newResult allocates a Result with capacity hints for n vertices.
func newResult(n int) *Result {
	return &Result{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
}
