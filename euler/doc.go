// Package euler decides Eulerian traversability and constructs Euler
// paths over graph.Graph instances.
//
// What:
//   - HasEulerCircuit / HasEulerPath: degree and connectivity tests for
//     closed and open edge-covering walks.
//   - Endpoints: the forced start and end vertices of an Euler path.
//   - EulerPath: the walk itself, built with Hierholzer's algorithm.
//
// Why:
//   - An Euler path visits every edge exactly once, the classic tool for
//     route inspection and pen-stroke puzzles over a relation's graph.
//
// Semantics:
//   - Isolated vertices are ignored: only vertices touching at least one
//     edge must lie in a single component.
//   - Directed graphs need in-degree == out-degree everywhere for a
//     circuit, or exactly one +1/-1 imbalance pair for an open path.
//   - Undirected graphs need all degrees even, or exactly two odd.
//   - A graph with no edges has no Euler path at all.
//
// Determinism: at each vertex the walk consumes incident edges in
// (neighbor, edge-ID) order, so the returned sequence is reproducible.
//
// Complexity: O(V+E·log E) time, O(V+E) memory.
//
// Errors: ErrGraphNil, ErrNoEulerPath.
package euler
