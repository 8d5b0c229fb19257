// Package traverse implements graph traversal and structural analysis on
// graph.Graph: BFS, DFS, connected components, cycle detection, path
// search, and topological sort.
//
// What:
//
//   - DFS / BFS: depth- and breadth-first traversal with:
//   - Pre-order (and, for DFS, post-order) hooks
//   - Cancellation via context.Context
//   - Depth limiting and neighbor filtering
//   - Full-graph (forest) traversal
//   - Components: weakly connected components, deterministic order
//   - HasCycle: vertex coloring for directed graphs, parent-skip DFS for
//     undirected graphs
//   - FindPath / AllSimplePaths: DFS path search between two vertices
//   - IsConnected: strong connectivity (directed) or single component
//     (undirected)
//   - TopologicalSort: linear ordering of a DAG, ErrCycleDetected if
//     cycles exist
//
// Why:
//   - Analyze the graph view of a relation (reachability, orderability)
//   - Detect cycles before treating a relation as an order
//   - Provide the traversal engine for euler/ and the convert/ round trips
//
// Complexity:
//
//   - DFS/BFS:         Time O(V+E), Memory O(V)
//   - Components:      Time O(V+E), Memory O(V)
//   - HasCycle:        Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - AllSimplePaths:  exponential in the worst case; bound it with limit
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrStartNotFound  start vertex ID not in graph
//   - ErrTargetNotFound target vertex ID not in graph
//   - ErrCycleDetected  cycle discovered in DAG operations
//   - ErrUndirected     directed-only operation on an undirected graph
//   - context.Canceled  traversal canceled via context
//   - hook errors       propagated from OnVisit or OnExit
package traverse
