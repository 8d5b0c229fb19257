// Package relationutils is an in-memory toolkit for building, exploring,
// and analyzing binary relations over finite sets: as ordered pairs,
// boolean matrices, and graphs.
//
// 🚀 What is relationutils?
//
//	A small, thread-safe, dependency-light library that brings together:
//		• Relations: pair sets over a finite universe, property checks
//		  (reflexive, symmetric, antisymmetric, transitive, ...), closures,
//		  and relation algebra (inverse, composition, union, complement)
//		• Matrices: square boolean matrices with OR/AND/product algebra
//		  and Warshall transitive closure
//		• Graphs: directed & undirected labeled graphs with safe mutation
//		• Traversals: BFS, DFS, components, cycles, topological sort
//		• Euler tours: circuit/path tests and Hierholzer extraction
//		• Converters: lossless Relation ⇄ Matrix ⇄ Graph adapters
//		• Builders: identity, complete, chain, cycle, divisibility, random
//		• DOT/text rendering for inspection and teaching
//
// ✨ Why choose relationutils?
//
//   - Classroom-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every enumeration is sorted; same input, same output
//   - Rock-solid guarantees – R/W locks, sentinel errors, no panics
//   - Pure Go at runtime – no cgo, no hidden deps
//
// Everything is organized under small focused subpackages:
//
//	relation/ — the Relation type: pair set, properties, closures, algebra
//	matrix/   — square boolean matrices + Warshall closure + CSV exchange
//	graph/    — directed/undirected labeled Graph with thread-safe mutation
//	traverse/ — BFS, DFS, components, cycle detection, topological sort
//	euler/    — Eulerian circuit/path analysis (Hierholzer)
//	convert/  — Relation ⇄ Matrix ⇄ Graph adapters
//	builder/  — canonical relation generators for tests and teaching
//	dot/      — Graphviz DOT and textual overlap reports
//
// Quick ASCII example, the divisibility order on {1,2,3,4}:
//
//	    1 ──► 2 ──► 4
//	    │
//	    └──► 3
//
//	(reflexive loops omitted; 1 divides everything, 2 divides 4)
//
//	go get github.com/cetrei/relationutils
package relationutils
