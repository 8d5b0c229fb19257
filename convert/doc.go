// Package convert bridges the three faces of a finite binary relation:
// relation.Relation, matrix.Dense, and graph.Graph.
//
// What:
//   - RelationToMatrix / MatrixToRelation: pair set ⇄ boolean matrix,
//     rows and columns indexed by the sorted universe.
//   - RelationToGraph / GraphToRelation: pair set ⇄ directed graph with
//     loops; parallel edges collapse on the way back.
//   - GraphToMatrix / MatrixToGraph: adjacency matrix views of a graph.
//
// Why:
//   - Property tests run fastest on the bitset matrix, structural walks
//     on the graph, and set algebra on the relation. Converting between
//     them lets each question use the cheapest representation.
//
// Determinism: every conversion indexes by the sorted element or vertex
// list, so round trips are stable.
//
// Errors: ErrNilSource, ErrLabelMismatch, ErrDuplicateLabel.
package convert
