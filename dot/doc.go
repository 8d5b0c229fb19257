// Package dot renders relations and graphs as Graphviz DOT text and
// writes set-overlap reports.
//
// What:
//   - Graph: DOT source for a graph.Graph (digraph or graph, stable
//     vertex and edge ordering, optional edge labels and rankdir).
//   - Relation: DOT digraph of a relation's pair set.
//   - OverlapReport and the follower/domain helpers: a two-set Venn
//     breakdown in plain text (only-left, both, only-right).
//
// Why:
//   - DOT pipes straight into Graphviz for inspection; the overlap
//     report answers "what do these two elements' follower sets share"
//     without a plotting stack.
//
// Determinism: all output is sorted, so identical inputs produce
// byte-identical text.
//
// Errors: ErrNilWriter, ErrNilGraph, ErrNilRelation; element lookups
// surface relation.ErrElementNotFound unchanged.
package dot
