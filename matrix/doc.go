// Package matrix offers square boolean matrices for relation analysis.
//
// The matrix package provides:
//
//   - Dense, a row-major bitset-backed square boolean matrix with O(1)
//     cell access and O(n²/64) memory.
//   - Boolean algebra: Or, And, Product (boolean matrix product), and
//     Transpose.
//   - Closures: ReflexiveClosure, SymmetricClosure, and TransitiveClosure
//     (Warshall, O(n³), always terminates).
//   - Predicates: IsReflexive, IsSymmetric, IsAntisymmetric, IsTransitive.
//   - Pair conversion (FromPairs / Pairs) and CSV exchange
//     (ExportCSV / ImportCSV) with 0/1 cells.
//
// Matrices are best for dense or small relations where O(n²) memory and
// O(n³) closure time are acceptable; for sparse pair-level work use the
// relation package and convert between the two with convert/.
//
// See the examples in this package for usage patterns.
package matrix
