// Package matrix: closure operations and property predicates.
//
// Closures return a new matrix (the smallest superset with the named
// property); predicates are pure reads. TransitiveClosure implements
// Warshall's algorithm word-parallel over the row bitsets: admitting k
// as an intermediate hop ORs row k into every row that can reach k.
package matrix

// ReflexiveClosure returns m with the full diagonal set.
// Complexity: O(n²/64 + n).
func (m *Dense) ReflexiveClosure() *Dense {
	out := m.Clone()
	for i := 0; i < out.n; i++ {
		out.setBit(i, i)
	}

	return out
}

// SymmetricClosure returns m ∨ mᵀ.
// Complexity: O(n²).
func (m *Dense) SymmetricClosure() *Dense {
	out, _ := m.Or(m.Transpose()) // same order by construction

	return out
}

// TransitiveClosure returns the reachability closure of m via Warshall's
// algorithm. Unlike iterated boolean products, Warshall terminates in
// exactly n passes regardless of input.
// Complexity: O(n³/64) time, O(n²/64) memory.
func (m *Dense) TransitiveClosure() *Dense {
	out := m.Clone()
	for k := 0; k < out.n; k++ {
		src := out.row(k)
		for i := 0; i < out.n; i++ {
			if !out.bit(i, k) {
				continue
			}
			dst := out.row(i)
			for w := range dst {
				dst[w] |= src[w]
			}
		}
	}

	return out
}

// IsReflexive reports whether the whole diagonal is set.
// Complexity: O(n).
func (m *Dense) IsReflexive() bool {
	for i := 0; i < m.n; i++ {
		if !m.bit(i, i) {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether m equals its transpose.
// Complexity: O(n²).
func (m *Dense) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.bit(i, j) != m.bit(j, i) {
				return false
			}
		}
	}

	return true
}

// IsAntisymmetric reports whether no two distinct indices are mutually
// related.
// Complexity: O(n²).
func (m *Dense) IsAntisymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.bit(i, j) && m.bit(j, i) {
				return false
			}
		}
	}

	return true
}

// IsTransitive reports whether m equals its own transitive closure.
// Complexity: O(n³/64).
func (m *Dense) IsTransitive() bool {
	return m.Equal(m.TransitiveClosure())
}
