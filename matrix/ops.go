// Package matrix: boolean algebra on Dense matrices.
//
// All operations are pure: they validate operands, allocate a fresh
// result, and never mutate inputs. Or and And run word-parallel over the
// bitset; Product ORs whole source rows instead of iterating cells.
package matrix

// Or returns the element-wise disjunction m ∨ o, the union of the two
// relations.
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(n²/64).
func (m *Dense) Or(o *Dense) (*Dense, error) {
	if o == nil {
		return nil, ErrNilMatrix
	}
	if m.n != o.n {
		return nil, ErrDimensionMismatch
	}
	out := m.Clone()
	for i, w := range o.words {
		out.words[i] |= w
	}

	return out, nil
}

// And returns the element-wise conjunction m ∧ o, the intersection of
// the two relations.
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(n²/64).
func (m *Dense) And(o *Dense) (*Dense, error) {
	if o == nil {
		return nil, ErrNilMatrix
	}
	if m.n != o.n {
		return nil, ErrDimensionMismatch
	}
	out := m.Clone()
	for i, w := range o.words {
		out.words[i] &= w
	}

	return out, nil
}

// Product returns the boolean matrix product m ⊙ o:
// out[i][j] = ∨_k (m[i][k] ∧ o[k][j]), the composition of the relations.
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(n³/64) via whole-row OR per set bit.
func (m *Dense) Product(o *Dense) (*Dense, error) {
	if o == nil {
		return nil, ErrNilMatrix
	}
	if m.n != o.n {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense(m.n)
	if err != nil {
		return nil, err
	}
	// 1. For each set bit m[i][k], OR row k of o into row i of out.
	for i := 0; i < m.n; i++ {
		dst := out.row(i)
		for k := 0; k < m.n; k++ {
			if !m.bit(i, k) {
				continue
			}
			src := o.row(k)
			for w := range dst {
				dst[w] |= src[w]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ, the inverse relation.
// Complexity: O(n²).
func (m *Dense) Transpose() *Dense {
	out, _ := NewDense(m.n) // n is non-negative by construction
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.bit(i, j) {
				out.setBit(j, i)
			}
		}
	}

	return out
}

// Complement returns ¬m with every cell flipped.
// Complexity: O(n²/64).
func (m *Dense) Complement() *Dense {
	out := m.Clone()
	mask := m.tailMask()
	for i := 0; i < m.n; i++ {
		row := out.row(i)
		for w := range row {
			row[w] = ^row[w]
		}
		// Keep padding bits in the trailing word clear.
		if len(row) > 0 {
			row[len(row)-1] &= mask
		}
	}

	return out
}
