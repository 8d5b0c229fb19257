// Package matrix: the Dense type (construction, cell access, cloning,
// equality, and textual rendering).
//
// Storage is a row-major bitset: each row occupies stride = ⌈n/64⌉
// uint64 words, so whole-row OR operations (Product, closures) run a
// word at a time.
package matrix

import (
	"math/bits"
	"strings"
)

// wordBits is the width of one bitset word.
const wordBits = 64

// Dense is a square boolean matrix of order n.
// The zero value is unusable; construct via NewDense, Identity,
// FromRows, or FromPairs.
type Dense struct {
	n      int      // matrix order
	stride int      // words per row = ceil(n/64)
	words  []uint64 // row-major bitset, len = n*stride
}

// NewDense creates an all-false matrix of order n.
// n == 0 is valid and represents the empty relation over the empty set.
// Returns ErrBadShape if n < 0.
// Complexity: O(n²/64).
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrBadShape
	}
	stride := (n + wordBits - 1) / wordBits

	return &Dense{n: n, stride: stride, words: make([]uint64, n*stride)}, nil
}

// Identity creates the identity matrix of order n (true exactly on the
// diagonal). Returns ErrBadShape if n < 0.
// Complexity: O(n²/64).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.setBit(i, i)
	}

	return m, nil
}

// FromRows builds a matrix from explicit rows. Rows must be non-ragged
// and square; returns ErrBadShape otherwise.
// Complexity: O(n²).
func FromRows(rows [][]bool) (*Dense, error) {
	n := len(rows)
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, ErrBadShape
		}
		for j, v := range row {
			if v {
				m.setBit(i, j)
			}
		}
	}

	return m, nil
}

// FromPairs builds an order-n matrix with true at every (i, j) pair.
// Returns ErrBadShape if n < 0, ErrOutOfRange for an out-of-bounds pair.
// Complexity: O(n²/64 + len(pairs)).
func FromPairs(n int, pairs [][2]int) (*Dense, error) {
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err = m.Set(p[0], p[1], true); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// N returns the order of the matrix.
// Complexity: O(1).
func (m *Dense) N() int { return m.n }

// At retrieves the cell at (i, j).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) At(i, j int) (bool, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return false, ErrOutOfRange
	}

	return m.bit(i, j), nil
}

// Set assigns the cell at (i, j).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(i, j int, v bool) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrOutOfRange
	}
	if v {
		m.setBit(i, j)
	} else {
		m.clearBit(i, j)
	}

	return nil
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(n²/64).
func (m *Dense) Clone() *Dense {
	c := &Dense{n: m.n, stride: m.stride, words: make([]uint64, len(m.words))}
	copy(c.words, m.words)

	return c
}

// Equal reports whether both matrices have the same order and cells.
// A nil operand is never equal.
// Complexity: O(n²/64).
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.n != o.n {
		return false
	}
	for i, w := range m.words {
		if o.words[i] != w {
			return false
		}
	}

	return true
}

// Pairs returns every true cell as (i, j) index pairs in row-major order.
// Complexity: O(n²/64 + m) where m is the number of true cells.
func (m *Dense) Pairs() [][2]int {
	out := make([][2]int, 0)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.bit(i, j) {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// Count returns the number of true cells.
// Complexity: O(n²/64).
func (m *Dense) Count() int {
	total := 0
	for i := 0; i < m.n; i++ {
		for _, w := range m.row(i) {
			total += bits.OnesCount64(w)
		}
	}

	return total
}

// String renders the matrix as rows of space-separated 0/1 cells.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if m.bit(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}

// row returns the word slice backing row i. Mutations write through.
func (m *Dense) row(i int) []uint64 {
	return m.words[i*m.stride : (i+1)*m.stride]
}

// tailMask returns the valid-bit mask for the last word of a row.
func (m *Dense) tailMask() uint64 {
	rem := m.n % wordBits
	if rem == 0 {
		return ^uint64(0)
	}

	return (uint64(1) << rem) - 1
}

func (m *Dense) bit(i, j int) bool {
	return m.words[i*m.stride+j/wordBits]&(uint64(1)<<(j%wordBits)) != 0
}

func (m *Dense) setBit(i, j int) {
	m.words[i*m.stride+j/wordBits] |= uint64(1) << (j % wordBits)
}

func (m *Dense) clearBit(i, j int) {
	m.words[i*m.stride+j/wordBits] &^= uint64(1) << (j % wordBits)
}
