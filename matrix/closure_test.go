package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetrei/relationutils/matrix"
)

// TestReflexiveClosure sets the diagonal and nothing else.
func TestReflexiveClosure(t *testing.T) {
	m := sample(t)
	got := m.ReflexiveClosure()
	want := rows(t, [][]bool{
		{true, false, true},
		{false, true, true},
		{false, true, true},
	})
	assert.True(t, got.Equal(want))
	assert.True(t, got.IsReflexive())
	assert.False(t, m.IsReflexive()) // operand untouched
}

// TestSymmetricClosure mirrors every cell across the diagonal.
func TestSymmetricClosure(t *testing.T) {
	m := sample(t)
	got := m.SymmetricClosure()
	assert.True(t, got.IsSymmetric())
	// (0,2) gains its mirror (2,0); (1,2)/(2,1) were already mutual.
	v, err := got.At(2, 0)
	require.NoError(t, err)
	assert.True(t, v)
}

// TestTransitiveClosure matches the hand-computed expectation:
// Warshall over {0→0, 0→2, 1→2, 2→1}.
func TestTransitiveClosure(t *testing.T) {
	m := sample(t)
	got := m.TransitiveClosure()
	want := rows(t, [][]bool{
		{true, true, true},
		{false, true, true},
		{false, true, true},
	})
	assert.True(t, got.Equal(want))
	assert.True(t, got.IsTransitive())
	assert.False(t, m.IsTransitive())
}

// TestTransitiveClosure_Idempotent closes twice with identical results.
func TestTransitiveClosure_Idempotent(t *testing.T) {
	m := sample(t)
	once := m.TransitiveClosure()
	assert.True(t, once.Equal(once.TransitiveClosure()))
}

// TestTransitiveClosure_DiagonalBlock keeps unreachable blocks apart.
func TestTransitiveClosure_DiagonalBlock(t *testing.T) {
	m := rows(t, [][]bool{
		{true, true, false},
		{false, true, false},
		{false, false, true},
	})
	// Already transitive: closure is a fixed point.
	assert.True(t, m.TransitiveClosure().Equal(m))
}

// TestPredicates covers symmetry and antisymmetry on small fixtures.
func TestPredicates(t *testing.T) {
	sym := rows(t, [][]bool{
		{false, true},
		{true, false},
	})
	assert.True(t, sym.IsSymmetric())
	assert.False(t, sym.IsAntisymmetric())

	anti := rows(t, [][]bool{
		{true, true},
		{false, true},
	})
	assert.False(t, anti.IsSymmetric())
	assert.True(t, anti.IsAntisymmetric())

	empty, err := matrix.NewDense(0)
	require.NoError(t, err)
	assert.True(t, empty.IsReflexive())
	assert.True(t, empty.IsSymmetric())
	assert.True(t, empty.IsTransitive())
}
