package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetrei/relationutils/relation"
)

// TestInverse swaps every pair and leaves the operand untouched.
func TestInverse(t *testing.T) {
	r := build(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"a", "c"})
	inv := r.Inverse()

	assert.Equal(t, []relation.Pair{{A: "b", B: "a"}, {A: "c", B: "a"}}, inv.Pairs())
	assert.Equal(t, 2, r.Size()) // operand untouched

	// Involution.
	assert.Equal(t, r.Pairs(), inv.Inverse().Pairs())
}

// TestComplement covers A×A minus R.
func TestComplement(t *testing.T) {
	r := build(t, []string{"a", "b"}, [2]string{"a", "b"})
	comp := r.Complement()
	assert.Equal(t, []relation.Pair{
		{A: "a", B: "a"},
		{A: "b", B: "a"},
		{A: "b", B: "b"},
	}, comp.Pairs())
	// R ∪ ¬R is the complete relation.
	all, err := r.Union(comp)
	require.NoError(t, err)
	assert.Equal(t, 4, all.Size())
}

// TestCompose follows r then s, left to right.
func TestCompose(t *testing.T) {
	r := build(t, []string{"a", "b", "c"}, [2]string{"a", "b"})
	s := build(t, []string{"a", "b", "c"}, [2]string{"b", "c"})

	rs, err := r.Compose(s)
	require.NoError(t, err)
	assert.Equal(t, []relation.Pair{{A: "a", B: "c"}}, rs.Pairs())

	// Composing the other way yields nothing: s's followers end in c,
	// and r relates nothing from c.
	sr, err := s.Compose(r)
	require.NoError(t, err)
	assert.Empty(t, sr.Pairs())
}

// TestCompose_Self exercises operand aliasing (R∘R).
func TestCompose_Self(t *testing.T) {
	r := build(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"})
	rr, err := r.Compose(r)
	require.NoError(t, err)
	assert.Equal(t, []relation.Pair{{A: "a", B: "c"}}, rr.Pairs())
}

// TestSetAlgebra covers Union, Intersect, Difference on a shared universe.
func TestSetAlgebra(t *testing.T) {
	r := build(t, []string{"a", "b"}, [2]string{"a", "a"}, [2]string{"a", "b"})
	s := build(t, []string{"a", "b"}, [2]string{"a", "b"}, [2]string{"b", "b"})

	u, err := r.Union(s)
	require.NoError(t, err)
	assert.Equal(t, 3, u.Size())

	i, err := r.Intersect(s)
	require.NoError(t, err)
	assert.Equal(t, []relation.Pair{{A: "a", B: "b"}}, i.Pairs())

	d, err := r.Difference(s)
	require.NoError(t, err)
	assert.Equal(t, []relation.Pair{{A: "a", B: "a"}}, d.Pairs())
}

// TestAlgebra_UniverseMismatch rejects operands over different universes.
func TestAlgebra_UniverseMismatch(t *testing.T) {
	r := build(t, []string{"a", "b"})
	s := build(t, []string{"a", "c"})

	_, err := r.Union(s)
	assert.ErrorIs(t, err, relation.ErrUniverseMismatch)
	_, err = r.Intersect(s)
	assert.ErrorIs(t, err, relation.ErrUniverseMismatch)
	_, err = r.Difference(s)
	assert.ErrorIs(t, err, relation.ErrUniverseMismatch)
	_, err = r.Compose(s)
	assert.ErrorIs(t, err, relation.ErrUniverseMismatch)
}

// TestAlgebra_NilOperand rejects nil operands.
func TestAlgebra_NilOperand(t *testing.T) {
	r := build(t, []string{"a"})
	_, err := r.Union(nil)
	assert.ErrorIs(t, err, relation.ErrNilRelation)
	_, err = r.Compose(nil)
	assert.ErrorIs(t, err, relation.ErrNilRelation)
}
