package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetrei/relationutils/relation"
)

// divisibility builds the divides-order on {1,2,3,4,6,12}, a classic
// non-total partial order.
func divisibility(t *testing.T) *relation.Relation {
	t.Helper()

	return build(t, []string{"1", "2", "3", "4", "6", "12"},
		[2]string{"1", "1"}, [2]string{"2", "2"}, [2]string{"3", "3"},
		[2]string{"4", "4"}, [2]string{"6", "6"}, [2]string{"12", "12"},
		[2]string{"1", "2"}, [2]string{"1", "3"}, [2]string{"1", "4"},
		[2]string{"1", "6"}, [2]string{"1", "12"},
		[2]string{"2", "4"}, [2]string{"2", "6"}, [2]string{"2", "12"},
		[2]string{"3", "6"}, [2]string{"3", "12"},
		[2]string{"4", "12"}, [2]string{"6", "12"})
}

// TestMinimalMaximal finds the bottom and top of the divisibility order.
func TestMinimalMaximal(t *testing.T) {
	div := divisibility(t)
	require.True(t, div.IsPartialOrder())

	mins, err := div.Minimal()
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, mins)

	maxs, err := div.Maximal()
	require.NoError(t, err)
	assert.Equal(t, []string{"12"}, maxs)
}

// TestCoveringPairs computes the Hasse edges of the divisibility order:
// transitive shortcuts like 1|4 and 2|12 must be stripped.
func TestCoveringPairs(t *testing.T) {
	div := divisibility(t)

	covers, err := div.CoveringPairs()
	require.NoError(t, err)
	assert.Equal(t, []relation.Pair{
		{A: "1", B: "2"},
		{A: "1", B: "3"},
		{A: "2", B: "4"},
		{A: "2", B: "6"},
		{A: "3", B: "6"},
		{A: "4", B: "12"},
		{A: "6", B: "12"},
	}, covers)
}

// TestTopologicalOrder returns a deterministic linear extension.
func TestTopologicalOrder(t *testing.T) {
	div := divisibility(t)

	order, err := div.TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, 6)

	pos := make(map[string]int, len(order))
	for i, e := range order {
		pos[e] = i
	}
	// Every strict pair must respect the order.
	for _, p := range div.Pairs() {
		if p.A != p.B {
			assert.Less(t, pos[p.A], pos[p.B], "%s before %s", p.A, p.B)
		}
	}
	// Lexicographic tie-breaking makes the result reproducible.
	assert.Equal(t, []string{"1", "2", "3", "4", "6", "12"}, order)
}

// TestOrder_NotPartialOrder rejects non-orders uniformly.
func TestOrder_NotPartialOrder(t *testing.T) {
	r := build(t, []string{"a", "b"}, [2]string{"a", "b"}, [2]string{"b", "a"})

	_, err := r.Minimal()
	assert.ErrorIs(t, err, relation.ErrNotPartialOrder)
	_, err = r.Maximal()
	assert.ErrorIs(t, err, relation.ErrNotPartialOrder)
	_, err = r.CoveringPairs()
	assert.ErrorIs(t, err, relation.ErrNotPartialOrder)
	_, err = r.TopologicalOrder()
	assert.ErrorIs(t, err, relation.ErrNotPartialOrder)
}

// TestEquivalenceClasses_Errors covers the non-equivalence rejection path.
func TestEquivalenceClasses_Errors(t *testing.T) {
	r := build(t, []string{"a", "b"}, [2]string{"a", "b"})
	_, err := r.EquivalenceClasses()
	assert.ErrorIs(t, err, relation.ErrNotEquivalence)

	_, err = r.ClassOf("z")
	assert.ErrorIs(t, err, relation.ErrElementNotFound)
	_, err = r.ClassOf("a")
	assert.ErrorIs(t, err, relation.ErrNotEquivalence)
}

// TestEquivalenceClasses partitions mod-3 congruence on 0..5.
func TestEquivalenceClasses(t *testing.T) {
	r := build(t, []string{"0", "1", "2", "3", "4", "5"})
	for _, e := range r.Elements() {
		require.NoError(t, r.AddPair(e, e))
	}
	congruent := [][2]string{{"0", "3"}, {"1", "4"}, {"2", "5"}}
	for _, p := range congruent {
		require.NoError(t, r.AddPair(p[0], p[1]))
		require.NoError(t, r.AddPair(p[1], p[0]))
	}
	require.True(t, r.IsEquivalence())

	classes, err := r.EquivalenceClasses()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "3"}, {"1", "4"}, {"2", "5"}}, classes)

	class, err := r.ClassOf("4")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, class)
}
