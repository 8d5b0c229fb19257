package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetrei/relationutils/relation"
)

// TestFollowersParents walks a small family scenario around
// the relation {(a,a),(a,c),(b,c),(c,b)}.
func TestFollowersParents(t *testing.T) {
	r := build(t, []string{"a", "b", "c"},
		[2]string{"a", "a"}, [2]string{"a", "c"}, [2]string{"b", "c"}, [2]string{"c", "b"})

	followers, err := r.Followers("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, followers)

	parents, err := r.Parents("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, parents)

	_, err = r.Followers("z")
	assert.ErrorIs(t, err, relation.ErrElementNotFound)
	_, err = r.Parents("z")
	assert.ErrorIs(t, err, relation.ErrElementNotFound)
}

// TestSiblings collects co-children of shared parents, excluding self.
func TestSiblings(t *testing.T) {
	// p -> x, p -> y, q -> y, q -> z
	r := build(t, []string{"p", "q", "x", "y", "z"},
		[2]string{"p", "x"}, [2]string{"p", "y"}, [2]string{"q", "y"}, [2]string{"q", "z"})

	sibs, err := r.Siblings("y")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "z"}, sibs)

	sibs, err = r.Siblings("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, sibs)
}

// TestAreSiblings verifies the shared-parent predicate.
func TestAreSiblings(t *testing.T) {
	r := build(t, []string{"p", "x", "y", "z"},
		[2]string{"p", "x"}, [2]string{"p", "y"})

	ok, err := r.AreSiblings("x", "y")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.AreSiblings("x", "z")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.AreSiblings("x", "x")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.AreSiblings("x", "nope")
	assert.ErrorIs(t, err, relation.ErrElementNotFound)
}

// TestShareChild verifies the common-follower predicate.
func TestShareChild(t *testing.T) {
	r := build(t, []string{"a", "b", "c", "d"},
		[2]string{"a", "c"}, [2]string{"b", "c"}, [2]string{"b", "d"})

	ok, err := r.ShareChild("a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	// a and d share nothing: d has no followers.
	ok, err = r.ShareChild("a", "d")
	require.NoError(t, err)
	assert.False(t, ok)

	// The shared follower must be a third element: a->b, c->b does not
	// count b itself when asking about (a, b).
	r2 := build(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "b"})
	ok, err = r2.ShareChild("a", "b")
	require.NoError(t, err)
	assert.False(t, ok)
}
