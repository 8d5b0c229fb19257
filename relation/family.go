// Package relation: neighborhood queries (followers, parents, siblings).
//
// "Follower" and "parent" are the classroom names for successor and
// predecessor:
// followers of a are everything a relates to, parents of b are everything
// relating to b. Siblings share at least one parent.
package relation

// Followers returns the sorted set {b : (a, b) ∈ R}.
// Returns ErrElementNotFound if a is outside the universe.
// Complexity: O(deg(a) log deg(a)).
func (r *Relation) Followers(a string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.elems[a]; !ok {
		return nil, ErrElementNotFound
	}

	return sortedKeys(r.succ[a]), nil
}

// Parents returns the sorted set {a : (a, b) ∈ R}.
// Returns ErrElementNotFound if b is outside the universe.
// Complexity: O(deg(b) log deg(b)).
func (r *Relation) Parents(b string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.elems[b]; !ok {
		return nil, ErrElementNotFound
	}

	return sortedKeys(r.pred[b]), nil
}

// Siblings returns every element other than a that shares at least one
// parent with a, sorted.
// Returns ErrElementNotFound if a is outside the universe.
// Complexity: O(Σ deg(parents)).
func (r *Relation) Siblings(a string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.elems[a]; !ok {
		return nil, ErrElementNotFound
	}
	sibs := make(map[string]struct{})
	for p := range r.pred[a] {
		for child := range r.succ[p] {
			if child != a {
				sibs[child] = struct{}{}
			}
		}
	}

	return sortedKeys(sibs), nil
}

// AreSiblings reports whether a and b (a ≠ b) share at least one parent.
// Returns ErrElementNotFound if either element is outside the universe.
// Complexity: O(min(deg(a), deg(b))).
func (r *Relation) AreSiblings(a, b string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.elems[a]; !ok {
		return false, ErrElementNotFound
	}
	if _, ok := r.elems[b]; !ok {
		return false, ErrElementNotFound
	}
	if a == b {
		return false, nil
	}
	pa, pb := r.pred[a], r.pred[b]
	// Scan the smaller parent set.
	if len(pb) < len(pa) {
		pa, pb = pb, pa
	}
	for p := range pa {
		if p == a || p == b {
			continue
		}
		if _, ok := pb[p]; ok {
			return true, nil
		}
	}

	return false, nil
}

// ShareChild reports whether a and b (a ≠ b) have at least one common
// follower other than themselves.
// Returns ErrElementNotFound if either element is outside the universe.
// Complexity: O(min(deg(a), deg(b))).
func (r *Relation) ShareChild(a, b string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.elems[a]; !ok {
		return false, ErrElementNotFound
	}
	if _, ok := r.elems[b]; !ok {
		return false, ErrElementNotFound
	}
	if a == b {
		return false, nil
	}
	sa, sb := r.succ[a], r.succ[b]
	if len(sb) < len(sa) {
		sa, sb = sb, sa
	}
	for c := range sa {
		if c == a || c == b {
			continue
		}
		if _, ok := sb[c]; ok {
			return true, nil
		}
	}

	return false, nil
}
