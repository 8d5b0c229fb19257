// Package relation: algebraic property checks.
//
// Every predicate is a pure read under the read lock and runs without
// allocation except where noted. Definitions follow the standard ones:
//
//	reflexive      ∀a ∈ A:        (a,a) ∈ R
//	irreflexive    ∀a ∈ A:        (a,a) ∉ R
//	symmetric      ∀(a,b) ∈ R:    (b,a) ∈ R
//	antisymmetric  ∀(a,b) ∈ R:    (b,a) ∈ R ⇒ a = b
//	asymmetric     ∀(a,b) ∈ R:    (b,a) ∉ R
//	transitive     ∀(a,b),(b,c):  (a,c) ∈ R
//	functional     ∀a ∈ A:        |{b : (a,b) ∈ R}| ≤ 1
package relation

// IsReflexive reports whether (a, a) ∈ R for every element a.
// Complexity: O(n).
func (r *Relation) IsReflexive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for a := range r.elems {
		if !r.hasPairLocked(a, a) {
			return false
		}
	}

	return true
}

// IsIrreflexive reports whether (a, a) ∉ R for every element a.
// Complexity: O(n).
func (r *Relation) IsIrreflexive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for a := range r.elems {
		if r.hasPairLocked(a, a) {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether (b, a) ∈ R for every (a, b) ∈ R.
// Complexity: O(m).
func (r *Relation) IsSymmetric() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for a, s := range r.succ {
		for b := range s {
			if !r.hasPairLocked(b, a) {
				return false
			}
		}
	}

	return true
}

// IsAntisymmetric reports whether (a, b), (b, a) ∈ R implies a == b.
// Complexity: O(m).
func (r *Relation) IsAntisymmetric() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for a, s := range r.succ {
		for b := range s {
			if a != b && r.hasPairLocked(b, a) {
				return false
			}
		}
	}

	return true
}

// IsAsymmetric reports whether (b, a) ∉ R for every (a, b) ∈ R.
// An asymmetric relation is antisymmetric and irreflexive.
// Complexity: O(m).
func (r *Relation) IsAsymmetric() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for a, s := range r.succ {
		for b := range s {
			if r.hasPairLocked(b, a) {
				return false
			}
		}
	}

	return true
}

// IsTransitive reports whether (a, b), (b, c) ∈ R implies (a, c) ∈ R.
// Complexity: O(m·d) where d is the maximum out-degree.
func (r *Relation) IsTransitive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for a, s := range r.succ {
		for b := range s {
			for c := range r.succ[b] {
				if !r.hasPairLocked(a, c) {
					return false
				}
			}
		}
	}

	return true
}

// IsFunctional reports whether every element has at most one follower:
// R describes a partial function A → A.
// Complexity: O(n).
func (r *Relation) IsFunctional() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.succ {
		if len(s) > 1 {
			return false
		}
	}

	return true
}

// IsTotalFunction reports whether every element has exactly one follower:
// R describes a total function A → A.
// Complexity: O(n).
func (r *Relation) IsTotalFunction() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for a := range r.elems {
		if len(r.succ[a]) != 1 {
			return false
		}
	}

	return true
}

// IsEquivalence reports whether R is reflexive, symmetric, and transitive.
// Complexity: O(n + m·d).
func (r *Relation) IsEquivalence() bool {
	return r.IsReflexive() && r.IsSymmetric() && r.IsTransitive()
}

// IsPartialOrder reports whether R is reflexive, antisymmetric, and
// transitive.
// Complexity: O(n + m·d).
func (r *Relation) IsPartialOrder() bool {
	return r.IsReflexive() && r.IsAntisymmetric() && r.IsTransitive()
}

// IsTotalOrder reports whether R is a partial order in which every two
// elements are comparable.
// Complexity: O(n² + m·d).
func (r *Relation) IsTotalOrder() bool {
	if !r.IsPartialOrder() {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for a := range r.elems {
		for b := range r.elems {
			if a == b {
				continue
			}
			if !r.hasPairLocked(a, b) && !r.hasPairLocked(b, a) {
				return false
			}
		}
	}

	return true
}
