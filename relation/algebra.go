// Package relation: relation algebra.
//
// All operations here are pure: they never mutate their operands and
// return a fresh Relation over the same universe. Binary operations
// require identical universes and report ErrUniverseMismatch otherwise.
package relation

// Inverse returns R⁻¹ = {(b, a) : (a, b) ∈ R}.
// Inverse is an involution: r.Inverse().Inverse() equals r.
// Complexity: O(n + m).
func (r *Relation) Inverse() *Relation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv := r.cloneUniverseLocked()
	for a, s := range r.succ {
		for b := range s {
			inv.addPairLocked(b, a)
		}
	}

	return inv
}

// Complement returns A×A \ R: every ordered pair not in R.
// Complexity: O(n²).
func (r *Relation) Complement() *Relation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comp := r.cloneUniverseLocked()
	for a := range r.elems {
		for b := range r.elems {
			if !r.hasPairLocked(a, b) {
				comp.addPairLocked(a, b)
			}
		}
	}

	return comp
}

// Compose returns R∘S = {(a, c) : ∃b, (a, b) ∈ R ∧ (b, c) ∈ S}.
// Note the left-to-right reading: r.Compose(s) first follows r, then s.
// Returns ErrNilRelation or ErrUniverseMismatch.
// Complexity: O(m·d).
func (r *Relation) Compose(s *Relation) (*Relation, error) {
	if s == nil {
		return nil, ErrNilRelation
	}
	if err := r.requireSameUniverse(s); err != nil {
		return nil, err
	}
	defer rlockPair(r, s)()

	out := r.cloneUniverseLocked()
	for a, mids := range r.succ {
		for b := range mids {
			for c := range s.succ[b] {
				out.addPairLocked(a, c)
			}
		}
	}

	return out, nil
}

// Union returns R ∪ S over the shared universe.
// Returns ErrNilRelation or ErrUniverseMismatch.
// Complexity: O(n + m_R + m_S).
func (r *Relation) Union(s *Relation) (*Relation, error) {
	if s == nil {
		return nil, ErrNilRelation
	}
	if err := r.requireSameUniverse(s); err != nil {
		return nil, err
	}
	defer rlockPair(r, s)()

	out := r.cloneUniverseLocked()
	for a, set := range r.succ {
		for b := range set {
			out.addPairLocked(a, b)
		}
	}
	for a, set := range s.succ {
		for b := range set {
			out.addPairLocked(a, b)
		}
	}

	return out, nil
}

// Intersect returns R ∩ S over the shared universe.
// Returns ErrNilRelation or ErrUniverseMismatch.
// Complexity: O(n + m_R).
func (r *Relation) Intersect(s *Relation) (*Relation, error) {
	if s == nil {
		return nil, ErrNilRelation
	}
	if err := r.requireSameUniverse(s); err != nil {
		return nil, err
	}
	defer rlockPair(r, s)()

	out := r.cloneUniverseLocked()
	for a, set := range r.succ {
		for b := range set {
			if s.hasPairLocked(a, b) {
				out.addPairLocked(a, b)
			}
		}
	}

	return out, nil
}

// Difference returns R \ S over the shared universe.
// Returns ErrNilRelation or ErrUniverseMismatch.
// Complexity: O(n + m_R).
func (r *Relation) Difference(s *Relation) (*Relation, error) {
	if s == nil {
		return nil, ErrNilRelation
	}
	if err := r.requireSameUniverse(s); err != nil {
		return nil, err
	}
	defer rlockPair(r, s)()

	out := r.cloneUniverseLocked()
	for a, set := range r.succ {
		for b := range set {
			if !s.hasPairLocked(a, b) {
				out.addPairLocked(a, b)
			}
		}
	}

	return out, nil
}

// rlockPair read-locks both operands, once each even when they alias,
// and returns the matching unlock. Avoids recursive RLock on
// r.Compose(r). Distinct operands are locked in creation order, so
// concurrent r.Union(s) and s.Union(r) never hold the locks in opposite
// orders while a writer is queued between them.
func rlockPair(r, s *Relation) func() {
	if s == r {
		r.mu.RLock()

		return r.mu.RUnlock
	}
	first, second := r, s
	if s.seq < r.seq {
		first, second = s, r
	}
	first.mu.RLock()
	second.mu.RLock()

	return func() {
		second.mu.RUnlock()
		first.mu.RUnlock()
	}
}

// cloneUniverseLocked returns an empty Relation over the caller's
// universe. Caller holds at least the read lock.
func (r *Relation) cloneUniverseLocked() *Relation {
	c := &Relation{
		seq:   relationSeq.Add(1),
		elems: make(map[string]struct{}, len(r.elems)),
		succ:  make(map[string]map[string]struct{}, len(r.elems)),
		pred:  make(map[string]map[string]struct{}, len(r.elems)),
	}
	for e := range r.elems {
		c.elems[e] = struct{}{}
	}

	return c
}

// requireSameUniverse verifies both relations range over the same elements.
func (r *Relation) requireSameUniverse(s *Relation) error {
	defer rlockPair(r, s)()

	if len(r.elems) != len(s.elems) {
		return ErrUniverseMismatch
	}
	for e := range r.elems {
		if _, ok := s.elems[e]; !ok {
			return ErrUniverseMismatch
		}
	}

	return nil
}
