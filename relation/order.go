// Package relation: partial-order analysis.
//
// All functions here require R to be a partial order (reflexive,
// antisymmetric, transitive) and return ErrNotPartialOrder otherwise.
// They operate on the strict part R \ {(a,a)} where ordering matters.
package relation

import "sort"

// Minimal returns the sorted minimal elements of a partial order:
// those with no strict predecessor.
// Complexity: O(n + m) after the property check.
func (r *Relation) Minimal() ([]string, error) {
	if !r.IsPartialOrder() {
		return nil, ErrNotPartialOrder
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	mins := make([]string, 0)
	for a := range r.elems {
		if !r.hasStrictPredLocked(a) {
			mins = append(mins, a)
		}
	}
	sort.Strings(mins)

	return mins, nil
}

// Maximal returns the sorted maximal elements of a partial order:
// those with no strict successor.
// Complexity: O(n + m) after the property check.
func (r *Relation) Maximal() ([]string, error) {
	if !r.IsPartialOrder() {
		return nil, ErrNotPartialOrder
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	maxs := make([]string, 0)
	for a := range r.elems {
		if !r.hasStrictSuccLocked(a) {
			maxs = append(maxs, a)
		}
	}
	sort.Strings(maxs)

	return maxs, nil
}

// CoveringPairs returns the covering relation of a partial order: the
// edges of its Hasse diagram: (a, b) with a < b and no c with a < c < b.
// This is the transitive reduction of the strict part, sorted by (A, B).
// Complexity: O(m·d) after the property check.
func (r *Relation) CoveringPairs() ([]Pair, error) {
	if !r.IsPartialOrder() {
		return nil, ErrNotPartialOrder
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	covers := make([]Pair, 0)
	for a, s := range r.succ {
		for b := range s {
			if a == b {
				continue
			}
			// (a, b) covers iff no intermediate c exists with a<c<b.
			direct := true
			for c := range s {
				if c == a || c == b {
					continue
				}
				if r.hasPairLocked(c, b) {
					direct = false
					break
				}
			}
			if direct {
				covers = append(covers, Pair{A: a, B: b})
			}
		}
	}
	sort.Slice(covers, func(i, j int) bool {
		if covers[i].A != covers[j].A {
			return covers[i].A < covers[j].A
		}

		return covers[i].B < covers[j].B
	})

	return covers, nil
}

// TopologicalOrder returns a linear extension of a partial order via
// Kahn's algorithm on the strict part, breaking ties lexicographically,
// so the result is deterministic.
// Complexity: O(n² + m) after the property check.
func (r *Relation) TopologicalOrder() ([]string, error) {
	if !r.IsPartialOrder() {
		return nil, ErrNotPartialOrder
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	// 1. Strict in-degrees.
	indeg := make(map[string]int, len(r.elems))
	for a := range r.elems {
		indeg[a] = 0
	}
	for a, s := range r.succ {
		for b := range s {
			if a != b {
				indeg[b]++
			}
		}
	}

	// 2. Lexicographic Kahn: always pop the smallest ready element.
	ready := make([]string, 0, len(r.elems))
	for a, d := range indeg {
		if d == 0 {
			ready = append(ready, a)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(r.elems))
	for len(ready) > 0 {
		a := ready[0]
		ready = ready[1:]
		order = append(order, a)

		released := make([]string, 0)
		for b := range r.succ[a] {
			if b == a {
				continue
			}
			indeg[b]--
			if indeg[b] == 0 {
				released = append(released, b)
			}
		}
		if len(released) > 0 {
			ready = append(ready, released...)
			sort.Strings(ready)
		}
	}

	// A partial order is acyclic on its strict part, so every element
	// is emitted.
	return order, nil
}

// hasStrictPredLocked reports whether some b ≠ a has (b, a) ∈ R.
// Caller holds the read lock.
func (r *Relation) hasStrictPredLocked(a string) bool {
	for b := range r.pred[a] {
		if b != a {
			return true
		}
	}

	return false
}

// hasStrictSuccLocked reports whether some b ≠ a has (a, b) ∈ R.
// Caller holds the read lock.
func (r *Relation) hasStrictSuccLocked(a string) bool {
	for b := range r.succ[a] {
		if b != a {
			return true
		}
	}

	return false
}
