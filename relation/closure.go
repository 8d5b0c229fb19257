// Package relation: closure operations.
//
// Closures mutate the receiver in place: the smallest superset of R with
// the named property replaces R. Compose with Clone() for a pure variant:
//
//	closed := r.Clone()
//	closed.TransitiveClosure()
//
// Every closure is idempotent: applying it twice equals applying it once.
package relation

// ReflexiveClosure adds (a, a) for every element a of the universe.
// Complexity: O(n).
func (r *Relation) ReflexiveClosure() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for a := range r.elems {
		r.addPairLocked(a, a)
	}
}

// SymmetricClosure adds (b, a) for every (a, b) ∈ R.
// Complexity: O(m).
func (r *Relation) SymmetricClosure() {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Snapshot first: addPairLocked mutates the maps being ranged otherwise.
	type pair struct{ a, b string }
	missing := make([]pair, 0)
	for a, s := range r.succ {
		for b := range s {
			if !r.hasPairLocked(b, a) {
				missing = append(missing, pair{a: b, b: a})
			}
		}
	}
	for _, p := range missing {
		r.addPairLocked(p.a, p.b)
	}
}

// TransitiveClosure replaces R with its transitive closure using
// Warshall's algorithm over the sorted element index.
// Complexity: O(n³) time, O(n²) memory.
func (r *Relation) TransitiveClosure() {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 1. Freeze a deterministic index of the universe.
	idx := sortedKeys(r.elems)
	n := len(idx)
	pos := make(map[string]int, n)
	for i, e := range idx {
		pos[e] = i
	}

	// 2. Load the current pair set into a dense reachability table.
	reach := make([][]bool, n)
	for i := range reach {
		reach[i] = make([]bool, n)
	}
	for a, s := range r.succ {
		for b := range s {
			reach[pos[a]][pos[b]] = true
		}
	}

	// 3. Warshall: admit k as an intermediate hop, one index at a time.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !reach[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if reach[k][j] {
					reach[i][j] = true
				}
			}
		}
	}

	// 4. Rebuild the indices from the closed table.
	r.succ = make(map[string]map[string]struct{}, n)
	r.pred = make(map[string]map[string]struct{}, n)
	r.size = 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if reach[i][j] {
				r.addPairLocked(idx[i], idx[j])
			}
		}
	}
}

// EquivalenceClosure makes R the smallest equivalence relation containing
// it: reflexive, then symmetric, then transitive closure, in that order.
// Complexity: O(n³).
func (r *Relation) EquivalenceClosure() {
	r.ReflexiveClosure()
	r.SymmetricClosure()
	r.TransitiveClosure()
}
