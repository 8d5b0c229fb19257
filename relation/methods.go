// Package relation: thread-safe mutators and queries on the Relation type.
//
// Mutators take the write lock; queries take the read lock. Every
// enumeration returns a fresh sorted slice, so callers may mutate results
// freely.
package relation

import (
	"fmt"
	"sort"
	"strings"
)

// AddElement inserts a new element into the universe.
// Adding an existing element is a no-op (idempotent).
// Returns ErrEmptyElementID if id is empty.
// Complexity: O(1) amortized.
func (r *Relation) AddElement(id string) error {
	if id == "" {
		return ErrEmptyElementID
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.elems[id] = struct{}{}

	return nil
}

// HasElement reports whether id belongs to the universe.
// Complexity: O(1).
func (r *Relation) HasElement(id string) bool {
	if id == "" {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.elems[id]

	return ok
}

// AddPair inserts the ordered pair (a, b) into the relation.
// Both endpoints must already belong to the universe.
// Adding an existing pair is a no-op.
// Returns ErrEmptyElementID or ErrElementNotFound.
// Complexity: O(1) amortized.
func (r *Relation) AddPair(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyElementID
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.elems[a]; !ok {
		return fmt.Errorf("pair (%s,%s): %w", a, b, ErrElementNotFound)
	}
	if _, ok := r.elems[b]; !ok {
		return fmt.Errorf("pair (%s,%s): %w", a, b, ErrElementNotFound)
	}
	r.addPairLocked(a, b)

	return nil
}

// AddPairs inserts every given pair, stopping at the first error.
// Complexity: O(len(pairs)) amortized.
func (r *Relation) AddPairs(pairs ...Pair) error {
	for _, p := range pairs {
		if err := r.AddPair(p.A, p.B); err != nil {
			return err
		}
	}

	return nil
}

// RemovePair deletes the ordered pair (a, b) if present.
// Removing an absent pair is a no-op; unknown endpoints return
// ErrElementNotFound.
// Complexity: O(1).
func (r *Relation) RemovePair(a, b string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.elems[a]; !ok {
		return ErrElementNotFound
	}
	if _, ok := r.elems[b]; !ok {
		return ErrElementNotFound
	}
	if s, ok := r.succ[a]; ok {
		if _, had := s[b]; had {
			delete(s, b)
			delete(r.pred[b], a)
			r.size--
		}
	}

	return nil
}

// HasPair reports whether (a, b) ∈ R.
// Complexity: O(1).
func (r *Relation) HasPair(a, b string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hasPairLocked(a, b)
}

// Elements returns the universe as a sorted slice.
// Complexity: O(n log n).
func (r *Relation) Elements() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.elems)
}

// Pairs returns all pairs of R sorted by (A, B).
// Complexity: O(m log m).
func (r *Relation) Pairs() []Pair {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Pair, 0, r.size)
	for a, s := range r.succ {
		for b := range s {
			out = append(out, Pair{A: a, B: b})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// Len returns the number of elements in the universe.
// Complexity: O(1).
func (r *Relation) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.elems)
}

// Size returns the number of pairs in R.
// Complexity: O(1).
func (r *Relation) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.size
}

// Domain returns the sorted set of elements that relate to something:
// {a : ∃b, (a,b) ∈ R}.
// Complexity: O(n log n).
func (r *Relation) Domain() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dom := make(map[string]struct{}, len(r.succ))
	for a, s := range r.succ {
		if len(s) > 0 {
			dom[a] = struct{}{}
		}
	}

	return sortedKeys(dom)
}

// Codomain returns the sorted set of elements something relates to:
// {b : ∃a, (a,b) ∈ R}.
// Complexity: O(n log n).
func (r *Relation) Codomain() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cod := make(map[string]struct{}, len(r.pred))
	for b, p := range r.pred {
		if len(p) > 0 {
			cod[b] = struct{}{}
		}
	}

	return sortedKeys(cod)
}

// Clone returns a deep copy of the relation: universe and pair set are
// independent of the original.
// Complexity: O(n + m).
func (r *Relation) Clone() *Relation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := &Relation{
		seq:   relationSeq.Add(1),
		elems: make(map[string]struct{}, len(r.elems)),
		succ:  make(map[string]map[string]struct{}, len(r.succ)),
		pred:  make(map[string]map[string]struct{}, len(r.pred)),
		size:  r.size,
	}
	for e := range r.elems {
		c.elems[e] = struct{}{}
	}
	for a, s := range r.succ {
		cs := make(map[string]struct{}, len(s))
		for b := range s {
			cs[b] = struct{}{}
		}
		c.succ[a] = cs
	}
	for b, p := range r.pred {
		cp := make(map[string]struct{}, len(p))
		for a := range p {
			cp[a] = struct{}{}
		}
		c.pred[b] = cp
	}

	return c
}

// String renders the relation as "A = {...}, R = {(a,b), ...}" with
// both sets sorted, mirroring the matrix/graph views' textual output.
func (r *Relation) String() string {
	var sb strings.Builder
	sb.WriteString("A = {")
	sb.WriteString(strings.Join(r.Elements(), ", "))
	sb.WriteString("}, R = {")
	pairs := r.Pairs()
	for i, p := range pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%s,%s)", p.A, p.B)
	}
	sb.WriteString("}")

	return sb.String()
}

// addPairLocked records (a, b) in both indices. Caller holds mu.
func (r *Relation) addPairLocked(a, b string) {
	s, ok := r.succ[a]
	if !ok {
		s = make(map[string]struct{})
		r.succ[a] = s
	}
	if _, had := s[b]; had {
		return
	}
	s[b] = struct{}{}

	p, ok := r.pred[b]
	if !ok {
		p = make(map[string]struct{})
		r.pred[b] = p
	}
	p[a] = struct{}{}
	r.size++
}

// hasPairLocked reports membership without locking. Caller holds mu.
func (r *Relation) hasPairLocked(a, b string) bool {
	s, ok := r.succ[a]
	if !ok {
		return false
	}
	_, ok = s[b]

	return ok
}

// sortedKeys returns the keys of a string set in lexicographic order.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
