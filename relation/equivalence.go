// Package relation: equivalence-relation analysis.
package relation

import "sort"

// EquivalenceClasses returns the partition A/R induced by an equivalence
// relation: each class sorted internally, classes sorted by their first
// element.
// Returns ErrNotEquivalence if R is not reflexive, symmetric, and
// transitive.
// Complexity: O(n + m) after the O(n + m·d) property check.
func (r *Relation) EquivalenceClasses() ([][]string, error) {
	if !r.IsEquivalence() {
		return nil, ErrNotEquivalence
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	// For an equivalence relation the class of a is exactly its follower
	// set, so one pass over representatives suffices.
	seen := make(map[string]struct{}, len(r.elems))
	classes := make([][]string, 0)
	for _, a := range sortedKeys(r.elems) {
		if _, done := seen[a]; done {
			continue
		}
		class := sortedKeys(r.succ[a])
		for _, e := range class {
			seen[e] = struct{}{}
		}
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i][0] < classes[j][0] })

	return classes, nil
}

// ClassOf returns the equivalence class [a] = {b : (a, b) ∈ R}, sorted.
// Returns ErrElementNotFound if a is outside the universe, or
// ErrNotEquivalence if R is not an equivalence relation.
// Complexity: O(deg(a) log deg(a)) after the property check.
func (r *Relation) ClassOf(a string) ([]string, error) {
	if !r.HasElement(a) {
		return nil, ErrElementNotFound
	}
	if !r.IsEquivalence() {
		return nil, ErrNotEquivalence
	}

	return r.Followers(a)
}
