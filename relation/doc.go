// Package relation implements binary relations over finite sets of
// string-identified elements, with property checks, closures, and
// relation algebra.
//
// What:
//
//   - Relation: a set R ⊆ A×A of ordered pairs over a universe A,
//     stored as successor/predecessor indices for O(deg) neighborhood
//     queries. Supports:
//   - Mutators: AddElement, AddPair(s), RemovePair
//   - Neighborhood: Followers, Parents, Siblings, AreSiblings, ShareChild
//   - Property checks: IsReflexive, IsIrreflexive, IsSymmetric,
//     IsAntisymmetric, IsAsymmetric, IsTransitive, IsFunctional,
//     IsTotalFunction, IsEquivalence, IsPartialOrder, IsTotalOrder
//   - Closures (in place): ReflexiveClosure, SymmetricClosure,
//     TransitiveClosure (Warshall)
//   - Algebra (pure): Inverse, Complement, Compose, Union, Intersect,
//     Difference
//   - Equivalence analysis: EquivalenceClasses, ClassOf
//   - Order analysis: Minimal, Maximal, CoveringPairs, TopologicalOrder
//
// Why:
//   - Teach and verify the standard algebra of relations on small finite
//     sets (discrete-math coursework, model checking, dependency analysis)
//   - Serve as the canonical representation that matrix and graph views
//     convert into and out of (see convert/)
//
// Determinism:
//
//	Elements(), Pairs(), and every returned element slice are sorted
//	lexicographically, so identical relations always enumerate identically.
//
// Complexity (n = |A|, m = |R|, d = max out-degree):
//
//   - AddPair/HasPair/Followers/Parents: O(1) / O(1) / O(d log d)
//   - IsTransitive: O(m·d); TransitiveClosure: O(n³) Warshall
//   - Algebra operations: O(n + m) except Complement (O(n²)) and
//     Compose (O(m·d))
//
// Errors:
//
//   - ErrEmptyElementID    element ID is the empty string
//   - ErrDuplicateElement  universe constructed with a repeated element
//   - ErrElementNotFound   pair endpoint or query element not in universe
//   - ErrNilRelation       nil operand passed to an algebra operation
//   - ErrUniverseMismatch  algebra operands have different universes
//   - ErrNotEquivalence    partition requested of a non-equivalence
//   - ErrNotPartialOrder   order analysis requested of a non-order
//
// All operations are safe for concurrent use; a single sync.RWMutex
// guards the pair set and indices.
package relation
