// SPDX-License-Identifier: MIT

// Package relation: core types, sentinel errors, functional options,
// and the New constructor. Algorithms live in the sibling files
// (methods.go, properties.go, closure.go, algebra.go, equivalence.go,
// order.go) per the package conventions.
package relation

import (
	"errors"
	"sync"
	"sync/atomic"
)

// relationSeq stamps every Relation with a process-unique creation
// order, consumed by rlockPair for stable two-operand locking.
var relationSeq atomic.Uint64

// Sentinel errors for relation operations. All algorithms return these
// sentinels (optionally wrapped with %w at outer boundaries) and tests
// match them via errors.Is.
var (
	// ErrEmptyElementID indicates an element ID was the empty string.
	ErrEmptyElementID = errors.New("relation: element ID is empty")

	// ErrDuplicateElement indicates New was given a repeated element.
	ErrDuplicateElement = errors.New("relation: duplicate element in universe")

	// ErrElementNotFound indicates an operation referenced an element
	// outside the relation's universe.
	ErrElementNotFound = errors.New("relation: element not found")

	// ErrNilRelation indicates a nil *Relation operand.
	ErrNilRelation = errors.New("relation: nil relation")

	// ErrUniverseMismatch indicates two relations with different universes
	// were combined (Union, Intersect, Difference, Compose).
	ErrUniverseMismatch = errors.New("relation: universe mismatch")

	// ErrNotEquivalence indicates a partition was requested of a relation
	// that is not reflexive, symmetric, and transitive.
	ErrNotEquivalence = errors.New("relation: not an equivalence relation")

	// ErrNotPartialOrder indicates order analysis was requested of a
	// relation that is not reflexive, antisymmetric, and transitive.
	ErrNotPartialOrder = errors.New("relation: not a partial order")
)

// Pair is one ordered pair (A, B) of a relation: A is related to B.
type Pair struct {
	// A is the source element ID.
	A string

	// B is the destination element ID.
	B string
}

// Relation is a binary relation R ⊆ A×A over a finite universe A of
// string element IDs.
//
// Pairs are stored twice, as successor and predecessor indices, so both
// Followers and Parents run in O(deg). A single mu guards all state.
type Relation struct {
	mu sync.RWMutex

	// seq fixes the order in which two-operand algebra acquires locks;
	// see rlockPair.
	seq uint64

	// elems is the universe A.
	elems map[string]struct{}

	// succ[a] is the set of b with (a, b) ∈ R.
	succ map[string]map[string]struct{}

	// pred[b] is the set of a with (a, b) ∈ R.
	pred map[string]map[string]struct{}

	// size is the number of pairs in R.
	size int
}

// Option configures a Relation at construction time.
type Option func(*config)

// config collects construction-time settings applied by New.
type config struct {
	pairs    []Pair // initial pairs, added after the universe is built
	capacity int    // capacity hint for the universe maps
}

// WithPairs seeds the relation with the given pairs. Endpoints must be
// members of the universe passed to New; New fails with ErrElementNotFound
// otherwise.
func WithPairs(pairs ...Pair) Option {
	return func(c *config) {
		c.pairs = append(c.pairs, pairs...)
	}
}

// WithCapacity pre-sizes the internal maps for a universe expected to
// grow to n elements. Purely an allocation hint.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// New creates a Relation over the given universe, applying options in order.
// Element IDs must be unique and non-empty.
//
// Returns ErrEmptyElementID, ErrDuplicateElement, or ErrElementNotFound
// (for a WithPairs endpoint outside the universe).
// Complexity: O(|elements| + |pairs|).
func New(elements []string, opts ...Option) (*Relation, error) {
	// 1. Apply options.
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Allocate with capacity hint.
	n := len(elements)
	if cfg.capacity > n {
		n = cfg.capacity
	}
	r := &Relation{
		seq:   relationSeq.Add(1),
		elems: make(map[string]struct{}, n),
		succ:  make(map[string]map[string]struct{}, n),
		pred:  make(map[string]map[string]struct{}, n),
	}

	// 3. Build the universe, rejecting empty and duplicate IDs.
	for _, e := range elements {
		if e == "" {
			return nil, ErrEmptyElementID
		}
		if _, dup := r.elems[e]; dup {
			return nil, ErrDuplicateElement
		}
		r.elems[e] = struct{}{}
	}

	// 4. Seed initial pairs.
	for _, p := range cfg.pairs {
		if err := r.AddPair(p.A, p.B); err != nil {
			return nil, err
		}
	}

	return r, nil
}
