// Package builder: canned relation constructors.
package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/cetrei/relationutils/relation"
)

var (
	// ErrBadDensity is returned when density falls outside [0,1].
	ErrBadDensity = errors.New("builder: density must lie in [0,1]")
	// ErrBadBound is returned when a size bound is not positive.
	ErrBadBound = errors.New("builder: bound must be positive")
)

// Identity returns the diagonal relation {(x,x) | x ∈ elements}.
func Identity(elements []string) (*relation.Relation, error) {
	r, err := relation.New(elements)
	if err != nil {
		return nil, err
	}
	for _, e := range elements {
		if err = r.AddPair(e, e); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Complete returns the full relation A×A, loops included.
func Complete(elements []string) (*relation.Relation, error) {
	r, err := relation.New(elements)
	if err != nil {
		return nil, err
	}
	for _, a := range elements {
		for _, b := range elements {
			if err = r.AddPair(a, b); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// Chain returns the total order induced by the argument sequence:
// (elements[i], elements[j]) for every i ≤ j. Reflexive, antisymmetric,
// transitive, and total by construction, so the result feeds straight
// into Minimal/Maximal/CoveringPairs/TopologicalOrder. Order follows
// the argument slice, not the sorted universe.
func Chain(elements []string) (*relation.Relation, error) {
	r, err := relation.New(elements)
	if err != nil {
		return nil, err
	}
	for i := range elements {
		for j := i; j < len(elements); j++ {
			if err = r.AddPair(elements[i], elements[j]); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// Cycle links consecutive elements, (e0,e1) through (e_{n-2},e_{n-1}),
// and closes the ring with (last, first). A single element yields the
// loop (e,e).
func Cycle(elements []string) (*relation.Relation, error) {
	r, err := relation.New(elements)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(elements); i++ {
		if err = r.AddPair(elements[i], elements[i+1]); err != nil {
			return nil, err
		}
	}
	if n := len(elements); n > 0 {
		if err = r.AddPair(elements[n-1], elements[0]); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Divisibility returns "a divides b" over {"1", ..., strconv n}: the
// textbook partial order, reflexive and antisymmetric by construction.
func Divisibility(n int) (*relation.Relation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadBound, n)
	}

	elements := make([]string, n)
	for i := range elements {
		elements[i] = strconv.Itoa(i + 1)
	}
	r, err := relation.New(elements)
	if err != nil {
		return nil, err
	}
	for a := 1; a <= n; a++ {
		for b := a; b <= n; b += a {
			if err = r.AddPair(strconv.Itoa(a), strconv.Itoa(b)); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// Random returns a relation over elements where each ordered pair
// (loops included) is present independently with probability density.
// The same seed reproduces the same relation.
func Random(elements []string, density float64, seed int64) (*relation.Relation, error) {
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadDensity, density)
	}
	r, err := relation.New(elements)
	if err != nil {
		return nil, err
	}

	// Sample in sorted order so the draw sequence is stable.
	rng := rand.New(rand.NewSource(seed))
	for _, a := range r.Elements() {
		for _, b := range r.Elements() {
			if rng.Float64() < density {
				if err = r.AddPair(a, b); err != nil {
					return nil, err
				}
			}
		}
	}

	return r, nil
}
