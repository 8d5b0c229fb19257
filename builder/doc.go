// Package builder constructs ready-made relations for tests, examples,
// and exploratory sessions.
//
// What:
//   - Identity: the diagonal {(x,x)}.
//   - Complete: the full cross product A×A.
//   - Chain: the total order of a sequence, (eᵢ, eⱼ) for every i ≤ j.
//   - Cycle: successor pairs around a closed ring.
//   - Divisibility: "a divides b" over {1..n}, the canonical partial
//     order.
//   - Random: density-controlled pair sampling from a seeded source.
//
// Why:
//   - Property checks and closure algorithms need known-shape inputs;
//     hand-writing pair lists for each one is noise.
//
// Determinism: Random draws from math/rand with the caller's seed, so
// the same seed always yields the same relation.
//
// Errors: builders surface relation package errors unchanged
// (relation.ErrEmptyElementID, relation.ErrDuplicateElement) plus
// ErrBadDensity and ErrBadBound for out-of-range arguments.
package builder
