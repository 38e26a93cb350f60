// Package euler implements the explicit Euler method for first-order
// ODEs y' = f(x,y) with a fixed rounding precision.
//
// All arithmetic is rounded to the run precision after every operation,
// so the simulated state and the displayed state are the same numbers and
// repeated runs with identical inputs produce identical step sequences.
//
//   - [Round]: half-away-from-zero rounding at a decimal precision
//   - [Step]: one record of the integration table
//   - [Run]: fixed-endpoint integration
//   - [RunUntil]: integration with a caller-supplied stop predicate
package euler
