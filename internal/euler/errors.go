package euler

import "errors"

// Domain errors for integration runs.
var (
	// ErrNonTerminatingStep indicates a step size of zero, or one whose
	// sign cannot reach the target endpoint.
	ErrNonTerminatingStep = errors.New("euler: step would never reach the endpoint")

	// ErrNegativePrecision indicates a rounding precision below zero.
	ErrNegativePrecision = errors.New("euler: precision must be >= 0")
)
