package domain

import "errors"

var (
	ErrUnknownRiskFlag = errors.New("unknown family-history flag")
	// ErrInvalidHeight signals a degenerate (non-positive) height handed to
	// the BMI calculator; it is never silently turned into Inf or NaN.
	ErrInvalidHeight = errors.New("height must be positive")
	// ErrNoMetrics signals an operation that needs at least one logged entry.
	ErrNoMetrics = errors.New("no metrics logged yet")
)
