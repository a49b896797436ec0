package domain

import "errors"

// Validation failures are deterministic and never retryable. Callers are
// expected to test them with errors.Is after the calculators wrap them
// with field context.
var (
	ErrInvalidAmount                = errors.New("invalid amount")
	ErrInvalidDate                  = errors.New("invalid date")
	ErrUnsupportedFrequency         = errors.New("unsupported pay frequency")
	ErrUnsupportedTerminationReason = errors.New("unsupported termination reason")
)
