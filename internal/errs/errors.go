package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	ErrNotFound = errors.New("not_found")
	// ErrInvalid is returned for non-positive or non-finite amounts.
	ErrInvalid = errors.New("invalid")
	// ErrInsufficientFunds indicates a withdrawal larger than the balance under a strict policy.
	ErrInsufficientFunds = errors.New("insufficient_funds")
)
