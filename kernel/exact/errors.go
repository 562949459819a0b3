package exact

import "errors"

var (
	// ErrInvalidConfig signals an invalid kernel configuration.
	ErrInvalidConfig = errors.New("exact: invalid configuration")
	// ErrNotPointed signals a Hilbert-basis request for a cone with
	// non-trivial lineality.
	ErrNotPointed = errors.New("exact: cone is not pointed")
	// ErrTooLarge signals that a computation exceeds the configured
	// enumeration budget.
	ErrTooLarge = errors.New("exact: enumeration exceeds configured limit")
)
