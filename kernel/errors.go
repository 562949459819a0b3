package kernel

import "errors"

var (
	// ErrUnknownProperty signals a property name outside the closed property set.
	ErrUnknownProperty = errors.New("kernel: unknown property")
	// ErrBadHandle signals a handle not minted by the queried kernel.
	ErrBadHandle = errors.New("kernel: foreign or void handle")
	// ErrBadInput signals construction input a kernel cannot accept.
	ErrBadInput = errors.New("kernel: invalid construction input")
	// ErrShape signals rows of inconsistent length for a matrix.
	ErrShape = errors.New("kernel: inconsistent matrix shape")
)
