package polyhedra

import "errors"

var (
	// ErrUnknownDomain signals a kernel type name whose scalar token has no
	// entry in the domain table.
	ErrUnknownDomain = errors.New("polyhedra: unrecognized scalar domain")
	// ErrDomainMismatch signals a wrapper or value whose scalar domain
	// contradicts the kernel handle it refers to.
	ErrDomainMismatch = errors.New("polyhedra: scalar domain mismatch")
	// ErrIndexOutOfRange signals element access outside [1, n].
	ErrIndexOutOfRange = errors.New("polyhedra: index out of range")
	// ErrUnsupported signals a capability that is not registered for the
	// accessor behind a view.
	ErrUnsupported = errors.New("polyhedra: operation not supported")
	// ErrNotLinear signals an affine-to-linear conversion of a block whose
	// bound column is not all-zero.
	ErrNotLinear = errors.New("polyhedra: affine form is not linear")
	// ErrHomogenization signals a homogenization request with a leading
	// value that does not fit the element role.
	ErrHomogenization = errors.New("polyhedra: invalid homogenization value")
	// ErrArgument signals a violated precondition, e.g. a Hilbert basis
	// request for a non-pointed cone.
	ErrArgument = errors.New("polyhedra: illegal argument")
	// ErrCompleted signals that a builder has already completed its object
	// and it is illegal to further add generators.
	ErrCompleted = errors.New("polyhedra: builder already completed")
)
