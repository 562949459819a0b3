package polyhedra

import (
	"fmt"
	"iter"

	"github.com/npillmayer/polyhedra/kernel"
)

// Element constrains the item types a view can yield and ties them to their
// scalar domain at the type level.
type Element[S Scalar] interface {
	Domain() ScalarDomain
}

// View is a fixed-length, random-access, read-only lazy sequence over one
// derived property of one backing object. A view holds a handle reference,
// an accessor tag and a per-element accessor; it owns nothing and caches
// nothing. Element access defers the kernel query to the moment an element
// is requested; two elements constructed at different positions are
// independent. Repeated access re-queries the kernel, which answers from its
// own cache.
//
// Positions are 1-based in [1, Len()].
type View[T Element[S], S Scalar] struct {
	kern kernel.Kernel
	h    kernel.Handle
	tag  accessorTag
	n    int
	at   func(i int) (T, error) // 1-based; bounds already checked
}

func newView[T Element[S], S Scalar](k kernel.Kernel, h kernel.Handle, tag accessorTag, n int,
	at func(i int) (T, error)) *View[T, S] {
	assert(n >= 0, "view with negative length")
	return &View[T, S]{kern: k, h: h, tag: tag, n: n, at: at}
}

// Len returns the fixed element count.
func (v *View[T, S]) Len() int {
	if v == nil {
		return 0
	}
	return v.n
}

// At materializes element i, 1 ≤ i ≤ Len(). The bound accessor performs a
// single kernel query and wraps the raw coordinates into T.
func (v *View[T, S]) At(i int) (T, error) {
	var zero T
	if v == nil || i < 1 || i > v.n {
		return zero, fmt.Errorf("%w: position %d of %d", ErrIndexOutOfRange, i, v.Len())
	}
	return v.at(i)
}

// First returns element 1.
func (v *View[T, S]) First() (T, error) {
	return v.At(1)
}

// Last returns element Len().
func (v *View[T, S]) Last() (T, error) {
	return v.At(v.Len())
}

// Each traverses all elements in position order. Traversal stops early if
// fn returns an error, which is passed through.
func (v *View[T, S]) Each(fn func(i int, item T) error) error {
	for i := 1; i <= v.Len(); i++ {
		item, err := v.at(i)
		if err != nil {
			return err
		}
		if err := fn(i, item); err != nil {
			return err
		}
	}
	return nil
}

// All returns a range function over (position, element) pairs. Iteration
// stops at the first element whose materialization fails; use Each to
// observe errors.
func (v *View[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 1; i <= v.Len(); i++ {
			item, err := v.at(i)
			if err != nil {
				tracer().Errorf("view traversal stopped: %s", err.Error())
				return
			}
			if !yield(i, item) {
				return
			}
		}
	}
}
