/*
Package polyhedra is a typed, lazily-evaluated access layer over geometric
objects held by a geometry kernel.

Cones and polyhedra are computed and cached by a kernel behind the
capability interface of package kernel; this layer exposes their derived
properties (rays, facets, faces, lineality space, Hilbert basis, f-vectors,
incidence data) through a single lazy-sequence abstraction, the View.

A View is a fixed-length, random-access, read-only sequence bound to one
backing object and one accessor. Element access defers the kernel query to
the moment an element is requested; bulk consumers instead materialize the
whole block as a dense matrix. Laziness here is evaluation-order laziness
only: everything is synchronous, and the kernel is the sole memoizing
layer. Repeated iteration may incur repeated kernel round-trips, which the
kernel answers from its cache.

Coordinates come in two scalar domains, exact rational (*big.Rat) and exact
integer (*big.Int). The domain is part of a wrapper's type and is checked
once at construction against the kernel handle's declared type name.

Matrix blocks exchanged with a kernel are kept in homogeneous evaluation
form: an inequality row ρ satisfies ρ·x ≥ 0 on the object (affine rows
evaluate against (1, x)), so the affine and linear forms differ by exactly
one leading bound column. Materialized blocks are negated into the
half-space form of the view's elements (a·x ≤ b, the leading column holding
the negated bound), so a bulk row and the corresponding element's normal
agree. Materialization converts between the affine and linear forms by
prepending a zero column or by dropping a leading all-zero column, and
reduces ray-typed integer blocks to primitive vectors.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package polyhedra

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'polyhedra'
func tracer() tracing.Trace {
	return tracing.Select("polyhedra")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
