/*
Package exact is an in-process geometry kernel over exact rational
arithmetic.

It implements the kernel capability interface with a double-description
conversion between generator and inequality representations, combinatorial
face enumeration over facet incidences, and a lattice-point Hilbert-basis
computation for pointed cones. Every derived property is computed at most
once per handle and cached on the handle; recomputation is serialized by a
per-handle mutex, so concurrent readers of one object see consistent results.

Canonical form of stored blocks: rays and basis rows are primitive integral
vectors, ray representatives are reduced modulo the lineality space, and rows
are ordered lexicographically. Within one kernel session repeated queries
therefore return identical blocks.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package exact

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
