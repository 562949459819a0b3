/*
Package kernel defines the capability boundary between the polyhedra access
layer and a geometry kernel.

A kernel owns the heavyweight geometric state (rays, facets, lineality,
Hilbert bases) and caches every derived property internally, keyed by the
logical object. The access layer treats a kernel as a black-box memoizing
service: it never caches derived data of its own, and repeated element access
may incur repeated kernel round-trips.

The package contributes only boundary vocabulary: the Kernel capability
interface, opaque Handle references, the exact-rational Matrix exchange type,
and the closed set of Property names a kernel is expected to answer.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package kernel

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'polyhedra'
func tracer() tracing.Trace {
	return tracing.Select("polyhedra")
}
