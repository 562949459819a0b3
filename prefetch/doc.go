/*
Package prefetch warms a kernel's property caches in the background.

Derived properties of polyhedral objects are computed lazily, on the first
access, and the first access to a representation conversion can be
expensive. A prefetch job asks the kernel for a list of properties on a
goroutine, so that later synchronous accesses are answered from the
kernel's cache. Prefetching is transparent to readers: the kernel
serializes computation per handle, so a reader arriving before the job
has finished simply blocks on the kernel, not on the job.

Interested parties may subscribe to a running job and receive one event
per completed property.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package prefetch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'polyhedra'
func tracer() tracing.Trace {
	return tracing.Select("polyhedra")
}
