/*
Package formatter pretty-prints polyhedral objects on fixed-width output
devices. Think of this package in terms of `fmt.Println` for matrices,
cones and incidence structures.

Matrices are laid out with right-aligned columns, every entry printed
exactly (rationals as p/q, integers as plain digits). Cones and polyhedra
get a one-line header with their scalar domain and dimensions, followed by
their generator and facet blocks. Output to an interactive terminal may be
colorized; Config decides, and ConfigFromTerminal derives a sensible
configuration from the current terminal's properties.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'polyhedra'
func tracer() tracing.Trace {
	return tracing.Select("polyhedra")
}
