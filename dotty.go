package polyhedra

import (
	"io"

	"gonum.org/v1/gonum/graph/encoding/dot"
)

// Lattice2Dot outputs a face lattice in Graphviz DOT format
// (for debugging purposes).
func Lattice2Dot(fl *FaceLattice, w io.Writer) error {
	data, err := dot.Marshal(fl.Graph, "facelattice", "", "\t")
	if err != nil {
		tracer().Errorf("face lattice DOT: %s", err.Error())
		return err
	}
	if _, err = w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
