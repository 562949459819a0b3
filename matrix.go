package polyhedra

import (
	"strings"

	"github.com/npillmayer/polyhedra/kernel"
)

// Matrix is a dense block of scalar rows, the result type of view
// materialization. Rows of inequality and equation matrices are kept in
// evaluation form: a row ρ satisfies ρ·x ≥ 0 (resp. = 0) on the object,
// affine rows evaluating against (1, x).
type Matrix[S Scalar] [][]S

// NumRows returns the number of rows.
func (m Matrix[S]) NumRows() int { return len(m) }

// NumCols returns the row length, or 0 for a rowless matrix.
func (m Matrix[S]) NumCols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Row returns a copy of row i (0-based).
func (m Matrix[S]) Row(i int) []S { return copyScalars(m[i]) }

// Equal reports structural equality of shape and entries.
func (m Matrix[S]) Equal(other Matrix[S]) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if !equalScalars(m[i], other[i]) {
			return false
		}
	}
	return true
}

func (m Matrix[S]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range m {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(scalarsString(row))
	}
	sb.WriteByte(']')
	return sb.String()
}

// matrixFromKernel converts a kernel block into the scalar domain S.
func matrixFromKernel[S Scalar](km kernel.Matrix) (Matrix[S], error) {
	out := make(Matrix[S], km.NumRows())
	for i := range out {
		row, err := scalarsFromRats[S](km.Row(i))
		if err != nil {
			return nil, err
		}
		out[i] = row
	}
	return out, nil
}

// kernelFromMatrix converts rows of S into a kernel block with cols columns.
func kernelFromMatrix[S Scalar](m Matrix[S], cols int) (kernel.Matrix, error) {
	km := kernel.NewMatrix(cols)
	for _, row := range m {
		if err := km.AppendRow(ratsFromScalars(row)); err != nil {
			return kernel.Matrix{}, err
		}
	}
	return km, nil
}

// IncidenceMatrix is a 0/1 structure relating the elements of a view (rows)
// to another generator set (columns), e.g. which rays border which facet.
type IncidenceMatrix [][]bool

// NumRows returns the number of rows.
func (inc IncidenceMatrix) NumRows() int { return len(inc) }

// NumCols returns the row length, or 0 for a rowless structure.
func (inc IncidenceMatrix) NumCols() int {
	if len(inc) == 0 {
		return 0
	}
	return len(inc[0])
}

// At reports whether row element i is incident with column element j
// (0-based).
func (inc IncidenceMatrix) At(i, j int) bool { return inc[i][j] }

func (inc IncidenceMatrix) String() string {
	var sb strings.Builder
	for i, row := range inc {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, b := range row {
			if b {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func incidenceFromKernel(km kernel.Matrix) IncidenceMatrix {
	out := make(IncidenceMatrix, km.NumRows())
	for i := range out {
		row := make([]bool, km.NumCols())
		for j := range row {
			row[j] = km.At(i, j).Sign() != 0
		}
		out[i] = row
	}
	return out
}
