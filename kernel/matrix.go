package kernel

import (
	"fmt"
	"math/big"
	"strings"
)

// Matrix is the dense exchange format for block properties: rows of exact
// rational values over a fixed column count. A Matrix keeps its column count
// even when it has no rows, so void blocks still carry the ambient dimension.
//
// The zero value is a 0×0 matrix.
type Matrix struct {
	cols int
	rows [][]*big.Rat
}

// NewMatrix creates an empty matrix with a fixed number of columns.
func NewMatrix(cols int) Matrix {
	if cols < 0 {
		cols = 0
	}
	return Matrix{cols: cols}
}

// MatrixFromRows creates a matrix from rows, which all must have length cols.
// The rows are deep-copied; callers keep ownership of their input.
func MatrixFromRows(rows [][]*big.Rat, cols int) (Matrix, error) {
	m := NewMatrix(cols)
	for _, row := range rows {
		if err := m.AppendRow(row); err != nil {
			return Matrix{}, err
		}
	}
	return m, nil
}

// AppendRow appends a deep copy of row.
func (m *Matrix) AppendRow(row []*big.Rat) error {
	if len(row) != m.cols {
		tracer().Errorf("matrix append: row has %d entries, want %d", len(row), m.cols)
		return fmt.Errorf("%w: row length %d, want %d", ErrShape, len(row), m.cols)
	}
	cp := make([]*big.Rat, len(row))
	for j, q := range row {
		if q == nil {
			cp[j] = new(big.Rat)
		} else {
			cp[j] = new(big.Rat).Set(q)
		}
	}
	m.rows = append(m.rows, cp)
	return nil
}

// NumRows returns the number of rows.
func (m Matrix) NumRows() int {
	return len(m.rows)
}

// NumCols returns the fixed column count.
func (m Matrix) NumCols() int {
	return m.cols
}

// Row returns a deep copy of row i (0-based). i must be in range.
func (m Matrix) Row(i int) []*big.Rat {
	row := m.rows[i]
	cp := make([]*big.Rat, len(row))
	for j, q := range row {
		cp[j] = new(big.Rat).Set(q)
	}
	return cp
}

// At returns a copy of the entry at row i, column j (0-based).
func (m Matrix) At(i, j int) *big.Rat {
	return new(big.Rat).Set(m.rows[i][j])
}

// Rows returns a deep copy of all rows.
func (m Matrix) Rows() [][]*big.Rat {
	cp := make([][]*big.Rat, len(m.rows))
	for i := range m.rows {
		cp[i] = m.Row(i)
	}
	return cp
}

// Equal reports structural equality of shape and entries.
func (m Matrix) Equal(other Matrix) bool {
	if m.cols != other.cols || len(m.rows) != len(other.rows) {
		return false
	}
	for i := range m.rows {
		for j := range m.rows[i] {
			if m.rows[i][j].Cmp(other.rows[i][j]) != 0 {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, row := range m.rows {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j, q := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(q.RatString())
		}
	}
	sb.WriteString("]")
	return sb.String()
}
