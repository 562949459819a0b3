package exact

import (
	"math/big"
	"sort"
	"strings"
)

// Small exact linear algebra over []*big.Rat rows. All helpers treat their
// arguments as immutable and return fresh rows, except where noted.

func ratDot(a, b []*big.Rat) *big.Rat {
	assert(len(a) == len(b), "dot product of rows with different lengths")
	sum := new(big.Rat)
	t := new(big.Rat)
	for i := range a {
		sum.Add(sum, t.Mul(a[i], b[i]))
	}
	return sum
}

func copyRow(row []*big.Rat) []*big.Rat {
	cp := make([]*big.Rat, len(row))
	for i, q := range row {
		cp[i] = new(big.Rat).Set(q)
	}
	return cp
}

func copyRows(rows [][]*big.Rat) [][]*big.Rat {
	cp := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		cp[i] = copyRow(row)
	}
	return cp
}

func zeroRow(n int) []*big.Rat {
	row := make([]*big.Rat, n)
	for i := range row {
		row[i] = new(big.Rat)
	}
	return row
}

func isZeroRow(row []*big.Rat) bool {
	for _, q := range row {
		if q.Sign() != 0 {
			return false
		}
	}
	return true
}

// axpy adds c·src to dst in place.
func axpy(dst []*big.Rat, c *big.Rat, src []*big.Rat) {
	t := new(big.Rat)
	for i := range dst {
		dst[i].Add(dst[i], t.Mul(c, src[i]))
	}
}

// scaleRow multiplies row by c in place.
func scaleRow(row []*big.Rat, c *big.Rat) {
	for i := range row {
		row[i].Mul(row[i], c)
	}
}

func negRow(row []*big.Rat) {
	for i := range row {
		row[i].Neg(row[i])
	}
}

// rref brings a copy of rows into reduced row echelon form and returns the
// nonzero rows together with their pivot columns.
func rref(rows [][]*big.Rat, cols int) (basis [][]*big.Rat, pivots []int) {
	work := copyRows(rows)
	r := 0
	for c := 0; c < cols && r < len(work); c++ {
		// find a pivot row for column c
		pivot := -1
		for i := r; i < len(work); i++ {
			if work[i][c].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		work[r], work[pivot] = work[pivot], work[r]
		inv := new(big.Rat).Inv(work[r][c])
		scaleRow(work[r], inv)
		for i := range work {
			if i == r || work[i][c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Neg(work[i][c])
			axpy(work[i], f, work[r])
		}
		basis = append(basis, work[r])
		pivots = append(pivots, c)
		r++
	}
	return basis, pivots
}

func rank(rows [][]*big.Rat, cols int) int {
	basis, _ := rref(rows, cols)
	return len(basis)
}

// nullspaceBasis returns a basis of {x : rows·x = 0} in R^cols.
func nullspaceBasis(rows [][]*big.Rat, cols int) [][]*big.Rat {
	basis, pivots := rref(rows, cols)
	isPivot := make([]bool, cols)
	for _, p := range pivots {
		isPivot[p] = true
	}
	var null [][]*big.Rat
	for c := 0; c < cols; c++ {
		if isPivot[c] {
			continue
		}
		v := zeroRow(cols)
		v[c].SetInt64(1)
		for k, row := range basis {
			v[pivots[k]].Neg(row[c])
		}
		null = append(null, v)
	}
	return null
}

// reduceModulo eliminates the pivot-column entries of row against an RREF
// basis, in place. The result is the canonical coset representative of row
// modulo the span of basis.
func reduceModulo(row []*big.Rat, basis [][]*big.Rat, pivots []int) {
	for k, b := range basis {
		p := pivots[k]
		if row[p].Sign() == 0 {
			continue
		}
		f := new(big.Rat).Neg(row[p])
		// RREF basis rows have a unit pivot entry.
		axpy(row, f, b)
	}
}

// primitiveRow scales row to coprime integer entries, preserving direction.
// A zero row stays zero.
func primitiveRow(row []*big.Rat) []*big.Rat {
	out := copyRow(row)
	if isZeroRow(out) {
		return out
	}
	// clear denominators
	lcm := big.NewInt(1)
	t := new(big.Int)
	for _, q := range out {
		d := q.Denom()
		t.GCD(nil, nil, lcm, d)
		lcm.Div(lcm, t)
		lcm.Mul(lcm, d)
	}
	f := new(big.Rat).SetInt(lcm)
	scaleRow(out, f)
	// divide by the gcd of the (now integral) numerators
	gcd := new(big.Int)
	for _, q := range out {
		t.Abs(q.Num())
		gcd.GCD(nil, nil, gcd, t)
	}
	if gcd.Sign() != 0 && gcd.Cmp(big.NewInt(1)) != 0 {
		f.SetFrac(big.NewInt(1), gcd)
		scaleRow(out, f)
	}
	return out
}

// rowKey is a canonical map key for a (primitive) row.
func rowKey(row []*big.Rat) string {
	var sb strings.Builder
	for i, q := range row {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(q.RatString())
	}
	return sb.String()
}

func compareRows(a, b []*big.Rat) int {
	for i := range a {
		if c := a[i].Cmp(b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func sortRows(rows [][]*big.Rat) {
	sort.Slice(rows, func(i, j int) bool {
		return compareRows(rows[i], rows[j]) < 0
	})
}
