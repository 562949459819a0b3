package exact

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/polyhedra/kernel"
	"gonum.org/v1/gonum/stat/combin"
)

// hilbertBasis computes the unique minimal generating set of the semigroup
// of lattice points of a pointed cone.
//
// The candidate set is the lattice points of the bounding box of the
// fundamental zonotope spanned by the primitive extreme rays, filtered to
// cone membership. Every lattice point of the cone decomposes into integer
// zonotope points, so the irreducible elements of the candidate set are
// exactly the Hilbert basis. A cartesian odometer over the box coordinates
// drives the enumeration.
func (o *object) hilbertBasis() (kernel.Matrix, error) {
	ldim, err := o.linealityDim()
	if err != nil {
		return kernel.Matrix{}, err
	}
	if ldim > 0 {
		return kernel.Matrix{}, ErrNotPointed
	}
	rays := o.blocks[kernel.Rays].Rows() // primitive integral by canonicalization
	facets := o.blocks[kernel.Facets].Rows()
	span := o.blocks[kernel.LinearSpan].Rows()
	if len(rays) == 0 {
		return kernel.NewMatrix(o.ambient), nil
	}

	// bounding box of the zonotope corners: per coordinate the sums of
	// negative resp. positive ray entries
	lo := make([]int64, o.ambient)
	hi := make([]int64, o.ambient)
	for _, r := range rays {
		for j, q := range r {
			assert(q.IsInt(), "canonical ray with non-integral entry")
			if !q.Num().IsInt64() {
				return kernel.Matrix{}, fmt.Errorf("%w: ray entry %s", ErrTooLarge, q.RatString())
			}
			v := q.Num().Int64()
			if v < 0 {
				lo[j] += v
			} else {
				hi[j] += v
			}
		}
	}
	lens := make([]int, o.ambient)
	total := 1
	for j := range lens {
		width := hi[j] - lo[j] + 1
		if width > int64(o.kern.cfg.MaxLatticePoints) {
			return kernel.Matrix{}, fmt.Errorf("%w: lattice box of the ray zonotope", ErrTooLarge)
		}
		lens[j] = int(width)
		if total > o.kern.cfg.MaxLatticePoints/lens[j] {
			return kernel.Matrix{}, fmt.Errorf("%w: lattice box of the ray zonotope", ErrTooLarge)
		}
		total *= lens[j]
	}

	inCone := func(x []*big.Rat) bool {
		for _, f := range facets {
			if ratDot(f, x).Sign() < 0 {
				return false
			}
		}
		for _, e := range span {
			if ratDot(e, x).Sign() != 0 {
				return false
			}
		}
		return true
	}

	var candidates [][]*big.Rat
	gen := combin.NewCartesianGenerator(lens)
	idx := make([]int, o.ambient)
	for gen.Next() {
		gen.Product(idx)
		x := make([]*big.Rat, o.ambient)
		zero := true
		for j := range x {
			x[j] = new(big.Rat).SetInt64(lo[j] + int64(idx[j]))
			zero = zero && x[j].Sign() == 0
		}
		if zero || !inCone(x) {
			continue
		}
		candidates = append(candidates, x)
	}
	tracer().Debugf("exact: object #%d hilbert candidates: %d of %d box points",
		o.id, len(candidates), total)

	// keep the irreducible candidates
	basis := kernel.NewMatrix(o.ambient)
	diff := make([]*big.Rat, o.ambient)
	for j := range diff {
		diff[j] = new(big.Rat)
	}
	for _, x := range candidates {
		reducible := false
		for _, p := range candidates {
			if sameRow(x, p) {
				continue
			}
			for j := range diff {
				diff[j].Sub(x[j], p[j])
			}
			if inCone(diff) {
				reducible = true
				break
			}
		}
		if !reducible {
			if err := basis.AppendRow(x); err != nil {
				return kernel.Matrix{}, err
			}
		}
	}
	return basis, nil
}

func sameRow(a, b []*big.Rat) bool {
	return compareRows(a, b) == 0
}
