package exact

import (
	"math/big"
)

// ddRay is one generator under construction, together with the set of
// already processed inequalities it is tight on. The tight set doubles as
// the key for the combinatorial adjacency test.
type ddRay struct {
	v     []*big.Rat
	tight *big.Int // bit j set <=> ineqs[j]·v == 0
}

// dualDescription converts the H-representation {x : A·x ≥ 0, E·x = 0} of a
// cone in R^dim into its V-representation: a set of extreme-ray
// representatives and a basis of the lineality space.
//
// The incremental construction follows the double-description method: start
// from the null space of E, then cut with one inequality at a time. While a
// cut still meets the current lineality space, the lineality shrinks by one
// dimension and contributes a new ray; afterwards rays are combined pairwise
// across the cutting hyperplane, restricted to adjacent pairs via the
// combinatorial tight-set test.
//
// Returned rays are primitive integral, reduced modulo the lineality space,
// and sorted; the lineality basis is in primitive RREF form. The result is
// therefore canonical for a given input.
func dualDescription(ineqs, eqs [][]*big.Rat, dim int) (rays, lineality [][]*big.Rat) {
	lin := copyRows(nullspaceBasis(eqs, dim))
	var cur []*ddRay

	for j, a := range ineqs {
		// Does the inequality cut the current lineality space?
		pivot := -1
		var pd *big.Rat
		for t, b := range lin {
			if d := ratDot(a, b); d.Sign() != 0 {
				pivot, pd = t, d
				break
			}
		}
		if pivot >= 0 {
			b0 := lin[pivot]
			if pd.Sign() < 0 {
				negRow(b0)
				pd.Neg(pd)
			}
			lin = append(lin[:pivot], lin[pivot+1:]...)
			// project the remaining lineality and all rays onto {a·x = 0}
			for _, b := range lin {
				if d := ratDot(a, b); d.Sign() != 0 {
					f := new(big.Rat).Neg(new(big.Rat).Quo(d, pd))
					axpy(b, f, b0)
				}
			}
			for _, r := range cur {
				if d := ratDot(a, r.v); d.Sign() != 0 {
					f := new(big.Rat).Neg(new(big.Rat).Quo(d, pd))
					axpy(r.v, f, b0)
					r.v = primitiveRow(r.v)
				}
				r.tight.SetBit(r.tight, j, 1)
			}
			// the removed basis vector survives as a ray on the feasible side
			nr := &ddRay{v: primitiveRow(b0), tight: new(big.Int)}
			for k := 0; k < j; k++ {
				nr.tight.SetBit(nr.tight, k, 1)
			}
			cur = append(cur, nr)
			continue
		}

		// The inequality vanishes on the lineality space; split the rays.
		var pos, zero, neg []*ddRay
		vals := make(map[*ddRay]*big.Rat, len(cur))
		for _, r := range cur {
			d := ratDot(a, r.v)
			vals[r] = d
			switch d.Sign() {
			case 1:
				pos = append(pos, r)
			case 0:
				zero = append(zero, r)
			default:
				neg = append(neg, r)
			}
		}
		for _, r := range zero {
			r.tight.SetBit(r.tight, j, 1)
		}
		if len(neg) == 0 {
			continue
		}
		next := make([]*ddRay, 0, len(pos)+len(zero))
		seen := make(map[string]bool)
		for _, r := range append(pos[:len(pos):len(pos)], zero...) {
			next = append(next, r)
			seen[rowKey(r.v)] = true
		}
		for _, p := range pos {
			for _, n := range neg {
				if !adjacent(p, n, cur) {
					continue
				}
				// w = (a·p)·n − (a·n)·p lies on {a·x = 0} and is a conic
				// combination of p and n.
				w := zeroRow(dim)
				axpy(w, vals[p], n.v)
				f := new(big.Rat).Neg(vals[n])
				axpy(w, f, p.v)
				w = primitiveRow(w)
				if isZeroRow(w) {
					continue
				}
				key := rowKey(w)
				if seen[key] {
					continue
				}
				seen[key] = true
				nr := &ddRay{v: w, tight: new(big.Int)}
				for k := 0; k <= j; k++ {
					if ratDot(ineqs[k], w).Sign() == 0 {
						nr.tight.SetBit(nr.tight, k, 1)
					}
				}
				next = append(next, nr)
			}
		}
		cur = next
	}

	// canonicalize: lineality in primitive RREF, rays reduced modulo it
	linBasis, pivots := rref(lin, dim)
	seen := make(map[string]bool)
	for _, r := range cur {
		reduceModulo(r.v, linBasis, pivots)
		v := primitiveRow(r.v)
		if isZeroRow(v) {
			continue
		}
		key := rowKey(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		rays = append(rays, v)
	}
	sortRows(rays)
	for i, b := range linBasis {
		linBasis[i] = primitiveRow(b)
	}
	return rays, linBasis
}

// adjacent is the combinatorial adjacency test: p and n are adjacent iff no
// third ray is tight on every inequality both p and n are tight on.
func adjacent(p, n *ddRay, rays []*ddRay) bool {
	t := new(big.Int).And(p.tight, n.tight)
	masked := new(big.Int)
	for _, r := range rays {
		if r == p || r == n {
			continue
		}
		if masked.And(r.tight, t).Cmp(t) == 0 {
			return false
		}
	}
	return true
}
