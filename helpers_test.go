package polyhedra

import (
	"math/big"
	"testing"

	"github.com/npillmayer/polyhedra/kernel/exact"
)

// Test helpers shared by the package tests. Cones and polyhedra are backed
// by the in-process exact kernel.

func newTestKernel(t *testing.T) *exact.Kernel {
	t.Helper()
	k, err := exact.New(exact.Config{})
	if err != nil {
		t.Fatal(err.Error())
	}
	return k
}

// qvec builds a rational ray from integer coordinates.
func qvec(xs ...int64) RayVector[*big.Rat] {
	v := make(RayVector[*big.Rat], len(xs))
	for i, x := range xs {
		v[i] = big.NewRat(x, 1)
	}
	return v
}

// qpoint builds a rational point from integer coordinates.
func qpoint(xs ...int64) PointVector[*big.Rat] {
	v := make(PointVector[*big.Rat], len(xs))
	for i, x := range xs {
		v[i] = big.NewRat(x, 1)
	}
	return v
}

// zvec builds an integer ray.
func zvec(xs ...int64) RayVector[*big.Int] {
	v := make(RayVector[*big.Int], len(xs))
	for i, x := range xs {
		v[i] = big.NewInt(x)
	}
	return v
}

// octant builds the positive octant cone in 3-space over the rationals.
func octant(t *testing.T) *Cone[*big.Rat] {
	t.Helper()
	k := newTestKernel(t)
	c, err := NewCone(k, []RayVector[*big.Rat]{qvec(1, 0, 0), qvec(0, 1, 0), qvec(0, 0, 1)}, nil)
	if err != nil {
		t.Fatal(err.Error())
	}
	return c
}

// unitSquare builds the polytope conv{(0,0),(1,0),(0,1),(1,1)} over the
// rationals.
func unitSquare(t *testing.T) *Polyhedron[*big.Rat] {
	t.Helper()
	k := newTestKernel(t)
	p, err := NewPolyhedronFromPoints(k, []PointVector[*big.Rat]{
		qpoint(0, 0), qpoint(1, 0), qpoint(0, 1), qpoint(1, 1),
	})
	if err != nil {
		t.Fatal(err.Error())
	}
	return p
}

func ratRow(xs ...int64) []*big.Rat {
	row := make([]*big.Rat, len(xs))
	for i, x := range xs {
		row[i] = big.NewRat(x, 1)
	}
	return row
}

func rowEquals(row []*big.Rat, xs ...int64) bool {
	if len(row) != len(xs) {
		return false
	}
	for i, x := range xs {
		if row[i].Cmp(big.NewRat(x, 1)) != 0 {
			return false
		}
	}
	return true
}
