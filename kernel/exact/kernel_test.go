package exact

import (
	"errors"
	"math/big"
	"testing"

	"github.com/npillmayer/polyhedra/kernel"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newKernel(t *testing.T) *Kernel {
	t.Helper()
	k, err := New(Config{})
	if err != nil {
		t.Fatal(err.Error())
	}
	return k
}

func matrix(t *testing.T, cols int, rows ...[]int64) kernel.Matrix {
	t.Helper()
	m := kernel.NewMatrix(cols)
	for _, row := range rows {
		qs := make([]*big.Rat, len(row))
		for j, x := range row {
			qs[j] = big.NewRat(x, 1)
		}
		if err := m.AppendRow(qs); err != nil {
			t.Fatal(err.Error())
		}
	}
	return m
}

func mustCone(t *testing.T, k *Kernel, rays kernel.Matrix) kernel.Handle {
	t.Helper()
	h, err := k.NewCone(kernel.ScalarRational, rays, kernel.NewMatrix(rays.NumCols()))
	if err != nil {
		t.Fatal(err.Error())
	}
	return h
}

func TestKernelTypeName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newKernel(t)
	h := mustCone(t, k, matrix(t, 2, []int64{1, 0}))
	name, err := k.TypeName(h)
	if err != nil {
		t.Fatal(err.Error())
	}
	if name != "Cone<Rational>" {
		t.Errorf("type name = %q, expected Cone<Rational>", name)
	}
}

func TestKernelRejectsForeignHandle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k1 := newKernel(t)
	k2 := newKernel(t)
	h := mustCone(t, k1, matrix(t, 2, []int64{1, 0}))
	if _, err := k2.IntProperty(h, kernel.Dim); !errors.Is(err, kernel.ErrBadHandle) {
		t.Errorf("expected ErrBadHandle for a foreign handle, got %v", err)
	}
}

func TestKernelRedundantRayVanishes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newKernel(t)
	h := mustCone(t, k, matrix(t, 2, []int64{1, 0}, []int64{0, 1}, []int64{0, 2}))
	n, err := k.IntProperty(h, kernel.NRays)
	if err != nil {
		t.Fatal(err.Error())
	}
	if n != 2 {
		t.Errorf("N_RAYS = %d, expected 2", n)
	}
	rays, err := k.BlockProperty(h, kernel.Rays)
	if err != nil {
		t.Fatal(err.Error())
	}
	want := matrix(t, 2, []int64{0, 1}, []int64{1, 0})
	if !rays.Equal(want) {
		t.Errorf("canonical rays = %s, expected %s", rays, want)
	}
}

func TestKernelImplicitLineality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newKernel(t)
	h := mustCone(t, k, matrix(t, 2, []int64{1, 0}, []int64{0, 1}, []int64{0, -1}))
	ldim, err := k.IntProperty(h, kernel.LinealityDim)
	if err != nil {
		t.Fatal(err.Error())
	}
	if ldim != 1 {
		t.Errorf("LINEALITY_DIM = %d, expected 1", ldim)
	}
	pointed, err := k.BoolProperty(h, kernel.Pointed)
	if err != nil {
		t.Fatal(err.Error())
	}
	if pointed {
		t.Errorf("expected POINTED to be false")
	}
	lin, err := k.BlockProperty(h, kernel.LinealitySpace)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !lin.Equal(matrix(t, 2, []int64{0, 1})) {
		t.Errorf("lineality basis = %s, expected [0 1]", lin)
	}
}

func TestKernelOctantFacets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newKernel(t)
	h := mustCone(t, k, matrix(t, 3, []int64{1, 0, 0}, []int64{0, 1, 0}, []int64{0, 0, 1}))
	facets, err := k.BlockProperty(h, kernel.Facets)
	if err != nil {
		t.Fatal(err.Error())
	}
	want := matrix(t, 3, []int64{0, 0, 1}, []int64{0, 1, 0}, []int64{1, 0, 0})
	if !facets.Equal(want) {
		t.Errorf("octant facets = %s, expected %s", facets, want)
	}
	span, err := k.BlockProperty(h, kernel.LinearSpan)
	if err != nil {
		t.Fatal(err.Error())
	}
	if span.NumRows() != 0 {
		t.Errorf("full-dimensional cone with %d span rows", span.NumRows())
	}
}

func TestKernelRaysInFacets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newKernel(t)
	h := mustCone(t, k, matrix(t, 3, []int64{1, 0, 0}, []int64{0, 1, 0}, []int64{0, 0, 1}))
	inc, err := k.BlockProperty(h, kernel.RaysInFacets)
	if err != nil {
		t.Fatal(err.Error())
	}
	if inc.NumRows() != 3 || inc.NumCols() != 3 {
		t.Fatalf("incidence is %dx%d, expected 3x3", inc.NumRows(), inc.NumCols())
	}
	for i := 0; i < 3; i++ {
		ones := 0
		for j := 0; j < 3; j++ {
			if inc.At(i, j).Sign() != 0 {
				ones++
			}
		}
		if ones != 2 {
			t.Errorf("facet %d contains %d rays, expected 2", i, ones)
		}
	}
}

func TestKernelFacesOfDim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newKernel(t)
	h := mustCone(t, k, matrix(t, 3, []int64{1, 0, 0}, []int64{0, 1, 0}, []int64{0, 0, 1}))
	edges, err := k.FacesOfDim(h, 1)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(edges))
	}
	for _, face := range edges {
		if len(face) != 1 {
			t.Errorf("edge spanned by %d rays, expected 1", len(face))
		}
	}
	facets, err := k.FacesOfDim(h, 2)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(facets) != 3 {
		t.Errorf("expected 3 facet faces, got %d", len(facets))
	}
	bottom, err := k.FacesOfDim(h, 0)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(bottom) != 1 || len(bottom[0]) != 0 {
		t.Errorf("expected a single ray-less minimal face, got %v", bottom)
	}
}

func TestKernelFVector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newKernel(t)
	h := mustCone(t, k, matrix(t, 3, []int64{1, 0, 0}, []int64{0, 1, 0}, []int64{0, 0, 1}))
	fv, err := k.BlockProperty(h, kernel.FVector)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !fv.Equal(matrix(t, 2, []int64{3, 3})) {
		t.Errorf("octant f-vector = %s, expected [3 3]", fv)
	}
}

func TestKernelReducePrimitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newKernel(t)
	m := kernel.NewMatrix(2)
	if err := m.AppendRow([]*big.Rat{big.NewRat(2, 1), big.NewRat(4, 1)}); err != nil {
		t.Fatal(err.Error())
	}
	if err := m.AppendRow([]*big.Rat{big.NewRat(1, 2), big.NewRat(1, 3)}); err != nil {
		t.Fatal(err.Error())
	}
	red, err := k.ReducePrimitive(m)
	if err != nil {
		t.Fatal(err.Error())
	}
	want := matrix(t, 2, []int64{1, 2}, []int64{3, 2})
	if !red.Equal(want) {
		t.Errorf("reduced rows = %s, expected %s", red, want)
	}
}

func TestKernelIntegerScalarRejectsFractions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newKernel(t)
	m := kernel.NewMatrix(1)
	if err := m.AppendRow([]*big.Rat{big.NewRat(1, 2)}); err != nil {
		t.Fatal(err.Error())
	}
	if _, err := k.NewCone(kernel.ScalarInteger, m, kernel.NewMatrix(1)); !errors.Is(err, kernel.ErrBadInput) {
		t.Errorf("expected ErrBadInput for a fractional integer cone, got %v", err)
	}
}

func TestKernelUnknownProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newKernel(t)
	h := mustCone(t, k, matrix(t, 2, []int64{1, 0}))
	if _, err := k.IntProperty(h, "BOGUS"); !errors.Is(err, kernel.ErrUnknownProperty) {
		t.Errorf("expected ErrUnknownProperty, got %v", err)
	}
	// polytope-only blocks are unknown on cones
	if _, err := k.BlockProperty(h, kernel.Vertices); !errors.Is(err, kernel.ErrUnknownProperty) {
		t.Errorf("expected ErrUnknownProperty for VERTICES on a cone, got %v", err)
	}
}
