package polyhedra

import (
	"errors"
	"math/big"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPolyhedronUnitSquare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	p := unitSquare(t)
	if d, err := p.Dim(); err != nil || d != 2 {
		t.Errorf("Dim = %d, expected 2 (err %v)", d, err)
	}
	if a, err := p.AmbientDim(); err != nil || a != 2 {
		t.Errorf("AmbientDim = %d, expected 2 (err %v)", a, err)
	}
	if n, err := p.NVertices(); err != nil || n != 4 {
		t.Errorf("NVertices = %d, expected 4 (err %v)", n, err)
	}
	if n, err := p.NFacets(); err != nil || n != 4 {
		t.Errorf("NFacets = %d, expected 4 (err %v)", n, err)
	}
	if full, err := p.IsFullDimensional(); err != nil || !full {
		t.Errorf("expected the square to be full dimensional (err %v)", err)
	}
	if bounded, err := p.IsBounded(); err != nil || !bounded {
		t.Errorf("expected the square to be bounded (err %v)", err)
	}
	if p.Boundedness() != BoundedByConstruction {
		t.Errorf("expected BoundedByConstruction, got %d", p.Boundedness())
	}
}

func TestPolyhedronVertices(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	p := unitSquare(t)
	vertices, err := p.Vertices()
	if err != nil {
		t.Fatal(err.Error())
	}
	if vertices.Len() != 4 {
		t.Fatalf("expected 4 vertices, got %d", vertices.Len())
	}
	first, err := vertices.First()
	if err != nil {
		t.Fatal(err.Error())
	}
	if !rowEquals(first, 0, 0) {
		t.Errorf("first vertex = %s, expected (0 0)", first)
	}
	last, err := vertices.Last()
	if err != nil {
		t.Fatal(err.Error())
	}
	if !rowEquals(last, 1, 1) {
		t.Errorf("last vertex = %s, expected (1 1)", last)
	}
}

func TestPolyhedronFacets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	p := unitSquare(t)
	facets, err := p.Facets()
	if err != nil {
		t.Fatal(err.Error())
	}
	if facets.Len() != 4 {
		t.Fatalf("expected 4 facets, got %d", facets.Len())
	}
	one := big.NewRat(1, 1)
	err = facets.Each(func(i int, hs AffineHalfspace[*big.Rat]) error {
		// unit square facets: either a·x <= 0 or a·x <= 1
		b := hs.Bound()
		if b.Sign() != 0 && b.Cmp(one) != 0 {
			t.Errorf("facet %d has bound %s, expected 0 or 1", i, b.RatString())
		}
		return nil
	})
	if err != nil {
		t.Fatal(err.Error())
	}
}

func TestPolyhedronRecessionRays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newTestKernel(t)
	// half strip: conv{(0,0),(0,1)} + cone{(1,0)}
	p, err := NewPolyhedron(k,
		[]PointVector[*big.Rat]{qpoint(0, 0), qpoint(0, 1)},
		[]RayVector[*big.Rat]{qvec(1, 0)}, nil)
	if err != nil {
		t.Fatal(err.Error())
	}
	if p.Boundedness() != UnboundedByConstruction {
		t.Errorf("expected UnboundedByConstruction, got %d", p.Boundedness())
	}
	if bounded, err := p.IsBounded(); err != nil || bounded {
		t.Errorf("expected the half strip to be unbounded (err %v)", err)
	}
	far, err := p.RecessionRays()
	if err != nil {
		t.Fatal(err.Error())
	}
	if far.Len() != 1 {
		t.Fatalf("expected 1 recession ray, got %d", far.Len())
	}
	ray, err := far.First()
	if err != nil {
		t.Fatal(err.Error())
	}
	if !rowEquals(ray, 1, 0) {
		t.Errorf("recession ray = %s, expected (1 0)", ray)
	}
}

func TestPolyhedronAffineHull(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newTestKernel(t)
	// a segment on the line y = 1
	p, err := NewPolyhedronFromPoints(k, []PointVector[*big.Rat]{qpoint(0, 1), qpoint(2, 1)})
	if err != nil {
		t.Fatal(err.Error())
	}
	if d, err := p.Dim(); err != nil || d != 1 {
		t.Errorf("Dim = %d, expected 1 (err %v)", d, err)
	}
	hull, err := p.AffineHull()
	if err != nil {
		t.Fatal(err.Error())
	}
	if hull.Len() != 1 {
		t.Fatalf("expected affine hull of 1 hyperplane, got %d", hull.Len())
	}
	hp, err := hull.First()
	if err != nil {
		t.Fatal(err.Error())
	}
	// the hyperplane {x : a·x = b} must contain both points
	a := hp.Normal()
	b := hp.Bound()
	for _, pt := range []PointVector[*big.Rat]{qpoint(0, 1), qpoint(2, 1)} {
		dot := new(big.Rat)
		tmp := new(big.Rat)
		for j := range a {
			dot.Add(dot, tmp.Mul(a[j], pt[j]))
		}
		if dot.Cmp(b) != 0 {
			t.Errorf("point %s violates the affine hull %s", pt, hp)
		}
	}
}

func TestPolyhedronSinglePoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newTestKernel(t)
	p, err := NewPolyhedronFromPoints(k, []PointVector[*big.Rat]{qpoint(3, 4)})
	if err != nil {
		t.Fatal(err.Error())
	}
	if d, err := p.Dim(); err != nil || d != 0 {
		t.Errorf("Dim = %d, expected 0 (err %v)", d, err)
	}
	if n, err := p.NVertices(); err != nil || n != 1 {
		t.Errorf("NVertices = %d, expected 1 (err %v)", n, err)
	}
	// the far hyperplane cut is no facet of the point
	if n, err := p.NFacets(); err != nil || n != 0 {
		t.Errorf("NFacets = %d, expected 0 (err %v)", n, err)
	}
}

func TestPolyhedronNeedsPoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k := newTestKernel(t)
	_, err := NewPolyhedron(k, nil, []RayVector[*big.Rat]{qvec(1, 0)}, nil)
	if !errors.Is(err, ErrArgument) {
		t.Errorf("expected ErrArgument for a polyhedron without points, got %v", err)
	}
}

func TestPolyhedronVerticesInFacets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	p := unitSquare(t)
	facets, err := p.Facets()
	if err != nil {
		t.Fatal(err.Error())
	}
	inc, err := facets.Incidence()
	if err != nil {
		t.Fatal(err.Error())
	}
	if inc.NumRows() != 4 || inc.NumCols() != 4 {
		t.Fatalf("incidence is %dx%d, expected 4x4", inc.NumRows(), inc.NumCols())
	}
	for i := 0; i < inc.NumRows(); i++ {
		count := 0
		for j := 0; j < inc.NumCols(); j++ {
			if inc.At(i, j) {
				count++
			}
		}
		if count != 2 {
			t.Errorf("facet %d contains %d vertices, expected 2", i+1, count)
		}
	}
}
