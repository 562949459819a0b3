package polyhedra

import (
	"errors"
	"math/big"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDomainFromTypeName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	d, err := domainFromTypeName("Cone<Rational>")
	if err != nil {
		t.Fatal(err.Error())
	}
	if d != Rational {
		t.Errorf("expected Rational domain, got %s", d)
	}
	d, err = domainFromTypeName("Polytope<Integer>")
	if err != nil {
		t.Fatal(err.Error())
	}
	if d != Integer {
		t.Errorf("expected Integer domain, got %s", d)
	}
}

func TestDomainFromTypeNameUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	for _, name := range []string{"Blob<Rational>", "Cone<Real>", "Cone<>", "Cone", ""} {
		if _, err := domainFromTypeName(name); !errors.Is(err, ErrUnknownDomain) {
			t.Errorf("type name %q: expected ErrUnknownDomain, got %v", name, err)
		}
	}
}

func TestDetectDomain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	c := octant(t)
	d, err := DetectDomain(c.Kernel(), c.Handle())
	if err != nil {
		t.Fatal(err.Error())
	}
	if d != Rational {
		t.Errorf("expected Rational domain, got %s", d)
	}
}

func TestWrapConeDomainMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	c := octant(t) // backed by a Cone<Rational> handle
	if _, err := WrapCone[*big.Int](c.Kernel(), c.Handle()); !errors.Is(err, ErrDomainMismatch) {
		t.Errorf("expected ErrDomainMismatch for integer wrapper, got %v", err)
	}
}

func TestIntegerScalarRejectsFraction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	_, err := scalarsFromRats[*big.Int]([]*big.Rat{big.NewRat(1, 2)})
	if !errors.Is(err, ErrDomainMismatch) {
		t.Errorf("expected ErrDomainMismatch for 1/2, got %v", err)
	}
}

func TestScalarDomainRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	r := ringFor[*big.Int]()
	s, err := r.fromRat(big.NewRat(42, 1))
	if err != nil {
		t.Fatal(err.Error())
	}
	if r.toRat(s).Cmp(big.NewRat(42, 1)) != 0 {
		t.Errorf("integer 42 did not survive the rat round trip")
	}
	if domainOf[*big.Rat]() != Rational || domainOf[*big.Int]() != Integer {
		t.Errorf("domainOf resolves the wrong domains")
	}
}
