package polyhedra

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/polyhedra/kernel"
)

// Boundedness is the construction-time boundedness tag of a polyhedron. It
// is set exactly once and never changed by later recomputation; queries on
// an UnknownBound polyhedron fall through to the kernel.
type Boundedness int

const (
	// UnknownBound marks a polyhedron of unknown provenance.
	UnknownBound Boundedness = iota
	// BoundedByConstruction marks a polyhedron built from points only.
	BoundedByConstruction
	// UnboundedByConstruction marks a polyhedron built with a non-zero
	// recession ray or lineality generator.
	UnboundedByConstruction
)

// Polyhedron is a typed wrapper over a kernel-held polyhedron: the convex
// hull of points plus a recession cone. Like Cone it owns only the handle
// reference, the scalar domain tag and the boundedness tag.
type Polyhedron[S Scalar] struct {
	kern    kernel.Kernel
	h       kernel.Handle
	domain  ScalarDomain
	bounded Boundedness
}

// NewPolyhedronFromPoints constructs the convex hull of points.
func NewPolyhedronFromPoints[S Scalar](k kernel.Kernel, points []PointVector[S]) (*Polyhedron[S], error) {
	return NewPolyhedron(k, points, nil, nil)
}

// NewPolyhedron constructs conv(points) + cone(rays) + span(lineality). The
// kernel homogenizes points with a leading 1 and directions with a leading
// 0. At least one point is required.
func NewPolyhedron[S Scalar](k kernel.Kernel, points []PointVector[S],
	rays, lineality []RayVector[S]) (*Polyhedron[S], error) {
	//
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: a polyhedron needs at least one point", ErrArgument)
	}
	dim := points[0].Dim()
	pm, err := rowsToKernel(points, dim)
	if err != nil {
		return nil, err
	}
	rm, err := rowsToKernel(rays, dim)
	if err != nil {
		return nil, err
	}
	lm, err := rowsToKernel(lineality, dim)
	if err != nil {
		return nil, err
	}
	h, err := k.NewPolytope(domainOf[S]().token(), pm, rm, lm)
	if err != nil {
		return nil, err
	}
	p, err := WrapPolyhedron[S](k, h)
	if err != nil {
		return nil, err
	}
	p.bounded = BoundedByConstruction
	if hasNonzeroRow(rays) || hasNonzeroRow(lineality) {
		p.bounded = UnboundedByConstruction
	}
	return p, nil
}

// WrapPolyhedron wraps an existing kernel handle, detecting its scalar
// domain from the declared type name. The boundedness tag stays unknown.
func WrapPolyhedron[S Scalar](k kernel.Kernel, h kernel.Handle) (*Polyhedron[S], error) {
	dom, err := DetectDomain(k, h)
	if err != nil {
		return nil, err
	}
	if dom != domainOf[S]() {
		return nil, fmt.Errorf("%w: handle is %s, wrapper wants %s",
			ErrDomainMismatch, dom, domainOf[S]())
	}
	return &Polyhedron[S]{kern: k, h: h, domain: dom, bounded: UnknownBound}, nil
}

// Handle returns the backing kernel handle.
func (p *Polyhedron[S]) Handle() kernel.Handle { return p.h }

// Domain reports the scalar domain, detected at construction.
func (p *Polyhedron[S]) Domain() ScalarDomain { return p.domain }

// Boundedness returns the construction-time boundedness tag.
func (p *Polyhedron[S]) Boundedness() Boundedness { return p.bounded }

func (p *Polyhedron[S]) intProp(prop kernel.Property) (int, error) {
	v, err := p.kern.IntProperty(p.h, prop)
	return int(v), err
}

// Dim returns the dimension of the polyhedron.
func (p *Polyhedron[S]) Dim() (int, error) { return p.intProp(kernel.Dim) }

// AmbientDim returns the dimension of the ambient space.
func (p *Polyhedron[S]) AmbientDim() (int, error) { return p.intProp(kernel.AmbientDim) }

// NVertices returns the number of vertices.
func (p *Polyhedron[S]) NVertices() (int, error) { return p.intProp(kernel.NVertices) }

// NFacets returns the number of facets.
func (p *Polyhedron[S]) NFacets() (int, error) { return p.intProp(kernel.NFacets) }

// IsFullDimensional reports whether the polyhedron spans the ambient space.
func (p *Polyhedron[S]) IsFullDimensional() (bool, error) {
	return p.kern.BoolProperty(p.h, kernel.FullDim)
}

// IsBounded reports boundedness. The construction-time tag answers when it
// is decisive; otherwise the kernel is consulted.
func (p *Polyhedron[S]) IsBounded() (bool, error) {
	switch p.bounded {
	case BoundedByConstruction:
		return true, nil
	case UnboundedByConstruction:
		return false, nil
	}
	return p.kern.BoolProperty(p.h, kernel.IsBounded)
}

// Vertices is a lazy view over the vertices, dehomogenized to points of the
// ambient space.
func (p *Polyhedron[S]) Vertices() (*View[PointVector[S], S], error) {
	n, err := p.NVertices()
	if err != nil {
		return nil, err
	}
	at := func(i int) (PointVector[S], error) {
		row, err := p.blockRow(kernel.Vertices, i)
		if err != nil {
			return nil, err
		}
		return scalarsFromRats[S](row)
	}
	return newView[PointVector[S], S](p.kern, p.h, tagVertices, n, at), nil
}

// RecessionRays is a lazy view over the rays of the recession cone (the far
// rays of the polyhedron).
func (p *Polyhedron[S]) RecessionRays() (*View[RayVector[S], S], error) {
	far, err := p.kern.BlockProperty(p.h, kernel.FarRays)
	if err != nil {
		return nil, err
	}
	at := func(i int) (RayVector[S], error) {
		row, err := p.blockRow(kernel.FarRays, i)
		if err != nil {
			return nil, err
		}
		return scalarsFromRats[S](row)
	}
	return newView[RayVector[S], S](p.kern, p.h, tagFarRays, far.NumRows(), at), nil
}

// Facets is a lazy view over the facets as affine half-spaces. Kernel rows
// (b, a) evaluate as b + a·x ≥ 0; the accessor wraps row i into the
// half-space {x : (−a)·x ≤ b}.
func (p *Polyhedron[S]) Facets() (*View[AffineHalfspace[S], S], error) {
	n, err := p.NFacets()
	if err != nil {
		return nil, err
	}
	at := func(i int) (AffineHalfspace[S], error) {
		var zero AffineHalfspace[S]
		row, err := p.blockRow(kernel.PolytopeFacets, i)
		if err != nil {
			return zero, err
		}
		normal, err := scalarsFromRats[S](negatedRats(row[1:]))
		if err != nil {
			return zero, err
		}
		bound, err := ringFor[S]().fromRat(row[0])
		if err != nil {
			return zero, err
		}
		return NewAffineHalfspace(normal, bound), nil
	}
	return newView[AffineHalfspace[S], S](p.kern, p.h, tagPolytopeFacets, n, at), nil
}

// AffineHull is a lazy view over the affine hull as affine hyperplanes.
func (p *Polyhedron[S]) AffineHull() (*View[AffineHyperplane[S], S], error) {
	hull, err := p.kern.BlockProperty(p.h, kernel.AffineHull)
	if err != nil {
		return nil, err
	}
	at := func(i int) (AffineHyperplane[S], error) {
		var zero AffineHyperplane[S]
		row, err := p.blockRow(kernel.AffineHull, i)
		if err != nil {
			return zero, err
		}
		normal, err := scalarsFromRats[S](negatedRats(row[1:]))
		if err != nil {
			return zero, err
		}
		bound, err := ringFor[S]().fromRat(row[0])
		if err != nil {
			return zero, err
		}
		return NewAffineHyperplane(normal, bound), nil
	}
	return newView[AffineHyperplane[S], S](p.kern, p.h, tagAffineHull, hull.NumRows(), at), nil
}

func (p *Polyhedron[S]) blockRow(prop kernel.Property, i int) ([]*big.Rat, error) {
	block, err := p.kern.BlockProperty(p.h, prop)
	if err != nil {
		return nil, err
	}
	if i < 1 || i > block.NumRows() {
		return nil, fmt.Errorf("%w: row %d of %s", ErrIndexOutOfRange, i, prop)
	}
	return block.Row(i - 1), nil
}

func hasNonzeroRow[V ~[]S, S Scalar](rows []V) bool {
	r := ringFor[S]()
	for _, row := range rows {
		for _, s := range row {
			if !r.isZero(s) {
				return true
			}
		}
	}
	return false
}
