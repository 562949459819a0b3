package polyhedra

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/polyhedra/kernel"
)

// Cone is a typed wrapper over a kernel-held polyhedral cone. The wrapper
// owns nothing but the handle reference and its scalar domain tag; all
// derived state (rays, facets, lineality, …) lives in the kernel's cache.
// Wrappers are immutable after construction and freely shareable for reads.
type Cone[S Scalar] struct {
	kern   kernel.Kernel
	h      kernel.Handle
	domain ScalarDomain
}

// NewCone constructs a cone from generator rays and lineality generators.
// The generators need not be irredundant; the kernel canonicalizes them.
// At least one generator is required.
func NewCone[S Scalar](k kernel.Kernel, rays, lineality []RayVector[S]) (*Cone[S], error) {
	if len(rays)+len(lineality) == 0 {
		return nil, fmt.Errorf("%w: a cone needs at least one generator", ErrArgument)
	}
	dim := 0
	if len(rays) > 0 {
		dim = rays[0].Dim()
	} else {
		dim = lineality[0].Dim()
	}
	rm, err := rowsToKernel(rays, dim)
	if err != nil {
		return nil, err
	}
	lm, err := rowsToKernel(lineality, dim)
	if err != nil {
		return nil, err
	}
	h, err := k.NewCone(domainOf[S]().token(), rm, lm)
	if err != nil {
		return nil, err
	}
	return WrapCone[S](k, h)
}

// WrapCone wraps an existing kernel handle. The handle's scalar domain is
// detected from its declared type name, exactly once; a wrapper type S that
// contradicts the detected domain is rejected with ErrDomainMismatch.
func WrapCone[S Scalar](k kernel.Kernel, h kernel.Handle) (*Cone[S], error) {
	dom, err := DetectDomain(k, h)
	if err != nil {
		return nil, err
	}
	if dom != domainOf[S]() {
		return nil, fmt.Errorf("%w: handle is %s, wrapper wants %s",
			ErrDomainMismatch, dom, domainOf[S]())
	}
	return &Cone[S]{kern: k, h: h, domain: dom}, nil
}

// Handle returns the backing kernel handle.
func (c *Cone[S]) Handle() kernel.Handle { return c.h }

// Kernel returns the kernel that minted the backing handle.
func (c *Cone[S]) Kernel() kernel.Kernel { return c.kern }

// Domain reports the scalar domain, detected at construction.
func (c *Cone[S]) Domain() ScalarDomain { return c.domain }

func (c *Cone[S]) intProp(p kernel.Property) (int, error) {
	v, err := c.kern.IntProperty(c.h, p)
	return int(v), err
}

// Dim returns the dimension of the cone.
func (c *Cone[S]) Dim() (int, error) { return c.intProp(kernel.Dim) }

// AmbientDim returns the dimension of the ambient space.
func (c *Cone[S]) AmbientDim() (int, error) { return c.intProp(kernel.ConeAmbient) }

// Codim returns ambient dimension minus cone dimension.
func (c *Cone[S]) Codim() (int, error) {
	a, err := c.AmbientDim()
	if err != nil {
		return 0, err
	}
	d, err := c.Dim()
	if err != nil {
		return 0, err
	}
	return a - d, nil
}

// NRays returns the number of extreme rays (modulo lineality).
func (c *Cone[S]) NRays() (int, error) { return c.intProp(kernel.NRays) }

// NFacets returns the number of facets.
func (c *Cone[S]) NFacets() (int, error) { return c.intProp(kernel.NFacets) }

// LinealityDim returns the dimension of the lineality space.
func (c *Cone[S]) LinealityDim() (int, error) { return c.intProp(kernel.LinealityDim) }

// IsPointed reports whether the lineality space is trivial.
func (c *Cone[S]) IsPointed() (bool, error) {
	return c.kern.BoolProperty(c.h, kernel.Pointed)
}

// IsFullDimensional reports whether the cone spans the ambient space.
func (c *Cone[S]) IsFullDimensional() (bool, error) {
	return c.kern.BoolProperty(c.h, kernel.FullDim)
}

// Rays is a lazy view over the extreme rays. Element i is row i of the
// kernel's ray block.
func (c *Cone[S]) Rays() (*View[RayVector[S], S], error) {
	n, err := c.NRays()
	if err != nil {
		return nil, err
	}
	return newView[RayVector[S], S](c.kern, c.h, tagRays, n, c.vectorAt(kernel.Rays)), nil
}

// LinealitySpace is a lazy view over a basis of the lineality space.
func (c *Cone[S]) LinealitySpace() (*View[RayVector[S], S], error) {
	n, err := c.LinealityDim()
	if err != nil {
		return nil, err
	}
	return newView[RayVector[S], S](c.kern, c.h, tagLinealitySpace, n, c.vectorAt(kernel.LinealitySpace)), nil
}

// Facets is a lazy view over the facets as linear half-spaces. The kernel
// keeps facet rows in inward form f·x ≥ 0; the accessor negates row i into
// the outward normal of {x : a·x ≤ 0}.
func (c *Cone[S]) Facets() (*View[LinearHalfspace[S], S], error) {
	n, err := c.NFacets()
	if err != nil {
		return nil, err
	}
	at := func(i int) (LinearHalfspace[S], error) {
		var zero LinearHalfspace[S]
		row, err := c.blockRow(kernel.Facets, i)
		if err != nil {
			return zero, err
		}
		normal, err := scalarsFromRats[S](negatedRats(row))
		if err != nil {
			return zero, err
		}
		return NewLinearHalfspace(normal), nil
	}
	return newView[LinearHalfspace[S], S](c.kern, c.h, tagFacets, n, at), nil
}

// FacetsAsCones is a lazy view over the facets as sub-cones: element i is a
// new cone built from the rays incident with facet i plus the original
// lineality space. It shares the facet accessor identity with Facets, so
// both views expose one capability set.
func (c *Cone[S]) FacetsAsCones() (*View[*Cone[S], S], error) {
	n, err := c.NFacets()
	if err != nil {
		return nil, err
	}
	at := func(i int) (*Cone[S], error) {
		inc, err := c.kern.BlockProperty(c.h, kernel.RaysInFacets)
		if err != nil {
			return nil, err
		}
		var idx []int
		for j := 0; j < inc.NumCols(); j++ {
			if inc.At(i-1, j).Sign() != 0 {
				idx = append(idx, j)
			}
		}
		return c.subCone(idx)
	}
	return newView[*Cone[S], S](c.kern, c.h, tagFacets, n, at), nil
}

// Faces enumerates the faces of the given dimension as sub-cones.
//
// Requesting one dimension below the cone dimension returns the facet view
// verbatim. Any other dimension is adjusted for the lineality space: faces
// of dimension below the lineality dimension are vacuous, and Faces reports
// them as not applicable (ok false, no error) rather than failing.
func (c *Cone[S]) Faces(dim int) (view *View[*Cone[S], S], ok bool, err error) {
	d, err := c.Dim()
	if err != nil {
		return nil, false, err
	}
	if dim == d-1 {
		v, err := c.FacetsAsCones()
		return v, err == nil, err
	}
	ldim, err := c.LinealityDim()
	if err != nil {
		return nil, false, err
	}
	qdim := dim - ldim
	if qdim < 1 {
		return nil, false, nil
	}
	sets, err := c.kern.FacesOfDim(c.h, qdim)
	if err != nil {
		return nil, false, err
	}
	at := func(i int) (*Cone[S], error) {
		sets, err := c.kern.FacesOfDim(c.h, qdim)
		if err != nil {
			return nil, err
		}
		return c.subCone(sets[i-1])
	}
	return newView[*Cone[S], S](c.kern, c.h, tagFaceCones, len(sets), at), true, nil
}

// LinearSpan is a lazy view over the linear hull of the cone, as linear
// hyperplanes (the equations every point of the cone satisfies).
func (c *Cone[S]) LinearSpan() (*View[LinearHyperplane[S], S], error) {
	cd, err := c.Codim()
	if err != nil {
		return nil, err
	}
	at := func(i int) (LinearHyperplane[S], error) {
		var zero LinearHyperplane[S]
		row, err := c.blockRow(kernel.LinearSpan, i)
		if err != nil {
			return zero, err
		}
		normal, err := scalarsFromRats[S](negatedRats(row))
		if err != nil {
			return zero, err
		}
		return NewLinearHyperplane(normal), nil
	}
	return newView[LinearHyperplane[S], S](c.kern, c.h, tagLinearSpan, cd, at), nil
}

// HilbertBasis is a lazy view over the minimal generating set of the
// semigroup of lattice points of the cone. The cone must be pointed.
// Elements are lattice points; in the rational domain their coordinates are
// integral rationals.
func (c *Cone[S]) HilbertBasis() (*View[PointVector[S], S], error) {
	pointed, err := c.IsPointed()
	if err != nil {
		return nil, err
	}
	if !pointed {
		return nil, fmt.Errorf("%w: hilbert basis of a non-pointed cone", ErrArgument)
	}
	block, err := c.kern.BlockProperty(c.h, kernel.HilbertBasisGen)
	if err != nil {
		return nil, err
	}
	at := func(i int) (PointVector[S], error) {
		row, err := c.blockRow(kernel.HilbertBasisGen, i)
		if err != nil {
			return nil, err
		}
		return scalarsFromRats[S](row)
	}
	return newView[PointVector[S], S](c.kern, c.h, tagHilbertBasis, block.NumRows(), at), nil
}

// FVector returns the face counts by dimension, padded with LinealityDim
// leading zeros: faces of dimension below the lineality dimension are
// vacuous by convention.
func (c *Cone[S]) FVector() ([]int64, error) {
	ldim, err := c.LinealityDim()
	if err != nil {
		return nil, err
	}
	fv, err := c.kern.BlockProperty(c.h, kernel.FVector)
	if err != nil {
		return nil, err
	}
	out := make([]int64, ldim, ldim+fv.NumCols())
	for j := 0; j < fv.NumCols(); j++ {
		q := fv.At(0, j)
		assert(q.IsInt(), "face count is integral")
		out = append(out, q.Num().Int64())
	}
	return out, nil
}

// --- Accessor plumbing -------------------------------------------------------

// vectorAt is the generic single-row accessor for generator-shaped blocks.
func (c *Cone[S]) vectorAt(p kernel.Property) func(i int) (RayVector[S], error) {
	return func(i int) (RayVector[S], error) {
		row, err := c.blockRow(p, i)
		if err != nil {
			return nil, err
		}
		return scalarsFromRats[S](row)
	}
}

// blockRow is one kernel query: row i (1-based) of block p.
func (c *Cone[S]) blockRow(p kernel.Property, i int) ([]*big.Rat, error) {
	block, err := c.kern.BlockProperty(c.h, p)
	if err != nil {
		return nil, err
	}
	if i < 1 || i > block.NumRows() {
		return nil, fmt.Errorf("%w: row %d of %s", ErrIndexOutOfRange, i, p)
	}
	return block.Row(i - 1), nil
}

// subCone asks the kernel for a new cone over a subset of this cone's rays
// plus its lineality space.
func (c *Cone[S]) subCone(rayIdx []int) (*Cone[S], error) {
	rays, err := c.kern.BlockProperty(c.h, kernel.Rays)
	if err != nil {
		return nil, err
	}
	lin, err := c.kern.BlockProperty(c.h, kernel.LinealitySpace)
	if err != nil {
		return nil, err
	}
	sub := kernel.NewMatrix(rays.NumCols())
	for _, j := range rayIdx {
		if err := sub.AppendRow(rays.Row(j)); err != nil {
			return nil, err
		}
	}
	h, err := c.kern.NewCone(c.domain.token(), sub, lin)
	if err != nil {
		return nil, err
	}
	return WrapCone[S](c.kern, h)
}

// rowsToKernel packs role-typed vectors into a kernel matrix of dim columns.
func rowsToKernel[V ~[]S, S Scalar](rows []V, dim int) (kernel.Matrix, error) {
	m := kernel.NewMatrix(dim)
	for _, row := range rows {
		if len(row) != dim {
			return kernel.Matrix{}, fmt.Errorf("%w: generator of dimension %d, want %d",
				ErrArgument, len(row), dim)
		}
		if err := m.AppendRow(ratsFromScalars(row)); err != nil {
			return kernel.Matrix{}, err
		}
	}
	return m, nil
}

func negatedRats(row []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(row))
	for i, q := range row {
		out[i] = new(big.Rat).Neg(q)
	}
	return out
}
