package polyhedra

import "github.com/npillmayer/polyhedra/kernel"

// accessorTag identifies the kernel query shape behind a view. The tag, not
// the element type, is the dispatch key for every bulk capability: several
// properties share one underlying accessor (facets as half-spaces and facets
// as sub-cones, for instance) and therefore one capability set.
//
// The set of tags is closed; capability lookup for a tag without a
// registered capability fails with ErrUnsupported.
type accessorTag int

const (
	tagRays accessorTag = iota
	tagFacets
	tagFaceCones
	tagLinealitySpace
	tagLinearSpan
	tagHilbertBasis
	tagVertices
	tagFarRays
	tagPolytopeFacets
	tagAffineHull
)

func (tag accessorTag) String() string {
	switch tag {
	case tagRays:
		return "rays"
	case tagFacets:
		return "facets"
	case tagFaceCones:
		return "faces"
	case tagLinealitySpace:
		return "lineality space"
	case tagLinearSpan:
		return "linear span"
	case tagHilbertBasis:
		return "hilbert basis"
	case tagVertices:
		return "vertices"
	case tagFarRays:
		return "recession rays"
	case tagPolytopeFacets:
		return "polytope facets"
	case tagAffineHull:
		return "affine hull"
	}
	return "unknown accessor"
}

// matrixForm classifies the native shape of a bulk block.
type matrixForm int

const (
	formGenerators matrixForm = iota + 1 // rows are raw coordinate vectors
	formLinearIneq                       // rows are inequality normals, no bound column
	formLinearEq                         // rows are equation normals, no bound column
	formAffineIneq                       // leading bound column, evaluates against (1, x)
	formAffineEq
)

// homogRole is the element role homogenization dispatches on: points take a
// leading 1, rays and other directions a leading 0.
type homogRole int

const (
	roleNone homogRole = iota
	rolePoint
	roleRay
)

// capability describes the bulk protocol of one accessor tag: where the
// whole block comes from, its native matrix form, the homogenization role of
// its rows, and the incidence block relating its elements to a generator
// set. Tags without an entry, or with a zero field, do not support the
// corresponding materialization and fail with ErrUnsupported.
type capability struct {
	block     kernel.Property // bulk block source; "" = no bulk capability
	form      matrixForm
	role      homogRole
	incidence kernel.Property // "" = no incidence capability
}

var capabilities = map[accessorTag]capability{
	tagRays:           {block: kernel.Rays, form: formGenerators, role: roleRay},
	tagFacets:         {block: kernel.Facets, form: formLinearIneq, incidence: kernel.RaysInFacets},
	tagFaceCones:      {},
	tagLinealitySpace: {block: kernel.LinealitySpace, form: formGenerators, role: roleRay},
	tagLinearSpan:     {block: kernel.LinearSpan, form: formLinearEq},
	tagHilbertBasis:   {block: kernel.HilbertBasisGen, form: formGenerators, role: rolePoint},
	tagVertices:       {block: kernel.Vertices, form: formGenerators, role: rolePoint},
	tagFarRays:        {block: kernel.FarRays, form: formGenerators, role: roleRay},
	tagPolytopeFacets: {block: kernel.PolytopeFacets, form: formAffineIneq, incidence: kernel.VerticesInFacets},
	tagAffineHull:     {block: kernel.AffineHull, form: formAffineEq},
}
