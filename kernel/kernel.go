package kernel

// Scalar tokens a kernel embeds in the declared type names of its handles.
// The access layer recovers an object's scalar domain from these tokens.
const (
	ScalarRational = "Rational"
	ScalarInteger  = "Integer"
)

// Property names a derived property of a kernel-held object. The set is
// closed; kernels answer ErrUnknownProperty for anything else.
type Property string

// Scalar and boolean properties.
const (
	Dim          Property = "DIM"
	ConeAmbient  Property = "CONE_AMBIENT_DIM"
	AmbientDim   Property = "AMBIENT_DIM"
	NRays        Property = "N_RAYS"
	NFacets      Property = "N_FACETS"
	NVertices    Property = "N_VERTICES"
	LinealityDim Property = "LINEALITY_DIM"
	Pointed      Property = "POINTED"
	FullDim      Property = "FULL_DIM"
	IsBounded    Property = "BOUNDED"
)

// Block properties, answered as matrices.
const (
	Rays             Property = "RAYS"
	Facets           Property = "FACETS"
	LinealitySpace   Property = "LINEALITY_SPACE"
	LinearSpan       Property = "LINEAR_SPAN"
	RaysInFacets     Property = "RAYS_IN_FACETS"
	HilbertBasisGen  Property = "HILBERT_BASIS_GENERATORS"
	FVector          Property = "F_VECTOR"
	Vertices         Property = "VERTICES"
	PolytopeFacets   Property = "POLYTOPE_FACETS"
	AffineHull       Property = "AFFINE_HULL"
	FarRays          Property = "FAR_RAYS"
	VerticesInFacets Property = "VERTICES_IN_FACETS"
)

// Handle is an opaque reference to a kernel-resident geometric object. The
// kernel owns the object's lifetime and its internal property cache; holders
// of a handle only ever read through the Kernel interface.
type Handle interface {
	ID() uint64
}

// Kernel is the capability interface a geometry kernel offers to the access
// layer. All calls are synchronous; a kernel either answers or fails, and it
// serializes recomputation of cached properties itself.
//
// Inequality rows are kept in homogeneous evaluation form: a row ρ of a facet
// block satisfies ρ·x ≥ 0 for every point x of the cone; affine rows evaluate
// against (1, x). Rays and basis rows are plain coordinate vectors.
type Kernel interface {
	// TypeName reports the declared external type of a handle, e.g.
	// "Cone<Rational>" or "Polytope<Integer>".
	TypeName(h Handle) (string, error)

	// IntProperty answers a scalar-valued property such as DIM or N_RAYS.
	IntProperty(h Handle, p Property) (int64, error)

	// BoolProperty answers a boolean property such as POINTED or BOUNDED.
	BoolProperty(h Handle, p Property) (bool, error)

	// BlockProperty answers a block property such as RAYS or FACETS as a
	// dense matrix. Incidence blocks use 0/1 entries.
	BlockProperty(h Handle, p Property) (Matrix, error)

	// FacesOfDim enumerates the proper faces whose dimension, taken in the
	// quotient modulo the lineality space, equals k. Each face is reported
	// as the set of indices into the RAYS block spanning it.
	FacesOfDim(h Handle, k int) ([][]int, error)

	// NewCone constructs a cone from generator rays and lineality generators.
	// scalar is one of the scalar tokens and becomes part of the handle's
	// declared type name.
	NewCone(scalar string, rays, lineality Matrix) (Handle, error)

	// NewPolytope constructs a polyhedron from points, recession rays and
	// lineality generators, homogenizing points with a leading 1 and
	// directions with a leading 0.
	NewPolytope(scalar string, points, rays, lineality Matrix) (Handle, error)

	// ReducePrimitive scales every row of m to a primitive integral vector:
	// coprime integer entries, direction preserved.
	ReducePrimitive(m Matrix) (Matrix, error)
}
