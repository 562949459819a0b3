package exact

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/npillmayer/polyhedra/kernel"
)

// Kernel is an in-process geometry kernel over exact rational arithmetic.
// It implements kernel.Kernel.
type Kernel struct {
	cfg    Config
	mu     sync.Mutex // guards handle minting
	nextID uint64
}

// New creates an exact kernel. The zero Config selects defaults.
func New(cfg Config) (*Kernel, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Kernel{cfg: cfg.normalized()}, nil
}

// object is a kernel-resident geometric object: the construction input plus
// a cache of every property computed so far. The cache belongs to the
// kernel; wrappers in the access layer only ever hold the handle.
type object struct {
	id       uint64
	kern     *Kernel
	scalar   string
	ambient  int // ambient dimension of the cone data (homogenized for polytopes)
	polytope bool

	genRays [][]*big.Rat // generator input, homogenized for polytopes
	genLin  [][]*big.Rat

	mu     sync.Mutex // serializes recomputation per handle
	ints   map[kernel.Property]int64
	bools  map[kernel.Property]bool
	blocks map[kernel.Property]kernel.Matrix
	faces  map[int][][]int // proper faces by quotient dimension
}

// ID returns the kernel-unique handle id.
func (o *object) ID() uint64 {
	return o.id
}

func (k *Kernel) object(h kernel.Handle) (*object, error) {
	o, ok := h.(*object)
	if !ok || o == nil || o.kern != k {
		return nil, kernel.ErrBadHandle
	}
	return o, nil
}

func (k *Kernel) mint(scalar string, ambient int, polytope bool, rays, lin [][]*big.Rat) *object {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.nextID++
	return &object{
		id:       k.nextID,
		kern:     k,
		scalar:   scalar,
		ambient:  ambient,
		polytope: polytope,
		genRays:  rays,
		genLin:   lin,
		ints:     make(map[kernel.Property]int64),
		bools:    make(map[kernel.Property]bool),
		blocks:   make(map[kernel.Property]kernel.Matrix),
	}
}

// TypeName reports the declared external type of a handle, e.g.
// "Cone<Rational>".
func (k *Kernel) TypeName(h kernel.Handle) (string, error) {
	o, err := k.object(h)
	if err != nil {
		return "", err
	}
	if o.polytope {
		return fmt.Sprintf("Polytope<%s>", o.scalar), nil
	}
	return fmt.Sprintf("Cone<%s>", o.scalar), nil
}

func validScalar(scalar string) bool {
	return scalar == kernel.ScalarRational || scalar == kernel.ScalarInteger
}

func checkIntegral(m kernel.Matrix) error {
	for i := 0; i < m.NumRows(); i++ {
		for j := 0; j < m.NumCols(); j++ {
			if !m.At(i, j).IsInt() {
				return fmt.Errorf("%w: non-integral entry for integer scalar", kernel.ErrBadInput)
			}
		}
	}
	return nil
}

// NewCone constructs a cone from generator rays and lineality generators.
func (k *Kernel) NewCone(scalar string, rays, lineality kernel.Matrix) (kernel.Handle, error) {
	if !validScalar(scalar) {
		return nil, fmt.Errorf("%w: unknown scalar %q", kernel.ErrBadInput, scalar)
	}
	ambient := rays.NumCols()
	if ambient == 0 {
		ambient = lineality.NumCols()
	}
	if ambient == 0 {
		return nil, fmt.Errorf("%w: no ambient dimension", kernel.ErrBadInput)
	}
	if rays.NumRows() > 0 && rays.NumCols() != ambient ||
		lineality.NumRows() > 0 && lineality.NumCols() != ambient {
		return nil, fmt.Errorf("%w: mixed ambient dimensions", kernel.ErrBadInput)
	}
	if scalar == kernel.ScalarInteger {
		if err := checkIntegral(rays); err != nil {
			return nil, err
		}
		if err := checkIntegral(lineality); err != nil {
			return nil, err
		}
	}
	o := k.mint(scalar, ambient, false, rays.Rows(), lineality.Rows())
	tracer().Debugf("exact: new cone #%d in dim %d, %d rays, %d lineality generators",
		o.id, ambient, rays.NumRows(), lineality.NumRows())
	return o, nil
}

// NewPolytope constructs a polyhedron from points, recession rays and
// lineality generators. Points are homogenized with a leading 1, rays and
// lineality with a leading 0, and the result is stored as a cone one
// dimension up.
func (k *Kernel) NewPolytope(scalar string, points, rays, lineality kernel.Matrix) (kernel.Handle, error) {
	if !validScalar(scalar) {
		return nil, fmt.Errorf("%w: unknown scalar %q", kernel.ErrBadInput, scalar)
	}
	if points.NumRows() == 0 {
		return nil, fmt.Errorf("%w: a polytope needs at least one point", kernel.ErrBadInput)
	}
	ambient := points.NumCols()
	if rays.NumRows() > 0 && rays.NumCols() != ambient ||
		lineality.NumRows() > 0 && lineality.NumCols() != ambient {
		return nil, fmt.Errorf("%w: mixed ambient dimensions", kernel.ErrBadInput)
	}
	if scalar == kernel.ScalarInteger {
		for _, m := range []kernel.Matrix{points, rays, lineality} {
			if err := checkIntegral(m); err != nil {
				return nil, err
			}
		}
	}
	homog := func(lead int64, rows [][]*big.Rat) [][]*big.Rat {
		out := make([][]*big.Rat, len(rows))
		for i, row := range rows {
			h := make([]*big.Rat, 0, len(row)+1)
			h = append(h, new(big.Rat).SetInt64(lead))
			h = append(h, row...)
			out[i] = h
		}
		return out
	}
	genRays := append(homog(1, points.Rows()), homog(0, rays.Rows())...)
	genLin := homog(0, lineality.Rows())
	o := k.mint(scalar, ambient+1, true, genRays, genLin)
	tracer().Debugf("exact: new polytope #%d in dim %d, %d points, %d rays",
		o.id, ambient, points.NumRows(), rays.NumRows())
	return o, nil
}

// ReducePrimitive scales every row of m to a primitive integral vector.
func (k *Kernel) ReducePrimitive(m kernel.Matrix) (kernel.Matrix, error) {
	out := kernel.NewMatrix(m.NumCols())
	for i := 0; i < m.NumRows(); i++ {
		if err := out.AppendRow(primitiveRow(m.Row(i))); err != nil {
			return kernel.Matrix{}, err
		}
	}
	return out, nil
}

// IntProperty answers a scalar-valued property.
func (k *Kernel) IntProperty(h kernel.Handle, p kernel.Property) (int64, error) {
	o, err := k.object(h)
	if err != nil {
		return 0, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if v, ok := o.ints[p]; ok {
		return v, nil
	}
	v, err := o.computeInt(p)
	if err != nil {
		return 0, err
	}
	o.ints[p] = v
	return v, nil
}

// BoolProperty answers a boolean property.
func (k *Kernel) BoolProperty(h kernel.Handle, p kernel.Property) (bool, error) {
	o, err := k.object(h)
	if err != nil {
		return false, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if v, ok := o.bools[p]; ok {
		return v, nil
	}
	v, err := o.computeBool(p)
	if err != nil {
		return false, err
	}
	o.bools[p] = v
	return v, nil
}

// BlockProperty answers a block property as a dense matrix.
func (k *Kernel) BlockProperty(h kernel.Handle, p kernel.Property) (kernel.Matrix, error) {
	o, err := k.object(h)
	if err != nil {
		return kernel.Matrix{}, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if m, ok := o.blocks[p]; ok {
		return m, nil
	}
	m, err := o.computeBlock(p)
	if err != nil {
		return kernel.Matrix{}, err
	}
	o.blocks[p] = m
	return m, nil
}

// FacesOfDim enumerates the proper faces of quotient dimension qdim.
func (k *Kernel) FacesOfDim(h kernel.Handle, qdim int) ([][]int, error) {
	o, err := k.object(h)
	if err != nil {
		return nil, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.ensureFaces(); err != nil {
		return nil, err
	}
	faces := o.faces[qdim]
	out := make([][]int, len(faces))
	for i, f := range faces {
		out[i] = append([]int(nil), f...)
	}
	return out, nil
}

// --- Property computation (o.mu held) ---------------------------------------

// ensureHRep computes and caches FACETS and LINEAR_SPAN via the double
// description of the dual cone.
func (o *object) ensureHRep() error {
	if _, ok := o.blocks[kernel.Facets]; ok {
		return nil
	}
	facets, span := dualDescription(o.genRays, o.genLin, o.ambient)
	fm, err := kernel.MatrixFromRows(facets, o.ambient)
	if err != nil {
		return err
	}
	sm, err := kernel.MatrixFromRows(span, o.ambient)
	if err != nil {
		return err
	}
	o.blocks[kernel.Facets] = fm
	o.blocks[kernel.LinearSpan] = sm
	tracer().Debugf("exact: object #%d has %d facets, linear span codim %d",
		o.id, fm.NumRows(), sm.NumRows())
	return nil
}

// ensureVRep computes and caches RAYS and LINEALITY_SPACE by dualizing the
// H-representation back. This canonicalizes the generator input: redundant
// generators disappear and implied lineality is detected.
func (o *object) ensureVRep() error {
	if _, ok := o.blocks[kernel.Rays]; ok {
		return nil
	}
	if err := o.ensureHRep(); err != nil {
		return err
	}
	facets := o.blocks[kernel.Facets]
	span := o.blocks[kernel.LinearSpan]
	rays, lin := dualDescription(facets.Rows(), span.Rows(), o.ambient)
	rm, err := kernel.MatrixFromRows(rays, o.ambient)
	if err != nil {
		return err
	}
	lm, err := kernel.MatrixFromRows(lin, o.ambient)
	if err != nil {
		return err
	}
	o.blocks[kernel.Rays] = rm
	o.blocks[kernel.LinealitySpace] = lm
	tracer().Debugf("exact: object #%d has %d extreme rays, lineality dim %d",
		o.id, rm.NumRows(), lm.NumRows())
	return nil
}

func (o *object) coneDim() (int, error) {
	if err := o.ensureHRep(); err != nil {
		return 0, err
	}
	return o.ambient - o.blocks[kernel.LinearSpan].NumRows(), nil
}

func (o *object) linealityDim() (int, error) {
	if err := o.ensureVRep(); err != nil {
		return 0, err
	}
	return o.blocks[kernel.LinealitySpace].NumRows(), nil
}

func (o *object) computeInt(p kernel.Property) (int64, error) {
	switch p {
	case kernel.ConeAmbient:
		return int64(o.ambient), nil
	case kernel.AmbientDim:
		if !o.polytope {
			return int64(o.ambient), nil
		}
		return int64(o.ambient - 1), nil
	case kernel.Dim:
		d, err := o.coneDim()
		if err != nil {
			return 0, err
		}
		if o.polytope {
			d--
		}
		return int64(d), nil
	case kernel.LinealityDim:
		d, err := o.linealityDim()
		if err != nil {
			return 0, err
		}
		return int64(d), nil
	case kernel.NRays:
		if err := o.ensureVRep(); err != nil {
			return 0, err
		}
		return int64(o.blocks[kernel.Rays].NumRows()), nil
	case kernel.NFacets:
		prop := kernel.Facets
		if o.polytope {
			prop = kernel.PolytopeFacets
		}
		m, err := o.computeBlockCached(prop)
		if err != nil {
			return 0, err
		}
		return int64(m.NumRows()), nil
	case kernel.NVertices:
		m, err := o.computeBlockCached(kernel.Vertices)
		if err != nil {
			return 0, err
		}
		return int64(m.NumRows()), nil
	}
	return 0, fmt.Errorf("%w: %s", kernel.ErrUnknownProperty, p)
}

func (o *object) computeBool(p kernel.Property) (bool, error) {
	switch p {
	case kernel.Pointed:
		d, err := o.linealityDim()
		if err != nil {
			return false, err
		}
		return d == 0, nil
	case kernel.FullDim:
		d, err := o.computeInt(kernel.Dim)
		if err != nil {
			return false, err
		}
		a, err := o.computeInt(kernel.AmbientDim)
		if err != nil {
			return false, err
		}
		return d == a, nil
	case kernel.IsBounded:
		if !o.polytope {
			return false, fmt.Errorf("%w: %s on a cone", kernel.ErrUnknownProperty, p)
		}
		far, err := o.computeBlockCached(kernel.FarRays)
		if err != nil {
			return false, err
		}
		ldim, err := o.linealityDim()
		if err != nil {
			return false, err
		}
		return far.NumRows() == 0 && ldim == 0, nil
	}
	return false, fmt.Errorf("%w: %s", kernel.ErrUnknownProperty, p)
}

// computeBlockCached is computeBlock with read-through caching, for use by
// other computations while o.mu is held.
func (o *object) computeBlockCached(p kernel.Property) (kernel.Matrix, error) {
	if m, ok := o.blocks[p]; ok {
		return m, nil
	}
	m, err := o.computeBlock(p)
	if err != nil {
		return kernel.Matrix{}, err
	}
	o.blocks[p] = m
	return m, nil
}

func (o *object) computeBlock(p kernel.Property) (kernel.Matrix, error) {
	switch p {
	case kernel.Rays, kernel.LinealitySpace:
		if err := o.ensureVRep(); err != nil {
			return kernel.Matrix{}, err
		}
		return o.blocks[p], nil
	case kernel.Facets, kernel.LinearSpan:
		if err := o.ensureHRep(); err != nil {
			return kernel.Matrix{}, err
		}
		return o.blocks[p], nil
	case kernel.RaysInFacets:
		return o.raysInFacets()
	case kernel.FVector:
		return o.fVector()
	case kernel.HilbertBasisGen:
		return o.hilbertBasis()
	case kernel.Vertices, kernel.FarRays, kernel.PolytopeFacets,
		kernel.AffineHull, kernel.VerticesInFacets:
		if !o.polytope {
			return kernel.Matrix{}, fmt.Errorf("%w: %s on a cone", kernel.ErrUnknownProperty, p)
		}
		return o.polytopeBlock(p)
	}
	return kernel.Matrix{}, fmt.Errorf("%w: %s", kernel.ErrUnknownProperty, p)
}

// raysInFacets is the 0/1 incidence of extreme rays (columns) in facets
// (rows).
func (o *object) raysInFacets() (kernel.Matrix, error) {
	if err := o.ensureVRep(); err != nil {
		return kernel.Matrix{}, err
	}
	facets := o.blocks[kernel.Facets].Rows()
	rays := o.blocks[kernel.Rays].Rows()
	inc := kernel.NewMatrix(len(rays))
	for _, f := range facets {
		row := make([]*big.Rat, len(rays))
		for i, r := range rays {
			row[i] = new(big.Rat)
			if ratDot(f, r).Sign() == 0 {
				row[i].SetInt64(1)
			}
		}
		if err := inc.AppendRow(row); err != nil {
			return kernel.Matrix{}, err
		}
	}
	return inc, nil
}
