package polyhedra

import (
	"fmt"

	"github.com/npillmayer/polyhedra/kernel"
)

// Builder incrementally stages generators and finalizes them into a cone or
// polyhedron. Staging performs no kernel calls; the backing object is
// constructed once, when Cone or Polyhedron is called.
//
// It is illegal to continue adding generators after the builder completed an
// object, but the completing call may be repeated.
//
// The empty instance is not usable; create builders with NewBuilder.
type Builder[S Scalar] struct {
	kern      kernel.Kernel
	points    []PointVector[S]
	rays      []RayVector[S]
	lineality []RayVector[S]
	ambient   int
	done      bool
}

// NewBuilder creates a new and empty builder over the given kernel.
func NewBuilder[S Scalar](k kernel.Kernel) *Builder[S] {
	return &Builder[S]{kern: k}
}

// AddPoint stages a point generator. Points only contribute to polyhedra;
// completing with Cone rejects staged points.
func (b *Builder[S]) AddPoint(p PointVector[S]) error {
	if err := b.stage(len(p)); err != nil {
		return err
	}
	b.points = append(b.points, NewPointVector(p))
	return nil
}

// AddRay stages a ray generator.
func (b *Builder[S]) AddRay(r RayVector[S]) error {
	if err := b.stage(len(r)); err != nil {
		return err
	}
	b.rays = append(b.rays, NewRayVector(r))
	return nil
}

// AddLineality stages a lineality generator.
func (b *Builder[S]) AddLineality(l RayVector[S]) error {
	if err := b.stage(len(l)); err != nil {
		return err
	}
	b.lineality = append(b.lineality, NewRayVector(l))
	return nil
}

func (b *Builder[S]) stage(dim int) error {
	if b == nil || b.kern == nil {
		return fmt.Errorf("%w: builder without kernel", ErrArgument)
	}
	if b.done {
		return ErrCompleted
	}
	if dim == 0 {
		return fmt.Errorf("%w: empty generator", ErrArgument)
	}
	if b.ambient == 0 {
		b.ambient = dim
	} else if dim != b.ambient {
		return fmt.Errorf("%w: generator of dimension %d, want %d", ErrArgument, dim, b.ambient)
	}
	return nil
}

// Cone completes the build as a cone over the staged rays and lineality
// generators. Staged points are rejected.
func (b *Builder[S]) Cone() (*Cone[S], error) {
	if len(b.points) > 0 {
		return nil, fmt.Errorf("%w: cone build with staged points", ErrArgument)
	}
	c, err := NewCone(b.kern, b.rays, b.lineality)
	if err != nil {
		return nil, err
	}
	b.done = true
	tracer().Debugf("builder completed a cone in dimension %d", b.ambient)
	return c, nil
}

// Polyhedron completes the build as a polyhedron over the staged points,
// rays and lineality generators.
func (b *Builder[S]) Polyhedron() (*Polyhedron[S], error) {
	p, err := NewPolyhedron(b.kern, b.points, b.rays, b.lineality)
	if err != nil {
		return nil, err
	}
	b.done = true
	tracer().Debugf("builder completed a polyhedron in dimension %d", b.ambient)
	return p, nil
}

// Reset drops the staged generators and prepares the builder for a fresh
// build.
func (b *Builder[S]) Reset() {
	b.points = nil
	b.rays = nil
	b.lineality = nil
	b.ambient = 0
	b.done = false
}
