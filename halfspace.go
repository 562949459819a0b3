package polyhedra

import "fmt"

// Half-spaces and hyperplanes are small immutable values over one scalar
// domain. The linear variants are the b = 0 specializations, exposed as
// distinct types rather than defaulted fields; Bound() is the uniform
// accessor shared by both variants. Normals are never normalized.

// LinearHalfspace is the set {x : a·x ≤ 0}.
type LinearHalfspace[S Scalar] struct {
	normal []S
}

// AffineHalfspace is the set {x : a·x ≤ b}.
type AffineHalfspace[S Scalar] struct {
	normal []S
	bound  S
}

// LinearHyperplane is the set {x : a·x = 0}.
type LinearHyperplane[S Scalar] struct {
	normal []S
}

// AffineHyperplane is the set {x : a·x = b}.
type AffineHyperplane[S Scalar] struct {
	normal []S
	bound  S
}

// NewLinearHalfspace creates {x : normal·x ≤ 0}. An empty normal is a
// programmer error.
func NewLinearHalfspace[S Scalar](normal []S) LinearHalfspace[S] {
	assert(len(normal) > 0, "empty half-space normal")
	return LinearHalfspace[S]{normal: copyScalars(normal)}
}

// NewAffineHalfspace creates {x : normal·x ≤ bound}.
func NewAffineHalfspace[S Scalar](normal []S, bound S) AffineHalfspace[S] {
	assert(len(normal) > 0, "empty half-space normal")
	r := ringFor[S]()
	b, err := r.fromRat(r.toRat(bound))
	assert(err == nil, "copy within one scalar domain cannot fail")
	return AffineHalfspace[S]{normal: copyScalars(normal), bound: b}
}

// NewLinearHyperplane creates {x : normal·x = 0}.
func NewLinearHyperplane[S Scalar](normal []S) LinearHyperplane[S] {
	assert(len(normal) > 0, "empty hyperplane normal")
	return LinearHyperplane[S]{normal: copyScalars(normal)}
}

// NewAffineHyperplane creates {x : normal·x = bound}.
func NewAffineHyperplane[S Scalar](normal []S, bound S) AffineHyperplane[S] {
	assert(len(normal) > 0, "empty hyperplane normal")
	r := ringFor[S]()
	b, err := r.fromRat(r.toRat(bound))
	assert(err == nil, "copy within one scalar domain cannot fail")
	return AffineHyperplane[S]{normal: copyScalars(normal), bound: b}
}

// Normal returns a copy of the normal vector a.
func (hs LinearHalfspace[S]) Normal() []S  { return copyScalars(hs.normal) }
func (hs AffineHalfspace[S]) Normal() []S  { return copyScalars(hs.normal) }
func (hp LinearHyperplane[S]) Normal() []S { return copyScalars(hp.normal) }
func (hp AffineHyperplane[S]) Normal() []S { return copyScalars(hp.normal) }

// Bound returns b of {x : a·x ≤ b}, i.e. the zero scalar for the linear
// variant.
func (hs LinearHalfspace[S]) Bound() S { return ringFor[S]().zero() }

// Bound returns b of {x : a·x ≤ b}.
func (hs AffineHalfspace[S]) Bound() S {
	r := ringFor[S]()
	b, err := r.fromRat(r.toRat(hs.bound))
	assert(err == nil, "copy within one scalar domain cannot fail")
	return b
}

// Bound returns the zero scalar for the linear variant.
func (hp LinearHyperplane[S]) Bound() S { return ringFor[S]().zero() }

// Bound returns b of {x : a·x = b}.
func (hp AffineHyperplane[S]) Bound() S {
	r := ringFor[S]()
	b, err := r.fromRat(r.toRat(hp.bound))
	assert(err == nil, "copy within one scalar domain cannot fail")
	return b
}

// Dim returns the ambient dimension.
func (hs LinearHalfspace[S]) Dim() int  { return len(hs.normal) }
func (hs AffineHalfspace[S]) Dim() int  { return len(hs.normal) }
func (hp LinearHyperplane[S]) Dim() int { return len(hp.normal) }
func (hp AffineHyperplane[S]) Dim() int { return len(hp.normal) }

// Domain reports the scalar domain.
func (hs LinearHalfspace[S]) Domain() ScalarDomain  { return domainOf[S]() }
func (hs AffineHalfspace[S]) Domain() ScalarDomain  { return domainOf[S]() }
func (hp LinearHyperplane[S]) Domain() ScalarDomain { return domainOf[S]() }
func (hp AffineHyperplane[S]) Domain() ScalarDomain { return domainOf[S]() }

// Equal is structural equality on the normal.
func (hs LinearHalfspace[S]) Equal(other LinearHalfspace[S]) bool {
	return equalScalars(hs.normal, other.normal)
}

// Equal is structural equality on (normal, bound).
func (hs AffineHalfspace[S]) Equal(other AffineHalfspace[S]) bool {
	return equalScalars(hs.normal, other.normal) && ringFor[S]().eq(hs.bound, other.bound)
}

// Equal is structural equality on the normal.
func (hp LinearHyperplane[S]) Equal(other LinearHyperplane[S]) bool {
	return equalScalars(hp.normal, other.normal)
}

// Equal is structural equality on (normal, bound).
func (hp AffineHyperplane[S]) Equal(other AffineHyperplane[S]) bool {
	return equalScalars(hp.normal, other.normal) && ringFor[S]().eq(hp.bound, other.bound)
}

func (hs LinearHalfspace[S]) String() string {
	return fmt.Sprintf("{x : a·x ≤ 0, a = %s}", scalarsString(hs.normal))
}

func (hs AffineHalfspace[S]) String() string {
	return fmt.Sprintf("{x : a·x ≤ %s, a = %s}", ringFor[S]().str(hs.bound), scalarsString(hs.normal))
}

func (hp LinearHyperplane[S]) String() string {
	return fmt.Sprintf("{x : a·x = 0, a = %s}", scalarsString(hp.normal))
}

func (hp AffineHyperplane[S]) String() string {
	return fmt.Sprintf("{x : a·x = %s, a = %s}", ringFor[S]().str(hp.bound), scalarsString(hp.normal))
}
