package polyhedra

import "strings"

// PointVector is a mutable coordinate vector playing the role of a point.
// The role is part of the type: generic array algorithms keep points points
// and rays rays. Entries are indexed natively; Scale and Similar construct
// fresh vectors of the same role.
//
// Vectors are mutable and must not be shared across independent logical
// owners without copying.
type PointVector[S Scalar] []S

// RayVector is a mutable coordinate vector playing the role of a ray
// (or any other direction, e.g. a lineality generator).
type RayVector[S Scalar] []S

// NewPointVector creates a point from a raw coordinate sequence. The
// coordinates are deep-copied.
func NewPointVector[S Scalar](coords []S) PointVector[S] {
	return copyScalars(coords)
}

// NewRayVector creates a ray from a raw coordinate sequence. The
// coordinates are deep-copied.
func NewRayVector[S Scalar](coords []S) RayVector[S] {
	return copyScalars(coords)
}

// ZeroPointVector creates a zero-filled point of the given dimension.
func ZeroPointVector[S Scalar](dim int) PointVector[S] {
	return zeroScalars[S](dim)
}

// ZeroRayVector creates a zero-filled ray of the given dimension.
func ZeroRayVector[S Scalar](dim int) RayVector[S] {
	return zeroScalars[S](dim)
}

// Dim returns the ambient dimension of the point.
func (v PointVector[S]) Dim() int { return len(v) }

// Dim returns the ambient dimension of the ray.
func (v RayVector[S]) Dim() int { return len(v) }

// Domain reports the scalar domain of the coordinates.
func (v PointVector[S]) Domain() ScalarDomain { return domainOf[S]() }

// Domain reports the scalar domain of the coordinates.
func (v RayVector[S]) Domain() ScalarDomain { return domainOf[S]() }

// Similar creates a zero-filled point of dimension dim, for generic array
// algorithms that need a same-role result container.
func (v PointVector[S]) Similar(dim int) PointVector[S] {
	return zeroScalars[S](dim)
}

// Similar creates a zero-filled ray of dimension dim.
func (v RayVector[S]) Similar(dim int) RayVector[S] {
	return zeroScalars[S](dim)
}

// Scale returns c·v as a new point.
func (v PointVector[S]) Scale(c S) PointVector[S] {
	return scaleScalars(v, c)
}

// Scale returns c·v as a new ray.
func (v RayVector[S]) Scale(c S) RayVector[S] {
	return scaleScalars(v, c)
}

// Equal reports elementwise equality.
func (v PointVector[S]) Equal(w PointVector[S]) bool {
	return equalScalars(v, w)
}

// Equal reports elementwise equality.
func (v RayVector[S]) Equal(w RayVector[S]) bool {
	return equalScalars(v, w)
}

func (v PointVector[S]) String() string {
	return "point" + scalarsString(v)
}

func (v RayVector[S]) String() string {
	return "ray" + scalarsString(v)
}

// --- Shared coordinate helpers ----------------------------------------------

func copyScalars[S Scalar](coords []S) []S {
	r := ringFor[S]()
	cp := make([]S, len(coords))
	for i, c := range coords {
		s, err := r.fromRat(r.toRat(c))
		assert(err == nil, "copy within one scalar domain cannot fail")
		cp[i] = s
	}
	return cp
}

func zeroScalars[S Scalar](dim int) []S {
	r := ringFor[S]()
	out := make([]S, dim)
	for i := range out {
		out[i] = r.zero()
	}
	return out
}

func scaleScalars[S Scalar](v []S, c S) []S {
	r := ringFor[S]()
	out := make([]S, len(v))
	for i, s := range v {
		out[i] = r.mul(c, s)
	}
	return out
}

func equalScalars[S Scalar](v, w []S) bool {
	if len(v) != len(w) {
		return false
	}
	r := ringFor[S]()
	for i := range v {
		if !r.eq(v[i], w[i]) {
			return false
		}
	}
	return true
}

func scalarsString[S Scalar](v []S) string {
	r := ringFor[S]()
	var sb strings.Builder
	sb.WriteByte('(')
	for i, s := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.str(s))
	}
	sb.WriteByte(')')
	return sb.String()
}
