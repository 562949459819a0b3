package polyhedra

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/polyhedra/kernel"
)

// Materialization converts a view into dense matrix form through the bulk
// capability registered for its accessor tag. Whether a view supports a
// given matrix family is a function of the tag alone.

// Matrix materializes the whole block behind the view in its native form:
// coordinate rows for generator-shaped accessors, half-space-form rows for
// inequality and equation accessors. Inequality rows are the normal vectors
// of the view's half-space elements (a·x ≤ b), affine rows carry the negated
// bound in the leading column; this is the negation of the kernel's
// evaluation form. Ray-typed blocks in the integer domain are reduced to
// primitive vectors; rational blocks and point-typed integer blocks are
// reported as-is.
func (v *View[T, S]) Matrix() (Matrix[S], error) {
	cpb, err := v.bulk()
	if err != nil {
		return nil, err
	}
	km, err := v.kern.BlockProperty(v.h, cpb.block)
	if err != nil {
		return nil, err
	}
	if cpb.role == roleRay && domainOf[S]() == Integer {
		km, err = v.kern.ReducePrimitive(km)
		if err != nil {
			return nil, err
		}
	}
	m, err := negatedFromKernel[S](km, cpb.form)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// negatedFromKernel converts a kernel block into the scalar domain S,
// flipping the sign of inequality and equation rows so that the block agrees
// with the view's half-space and hyperplane elements.
func negatedFromKernel[S Scalar](km kernel.Matrix, form matrixForm) (Matrix[S], error) {
	m, err := matrixFromKernel[S](km)
	if err != nil {
		return nil, err
	}
	switch form {
	case formLinearIneq, formLinearEq, formAffineIneq, formAffineEq:
		r := ringFor[S]()
		for _, row := range m {
			for j, x := range row {
				row[j] = r.neg(x)
			}
		}
	}
	return m, nil
}

// LinearMatrix materializes the block as a linear inequality or equation
// matrix: rows are normals only, no bound column. An affine-shaped block
// converts only if its bound column is all-zero; otherwise LinearMatrix
// fails with ErrNotLinear.
func (v *View[T, S]) LinearMatrix() (Matrix[S], error) {
	cpb, err := v.bulk()
	if err != nil {
		return nil, err
	}
	switch cpb.form {
	case formLinearIneq, formLinearEq:
		return v.Matrix()
	case formAffineIneq, formAffineEq:
		m, err := v.Matrix()
		if err != nil {
			return nil, err
		}
		return ToLinear(m)
	}
	return nil, fmt.Errorf("%w: linear form matrix not defined for %s", ErrUnsupported, v.tag)
}

// AffineMatrix materializes the block as an affine inequality or equation
// matrix: the leading column is the bound, rows evaluate against (1, x).
// A linear-shaped block is homogenized with a zero bound column.
func (v *View[T, S]) AffineMatrix() (Matrix[S], error) {
	cpb, err := v.bulk()
	if err != nil {
		return nil, err
	}
	switch cpb.form {
	case formAffineIneq, formAffineEq:
		return v.Matrix()
	case formLinearIneq, formLinearEq:
		m, err := v.Matrix()
		if err != nil {
			return nil, err
		}
		return ToAffine(m), nil
	}
	return nil, fmt.Errorf("%w: affine form matrix not defined for %s", ErrUnsupported, v.tag)
}

// Homogenized materializes a generator-shaped block with a leading
// coordinate prepended to every row. Point-typed views homogenize only with
// leading value 1, ray-typed views only with 0; any other request fails
// with ErrHomogenization.
func (v *View[T, S]) Homogenized(leading int64) (Matrix[S], error) {
	cpb, err := v.bulk()
	if err != nil {
		return nil, err
	}
	if cpb.form != formGenerators {
		return nil, fmt.Errorf("%w: generator matrix not defined for %s", ErrUnsupported, v.tag)
	}
	var want int64
	switch cpb.role {
	case rolePoint:
		want = 1
	case roleRay:
		want = 0
	default:
		return nil, fmt.Errorf("%w: %s has no homogenization role", ErrUnsupported, v.tag)
	}
	if leading != want {
		return nil, fmt.Errorf("%w: leading value %d for %s (want %d)",
			ErrHomogenization, leading, v.tag, want)
	}
	m, err := v.Matrix()
	if err != nil {
		return nil, err
	}
	r := ringFor[S]()
	out := make(Matrix[S], len(m))
	for i, row := range m {
		lead, err := r.fromRat(big.NewRat(leading, 1))
		assert(err == nil, "integral homogenization value")
		h := make([]S, 0, len(row)+1)
		h = append(h, lead)
		h = append(h, row...)
		out[i] = h
	}
	return out, nil
}

// Incidence materializes the 0/1 incidence structure relating the view's
// elements (rows) to their generator set (columns), e.g. which rays border
// which facet. Accessors without incidence information fail with
// ErrUnsupported.
func (v *View[T, S]) Incidence() (IncidenceMatrix, error) {
	cpb, ok := capabilities[v.tag]
	if !ok || cpb.incidence == "" {
		return nil, fmt.Errorf("%w: incidence matrix not defined in this context (%s)",
			ErrUnsupported, v.tag)
	}
	km, err := v.kern.BlockProperty(v.h, cpb.incidence)
	if err != nil {
		return nil, err
	}
	return incidenceFromKernel(km), nil
}

func (v *View[T, S]) bulk() (capability, error) {
	cpb, ok := capabilities[v.tag]
	if !ok || cpb.block == "" {
		return capability{}, fmt.Errorf("%w: bulk matrix not defined in this context (%s)",
			ErrUnsupported, v.tag)
	}
	return cpb, nil
}

// ToAffine converts a linear-form matrix to affine form by homogenizing
// every row with a zero bound column.
func ToAffine[S Scalar](m Matrix[S]) Matrix[S] {
	r := ringFor[S]()
	out := make(Matrix[S], len(m))
	for i, row := range m {
		h := make([]S, 0, len(row)+1)
		h = append(h, r.zero())
		h = append(h, copyScalars(row)...)
		out[i] = h
	}
	return out
}

// ToLinear converts an affine-form matrix to linear form by dropping the
// leading bound column. The set must already be linear: if any leading
// entry is non-zero, ToLinear fails with ErrNotLinear.
func ToLinear[S Scalar](m Matrix[S]) (Matrix[S], error) {
	r := ringFor[S]()
	out := make(Matrix[S], len(m))
	for i, row := range m {
		assert(len(row) > 0, "affine row without bound column")
		if !r.isZero(row[0]) {
			return nil, fmt.Errorf("%w: row %d has bound %s", ErrNotLinear, i+1, r.str(row[0]))
		}
		out[i] = copyScalars(row[1:])
	}
	return out, nil
}
