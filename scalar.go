package polyhedra

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/npillmayer/polyhedra/kernel"
)

// Scalar is the closed set of coordinate types this layer supports: exact
// rationals and exact integers.
type Scalar interface {
	*big.Rat | *big.Int
}

// ScalarDomain tags the numeric representation of coordinates. Every vector,
// half-space and object wrapper carries exactly one domain, fixed at
// construction.
type ScalarDomain int

const (
	// Rational is the exact rational domain (*big.Rat coordinates).
	Rational ScalarDomain = iota
	// Integer is the exact integer domain (*big.Int coordinates).
	Integer
)

func (d ScalarDomain) String() string {
	switch d {
	case Rational:
		return kernel.ScalarRational
	case Integer:
		return kernel.ScalarInteger
	}
	return fmt.Sprintf("ScalarDomain(%d)", int(d))
}

// token is the scalar name a kernel embeds in its type names.
func (d ScalarDomain) token() string {
	return d.String()
}

// ring bundles the arithmetic generic code needs over one scalar domain,
// analogous to a summary monoid: behavior travels with the type parameter
// instead of being probed at runtime.
type ring[S Scalar] struct {
	domain  ScalarDomain
	zero    func() S
	fromRat func(*big.Rat) (S, error)
	toRat   func(S) *big.Rat
	neg     func(S) S
	mul     func(S, S) S
	eq      func(S, S) bool
	isZero  func(S) bool
	str     func(S) string
}

// ringFor resolves the behavior bundle for S. The scalar set is closed, so
// resolution cannot fail.
func ringFor[S Scalar]() ring[S] {
	var probe S
	switch any(probe).(type) {
	case *big.Rat:
		return ring[S]{
			domain: Rational,
			zero:   func() S { return any(new(big.Rat)).(S) },
			fromRat: func(q *big.Rat) (S, error) {
				return any(new(big.Rat).Set(q)).(S), nil
			},
			toRat: func(s S) *big.Rat { return new(big.Rat).Set(any(s).(*big.Rat)) },
			neg:   func(s S) S { return any(new(big.Rat).Neg(any(s).(*big.Rat))).(S) },
			mul: func(a, b S) S {
				return any(new(big.Rat).Mul(any(a).(*big.Rat), any(b).(*big.Rat))).(S)
			},
			eq:     func(a, b S) bool { return any(a).(*big.Rat).Cmp(any(b).(*big.Rat)) == 0 },
			isZero: func(s S) bool { return any(s).(*big.Rat).Sign() == 0 },
			str:    func(s S) string { return any(s).(*big.Rat).RatString() },
		}
	case *big.Int:
		return ring[S]{
			domain: Integer,
			zero:   func() S { return any(new(big.Int)).(S) },
			fromRat: func(q *big.Rat) (S, error) {
				if !q.IsInt() {
					var zero S
					return zero, fmt.Errorf("%w: %s is not integral", ErrDomainMismatch, q.RatString())
				}
				return any(new(big.Int).Set(q.Num())).(S), nil
			},
			toRat: func(s S) *big.Rat { return new(big.Rat).SetInt(any(s).(*big.Int)) },
			neg:   func(s S) S { return any(new(big.Int).Neg(any(s).(*big.Int))).(S) },
			mul: func(a, b S) S {
				return any(new(big.Int).Mul(any(a).(*big.Int), any(b).(*big.Int))).(S)
			},
			eq:     func(a, b S) bool { return any(a).(*big.Int).Cmp(any(b).(*big.Int)) == 0 },
			isZero: func(s S) bool { return any(s).(*big.Int).Sign() == 0 },
			str:    func(s S) string { return any(s).(*big.Int).String() },
		}
	}
	panic("polyhedra: scalar outside the closed domain set")
}

// domainOf reports the scalar domain of the type parameter S.
func domainOf[S Scalar]() ScalarDomain {
	return ringFor[S]().domain
}

// Known owning-type name shapes. The scalar token is recovered by stripping
// fixed-length prefixes and the closing bracket.
const (
	coneNamePrefix     = "Cone<"
	polytopeNamePrefix = "Polytope<"
	typeNameSuffixLen  = 1 // ">"
)

var domainTable = map[string]ScalarDomain{
	kernel.ScalarRational: Rational,
	kernel.ScalarInteger:  Integer,
}

// DetectDomain determines the scalar domain of a kernel handle from its
// declared type name. Detection runs once per wrapper construction; the
// result is stored immutably on the wrapper.
func DetectDomain(k kernel.Kernel, h kernel.Handle) (ScalarDomain, error) {
	name, err := k.TypeName(h)
	if err != nil {
		return 0, err
	}
	return domainFromTypeName(name)
}

func domainFromTypeName(name string) (ScalarDomain, error) {
	var token string
	switch {
	case strings.HasPrefix(name, coneNamePrefix) && len(name) > len(coneNamePrefix)+typeNameSuffixLen:
		token = name[len(coneNamePrefix) : len(name)-typeNameSuffixLen]
	case strings.HasPrefix(name, polytopeNamePrefix) && len(name) > len(polytopeNamePrefix)+typeNameSuffixLen:
		token = name[len(polytopeNamePrefix) : len(name)-typeNameSuffixLen]
	default:
		return 0, fmt.Errorf("%w: type name %q", ErrUnknownDomain, name)
	}
	d, ok := domainTable[token]
	if !ok {
		tracer().Errorf("scalar token %q has no domain table entry", token)
		return 0, fmt.Errorf("%w: scalar token %q", ErrUnknownDomain, token)
	}
	return d, nil
}

// scalarsFromRats converts a kernel row into the scalar domain S.
func scalarsFromRats[S Scalar](row []*big.Rat) ([]S, error) {
	r := ringFor[S]()
	out := make([]S, len(row))
	for i, q := range row {
		s, err := r.fromRat(q)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// ratsFromScalars converts scalars into a kernel row.
func ratsFromScalars[S Scalar](row []S) []*big.Rat {
	r := ringFor[S]()
	out := make([]*big.Rat, len(row))
	for i, s := range row {
		out[i] = r.toRat(s)
	}
	return out
}
