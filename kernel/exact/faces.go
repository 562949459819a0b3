package exact

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/polyhedra/kernel"
)

// ensureFaces enumerates all proper faces of the object's cone data and
// groups them by quotient dimension (face dimension minus lineality
// dimension). A face is identified by the set of extreme rays it contains.
//
// Every proper face is an intersection of facets, so a breadth-first closure
// over "intersect with one more facet" starting from the facet ray sets
// reaches all of them, down to the minimal face at quotient dimension 0.
func (o *object) ensureFaces() error {
	if o.faces != nil {
		return nil
	}
	if err := o.ensureVRep(); err != nil {
		return err
	}
	rays := o.blocks[kernel.Rays].Rows()
	facets := o.blocks[kernel.Facets].Rows()
	lineality := o.blocks[kernel.LinealitySpace].Rows()
	ldim := len(lineality)

	facetSets := make([][]int, len(facets))
	for j, f := range facets {
		for i, r := range rays {
			if ratDot(f, r).Sign() == 0 {
				facetSets[j] = append(facetSets[j], i)
			}
		}
	}

	qdim := func(face []int) int {
		span := make([][]*big.Rat, 0, len(face)+ldim)
		for _, i := range face {
			span = append(span, rays[i])
		}
		span = append(span, lineality...)
		return rank(span, o.ambient) - ldim
	}

	seen := make(map[string][]int)
	var queue [][]int
	push := func(face []int) {
		key := faceKey(face)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = face
		queue = append(queue, face)
	}
	for _, fs := range facetSets {
		push(append([]int(nil), fs...))
	}
	for len(queue) > 0 {
		face := queue[0]
		queue = queue[1:]
		for _, fs := range facetSets {
			push(intersectSorted(face, fs))
		}
	}

	o.faces = make(map[int][][]int)
	for _, face := range seen {
		d := qdim(face)
		o.faces[d] = append(o.faces[d], face)
	}
	for d := range o.faces {
		fs := o.faces[d]
		sort.Slice(fs, func(i, j int) bool {
			return faceKey(fs[i]) < faceKey(fs[j])
		})
	}
	return nil
}

// fVector counts proper faces by quotient dimension, from 1 up to one below
// the cone's quotient dimension, as a single matrix row.
func (o *object) fVector() (kernel.Matrix, error) {
	if err := o.ensureFaces(); err != nil {
		return kernel.Matrix{}, err
	}
	dim, err := o.coneDim()
	if err != nil {
		return kernel.Matrix{}, err
	}
	ldim, err := o.linealityDim()
	if err != nil {
		return kernel.Matrix{}, err
	}
	q := dim - ldim
	n := q - 1
	if n < 0 {
		n = 0
	}
	fv := kernel.NewMatrix(n)
	row := make([]*big.Rat, n)
	for d := 1; d < q; d++ {
		row[d-1] = new(big.Rat).SetInt64(int64(len(o.faces[d])))
	}
	if err := fv.AppendRow(row); err != nil {
		return kernel.Matrix{}, err
	}
	return fv, nil
}

func faceKey(face []int) string {
	var sb strings.Builder
	for i, x := range face {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}
	return sb.String()
}

// intersectSorted intersects two ascending index sets.
func intersectSorted(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
