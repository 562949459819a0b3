package exact

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/polyhedra/kernel"
)

// Polytope blocks are derived from the homogenized cone data. Rays of the
// cone with a positive leading coordinate become vertices (scaled to leading
// 1 and dehomogenized), rays with leading 0 become recession rays, facets
// and the linear span carry over as affine rows evaluating against (1, x).
func (o *object) polytopeBlock(p kernel.Property) (kernel.Matrix, error) {
	switch p {
	case kernel.Vertices:
		return o.vertexBlock(true)
	case kernel.FarRays:
		return o.vertexBlock(false)
	case kernel.PolytopeFacets:
		if err := o.ensureVRep(); err != nil {
			return kernel.Matrix{}, err
		}
		rays := o.blocks[kernel.Rays].Rows()
		facets := kernel.NewMatrix(o.ambient)
		for _, f := range o.blocks[kernel.Facets].Rows() {
			// a facet without a vertex on it cuts only the far
			// hyperplane and is no face of the polytope
			withVertex := false
			for _, r := range rays {
				if r[0].Sign() > 0 && ratDot(f, r).Sign() == 0 {
					withVertex = true
					break
				}
			}
			if !withVertex {
				continue
			}
			if err := facets.AppendRow(f); err != nil {
				return kernel.Matrix{}, err
			}
		}
		return facets, nil
	case kernel.AffineHull:
		if err := o.ensureHRep(); err != nil {
			return kernel.Matrix{}, err
		}
		return o.blocks[kernel.LinearSpan], nil
	case kernel.VerticesInFacets:
		return o.verticesInFacets()
	}
	return kernel.Matrix{}, fmt.Errorf("%w: %s", kernel.ErrUnknownProperty, p)
}

// vertexBlock extracts the dehomogenized vertices (wantVertices) or the
// recession rays of a polytope from the canonical cone rays.
func (o *object) vertexBlock(wantVertices bool) (kernel.Matrix, error) {
	if err := o.ensureVRep(); err != nil {
		return kernel.Matrix{}, err
	}
	out := kernel.NewMatrix(o.ambient - 1)
	for _, r := range o.blocks[kernel.Rays].Rows() {
		lead := r[0]
		assert(lead.Sign() >= 0, "homogenized cone ray with negative leading coordinate")
		if wantVertices != (lead.Sign() > 0) {
			continue
		}
		row := r[1:]
		if wantVertices {
			inv := new(big.Rat).Inv(lead)
			row = copyRow(row)
			scaleRow(row, inv)
		}
		if err := out.AppendRow(row); err != nil {
			return kernel.Matrix{}, err
		}
	}
	return out, nil
}

// verticesInFacets is the 0/1 incidence of vertices (columns) in polytope
// facets (rows), evaluated on the homogenized vertex (1, v).
func (o *object) verticesInFacets() (kernel.Matrix, error) {
	facets, err := o.computeBlockCached(kernel.PolytopeFacets)
	if err != nil {
		return kernel.Matrix{}, err
	}
	vertices, err := o.computeBlockCached(kernel.Vertices)
	if err != nil {
		return kernel.Matrix{}, err
	}
	inc := kernel.NewMatrix(vertices.NumRows())
	one := big.NewRat(1, 1)
	for i := 0; i < facets.NumRows(); i++ {
		f := facets.Row(i)
		row := make([]*big.Rat, vertices.NumRows())
		for v := 0; v < vertices.NumRows(); v++ {
			hv := append([]*big.Rat{one}, vertices.Row(v)...)
			row[v] = new(big.Rat)
			if ratDot(f, hv).Sign() == 0 {
				row[v].SetInt64(1)
			}
		}
		if err := inc.AppendRow(row); err != nil {
			return kernel.Matrix{}, err
		}
	}
	return inc, nil
}
