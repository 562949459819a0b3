package polyhedra

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"
)

// FaceLattice is the Hasse diagram of the faces of a cone, from the minimal
// face up to the cone itself, as a directed graph with edges pointing from
// each face to the faces covering it (one dimension up, under containment
// of ray sets).
type FaceLattice struct {
	// Graph holds one FaceNode per face.
	Graph *simple.DirectedGraph
	// Levels groups the node ids by quotient dimension, ascending.
	Levels [][]int64
}

// FaceNode is one face of the lattice. It implements the gonum graph and
// DOT-encoding node interfaces.
type FaceNode struct {
	id int64
	// QDim is the face dimension in the quotient modulo the lineality space.
	QDim int
	// Rays are the indices into the cone's ray block spanning the face.
	Rays []int
}

// ID implements graph.Node.
func (n FaceNode) ID() int64 { return n.id }

// DOTID implements dot.Node.
func (n FaceNode) DOTID() string { return fmt.Sprintf("face%d", n.id) }

// Attributes implements encoding.Attributer.
func (n FaceNode) Attributes() []encoding.Attribute {
	rays := make([]string, len(n.Rays))
	for i, r := range n.Rays {
		rays[i] = fmt.Sprintf("%d", r)
	}
	return []encoding.Attribute{
		{Key: "label", Value: fmt.Sprintf("dim %d {%s}", n.QDim, strings.Join(rays, " "))},
		{Key: "shape", Value: "box"},
	}
}

// NewFaceLattice builds the face lattice of a cone from the kernel's face
// enumeration. Faces are identified by their ray index sets; the minimal
// face and the cone itself are included as bottom and top.
func NewFaceLattice[S Scalar](c *Cone[S]) (*FaceLattice, error) {
	dim, err := c.Dim()
	if err != nil {
		return nil, err
	}
	ldim, err := c.LinealityDim()
	if err != nil {
		return nil, err
	}
	nrays, err := c.NRays()
	if err != nil {
		return nil, err
	}
	qdim := dim - ldim

	fl := &FaceLattice{Graph: simple.NewDirectedGraph()}
	var id int64
	level := make([][]FaceNode, qdim+1)
	addNode := func(q int, rays []int) {
		n := FaceNode{id: id, QDim: q, Rays: rays}
		id++
		fl.Graph.AddNode(n)
		level[q] = append(level[q], n)
	}

	addNode(0, nil) // the minimal face is the lineality space, spanned by no extreme ray
	for q := 1; q < qdim; q++ {
		sets, err := c.kern.FacesOfDim(c.h, q)
		if err != nil {
			return nil, err
		}
		for _, s := range sets {
			addNode(q, s)
		}
	}
	if qdim > 0 {
		top := make([]int, nrays)
		for i := range top {
			top[i] = i
		}
		addNode(qdim, top)
	}

	for q := 0; q < qdim; q++ {
		for _, lo := range level[q] {
			for _, hi := range level[q+1] {
				if containsSorted(hi.Rays, lo.Rays) {
					fl.Graph.SetEdge(fl.Graph.NewEdge(lo, hi))
				}
			}
		}
	}
	for q := 0; q <= qdim; q++ {
		ids := make([]int64, len(level[q]))
		for i, n := range level[q] {
			ids[i] = n.id
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		fl.Levels = append(fl.Levels, ids)
	}
	return fl, nil
}

// Face returns the lattice node with the given id.
func (fl *FaceLattice) Face(id int64) (FaceNode, bool) {
	n := fl.Graph.Node(id)
	if n == nil {
		return FaceNode{}, false
	}
	fn, ok := n.(FaceNode)
	return fn, ok
}

// containsSorted reports whether the ascending index set sup contains sub.
func containsSorted(sup, sub []int) bool {
	i := 0
	for _, x := range sub {
		for i < len(sup) && sup[i] < x {
			i++
		}
		if i >= len(sup) || sup[i] != x {
			return false
		}
		i++
	}
	return true
}
