// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package meshedit

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// singularDet is the determinant below which the optimal-point system is
// treated as singular.
const singularDet = 1e-5

// FaceQuadric returns the 4x4 error quadric of the plane of f: the outer
// product of (N, d) with itself, where N is the unit normal of f and
// d = -N·center(f).
func FaceQuadric(f *Face) *mat.SymDense {
	n := f.Normal()
	d := -r3.Dot(n, f.Center())
	var q mat.SymDense
	q.SymOuterK(1, mat.NewVecDense(4, []float64{n.X, n.Y, n.Z, d}))
	return &q
}

// VertexQuadric returns the sum of the quadrics of the polygons around v.
// Quadrics are looked up in faces and computed on a miss.
func VertexQuadric(v *Vertex, faces map[*Face]*mat.SymDense) *mat.SymDense {
	q := mat.NewSymDense(4, nil)
	for _, h := range fan(v.halfedge) {
		if h.face.boundary {
			continue
		}
		fq, ok := faces[h.face]
		if !ok {
			fq = FaceQuadric(h.face)
		}
		q.AddSym(q, fq)
	}
	return q
}

// EdgeRecord is a collapse candidate: the point that minimizes the summed
// quadric of the endpoints of Edge, and the error at that point.
type EdgeRecord struct {
	Edge    *Edge
	Optimal r3.Vec
	Cost    float64
}

// NewEdgeRecord evaluates e against the vertex quadrics in quadrics. When
// the 3x3 system of the summed quadric is singular the midpoint of e is
// used instead of the optimal point.
func NewEdgeRecord(e *Edge, quadrics map[*Vertex]*mat.SymDense) EdgeRecord {
	a, b := e.Vertices()
	var k mat.SymDense
	k.AddSym(quadrics[a], quadrics[b])

	p := optimalPoint(&k)
	if p == nil {
		c := e.Center()
		p = &c
	}
	x := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1})
	return EdgeRecord{
		Edge:    e,
		Optimal: *p,
		Cost:    mat.Inner(x, &k, x),
	}
}

// optimalPoint solves A x = -b for the upper-left 3x3 block A and last
// column b of k. It returns nil when A is singular.
func optimalPoint(k *mat.SymDense) *r3.Vec {
	a := k.SliceSym(0, 3)
	if math.Abs(mat.Det(a)) < singularDet {
		return nil
	}
	b := mat.NewVecDense(3, []float64{-k.At(0, 3), -k.At(1, 3), -k.At(2, 3)})
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil
	}
	return &r3.Vec{X: x.AtVec(0), Y: x.AtVec(1), Z: x.AtVec(2)}
}
