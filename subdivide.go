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
	"fmt"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// SubdivisionScheme selects the position rules of Subdivide.
type SubdivisionScheme int

const (
	// SubdivisionLinear keeps the surface: vertices stay, edge and face
	// points are midpoints and centroids.
	SubdivisionLinear SubdivisionScheme = iota

	// SubdivisionCatmullClark applies the Catmull-Clark rules. The mesh
	// must be closed.
	SubdivisionCatmullClark
)

func (s SubdivisionScheme) String() string {
	switch s {
	case SubdivisionLinear:
		return "linear"
	case SubdivisionCatmullClark:
		return "catmull-clark"
	}
	return fmt.Sprintf("SubdivisionScheme(%d)", int(s))
}

// LinearSubdividePositions fills NewPos of every vertex, edge and face with
// its own position, its midpoint and its centroid respectively.
func (m *Mesh) LinearSubdividePositions() {
	for _, v := range m.Vertices() {
		v.NewPos = v.Pos
	}
	for _, e := range m.Edges() {
		e.NewPos = e.Center()
	}
	for _, f := range m.Faces() {
		f.NewPos = f.Center()
	}
}

// CatmullClarkSubdividePositions fills NewPos of every vertex, edge and face
// with its Catmull-Clark position. It returns ErrHasBoundary on open meshes.
func (m *Mesh) CatmullClarkSubdividePositions() error {
	if m.numBoundaries > 0 {
		return ErrHasBoundary
	}

	// Face points are centroids.
	for _, f := range m.Faces() {
		f.NewPos = f.Center()
	}

	// Edge points average the two face points.
	for _, e := range m.Edges() {
		h := e.halfedge
		e.NewPos = r3.Scale(0.5, r3.Add(h.face.NewPos, h.twin.face.NewPos))
	}

	// Vertex points are (Q + 2R + (n-3)S) / n, where Q averages the face
	// points and R the edge points around the vertex.
	for _, v := range m.Vertices() {
		var q, r r3.Vec
		hs := fan(v.halfedge)
		n := float64(len(hs))
		for _, h := range hs {
			q = r3.Add(q, h.face.NewPos)
			r = r3.Add(r, h.edge.NewPos)
		}
		q = r3.Scale(1/n, q)
		r = r3.Scale(1/n, r)
		p := r3.Add(q, r3.Scale(2, r))
		p = r3.Add(p, r3.Scale(n-3, v.Pos))
		v.NewPos = r3.Scale(1/n, p)
	}
	return nil
}

// Subdivide computes new positions with scheme and replaces every polygon
// by one quad per corner, joining the face point, the incoming edge point,
// the vertex point and the outgoing edge point. The mesh is rebuilt, so
// every old record is erased.
func (m *Mesh) Subdivide(scheme SubdivisionScheme) error {
	start := time.Now()
	if err := m.usable(); err != nil {
		return err
	}
	switch scheme {
	case SubdivisionLinear:
		m.LinearSubdividePositions()
	case SubdivisionCatmullClark:
		if err := m.CatmullClarkSubdividePositions(); err != nil {
			return m.finishPass(scheme.String(), start, fmt.Errorf("meshedit: %s: %w", scheme, err))
		}
	default:
		return fmt.Errorf("meshedit: unknown subdivision scheme %d", int(scheme))
	}

	vs, es, fs := m.Vertices(), m.Edges(), m.Faces()
	index := map[Element]int{}
	positions := make([]r3.Vec, 0, len(vs)+len(es)+len(fs))
	for _, v := range vs {
		index[v] = len(positions)
		positions = append(positions, v.NewPos)
	}
	for _, e := range es {
		index[e] = len(positions)
		positions = append(positions, e.NewPos)
	}
	for _, f := range fs {
		index[f] = len(positions)
		positions = append(positions, f.NewPos)
	}

	var quads [][]int
	for _, f := range fs {
		hs := cycle(f.halfedge)
		for i, h := range hs {
			in := hs[(i+len(hs)-1)%len(hs)]
			quads = append(quads, []int{index[f], index[in.edge], index[h.vertex], index[h.edge]})
		}
	}

	err := m.Rebuild(positions, quads)
	if err != nil {
		err = fmt.Errorf("meshedit: %s: %w", scheme, err)
	}
	return m.finishPass(scheme.String(), start, err)
}
