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
	"gonum.org/v1/gonum/spatial/r3"
)

// TriangleList is a flat, indexed triangulation of a mesh, suitable for
// building an acceleration structure elsewhere.
type TriangleList struct {
	Positions []r3.Vec
	// Normals holds one area-weighted vertex normal per position.
	Normals []r3.Vec
	Indices [][3]int
}

// Triangles returns the vertices of m with their normals, and every polygon
// split into a fan of triangles around its first corner. m is not modified.
func (m *Mesh) Triangles() TriangleList {
	var t TriangleList
	index := map[*Vertex]int{}
	for _, v := range m.Vertices() {
		index[v] = len(t.Positions)
		t.Positions = append(t.Positions, v.Pos)
		t.Normals = append(t.Normals, v.Normal())
	}
	for _, f := range m.Faces() {
		vs := f.Vertices()
		for i := 1; i+1 < len(vs); i++ {
			t.Indices = append(t.Indices, [3]int{index[vs[0]], index[vs[i]], index[vs[i+1]]})
		}
	}
	return t
}

// InterpolateNormal blends the vertex normals of triangle tri at the
// barycentric coordinates (u, v), where u weighs the second corner and v
// the third, and returns the unit result.
func (t TriangleList) InterpolateNormal(tri int, u, v float64) r3.Vec {
	idx := t.Indices[tri]
	w := 1 - u - v
	n := r3.Scale(w, t.Normals[idx[0]])
	n = r3.Add(n, r3.Scale(u, t.Normals[idx[1]]))
	n = r3.Add(n, r3.Scale(v, t.Normals[idx[2]]))
	return unit(n)
}
