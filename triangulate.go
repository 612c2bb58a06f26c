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
	"time"
)

// Triangulate splits every polygon with more than three sides into a fan of
// triangles around its first corner. The polygon record is reused for the
// first triangle. Boundary loops are left alone.
func (m *Mesh) Triangulate() error {
	start := time.Now()
	if err := m.usable(); err != nil {
		return err
	}
	for _, f := range m.Faces() {
		if f.Degree() > 3 {
			m.triangulateFace(f)
		}
	}
	return m.finishPass("triangulate", start, nil)
}

func (m *Mesh) triangulateFace(f *Face) {
	hs := cycle(f.halfedge)
	n := len(hs)
	u0 := hs[0].vertex

	// Diagonal k runs between u_k+2 and u_0.
	outs := make([]*Halfedge, n-3) // u_k+2 to u_0
	ins := make([]*Halfedge, n-3)  // u_0 to u_k+2
	tris := make([]*Face, n-2)
	tris[0] = f
	for k := range outs {
		d := m.NewEdge()
		outs[k] = m.NewHalfedge()
		ins[k] = m.NewHalfedge()
		d.halfedge = outs[k]
		outs[k].twin, ins[k].twin = ins[k], outs[k]
		outs[k].edge, ins[k].edge = d, d
		outs[k].vertex = hs[k+2].vertex
		ins[k].vertex = u0
		tris[k+1] = m.NewFace(false)
	}

	link := func(face *Face, a, b, c *Halfedge) {
		a.next, b.next, c.next = b, c, a
		a.face, b.face, c.face = face, face, face
		face.halfedge = a
	}
	link(tris[0], hs[0], hs[1], outs[0])
	for k := 1; k < n-3; k++ {
		link(tris[k], ins[k-1], hs[k+1], outs[k])
	}
	link(tris[n-3], ins[n-4], hs[n-2], hs[n-1])
}
