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

// SplitEdge inserts a vertex at the midpoint of e and connects it to the
// opposite corner of each triangle beside e. A boundary side only gains the
// new vertex. The new vertex is returned with IsNew set; the two edges to the
// opposite corners have IsNew set, the halves of e keep the flag of e.
//
// SplitEdge declines when a non-boundary side of e is not a triangle, or
// when both sides are boundary loops.
func (m *Mesh) SplitEdge(e *Edge) (*Vertex, error) {
	v, err := m.splitEdge(e)
	return v, m.finish("split-edge", err)
}

func (m *Mesh) splitEdge(e *Edge) (*Vertex, error) {
	const op = "split-edge"
	if err := m.checkEdge(op, e); err != nil {
		return nil, err
	}
	h := e.halfedge
	if h.face.boundary {
		h = h.twin
	}
	t := h.twin
	f1, f2 := h.face, t.face
	switch {
	case f1.boundary:
		return nil, decline(op, "both sides are boundary loops")
	case f1.Degree() != 3:
		return nil, decline(op, "face is not a triangle")
	case !f2.boundary && f2.Degree() != 3:
		return nil, decline(op, "face is not a triangle")
	}

	// f1 is a, b, c and f2 is b, a, d.
	h1, h2 := h.next, h.next.next

	mv := m.NewVertex()
	mv.Pos = e.Center()
	mv.IsNew = true

	e2 := m.NewEdge()
	e2.IsNew = e.IsNew
	hm := m.NewHalfedge()
	tm := m.NewHalfedge()

	// Halves of e: a-m carried by h and tm, m-b by hm and t.
	hm.vertex, hm.edge, hm.twin = mv, e2, t
	tm.vertex, tm.edge, tm.twin = mv, e, h
	h.twin = tm
	t.twin = hm
	t.edge = e2
	e.halfedge = h
	e2.halfedge = hm
	mv.halfedge = tm

	// Branch to c across f1.
	ex := m.NewEdge()
	ex.IsNew = true
	x := m.NewHalfedge()
	xt := m.NewHalfedge()
	g1 := m.NewFace(false)
	x.SetNeighbors(h2, xt, mv, ex, f1)
	xt.SetNeighbors(hm, x, h2.vertex, ex, g1)
	h.next = x
	hm.next = h1
	hm.face = g1
	h1.next = xt
	h1.face = g1
	ex.halfedge = x
	f1.halfedge = h
	g1.halfedge = hm

	if f2.boundary {
		tm.next = t.next
		tm.face = f2
		t.next = tm
		return mv, nil
	}

	// Branch to d across f2.
	t1, t2 := t.next, t.next.next
	ey := m.NewEdge()
	ey.IsNew = true
	y := m.NewHalfedge()
	yt := m.NewHalfedge()
	g2 := m.NewFace(false)
	y.SetNeighbors(tm, yt, t2.vertex, ey, g2)
	yt.SetNeighbors(t2, y, mv, ey, f2)
	tm.next = t1
	tm.face = g2
	t1.next = y
	t1.face = g2
	t.next = yt
	ey.halfedge = yt
	f2.halfedge = t
	g2.halfedge = tm
	return mv, nil
}
