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

// FlipEdge rotates e counterclockwise within the union of its two faces:
// each endpoint of e moves one step forward along its face. The faces may be
// arbitrary polygons. The same edge record is returned.
//
// FlipEdge declines on boundary edges, on edges with the same face on both
// sides, when an endpoint would be left with fewer than two edges, or when
// the rotated edge would duplicate an existing one.
func (m *Mesh) FlipEdge(e *Edge) (*Edge, error) {
	e, err := m.flipEdge(e)
	return e, m.finish("flip-edge", err)
}

func (m *Mesh) flipEdge(e *Edge) (*Edge, error) {
	const op = "flip-edge"
	if err := m.checkEdge(op, e); err != nil {
		return nil, err
	}
	h := e.halfedge
	t := h.twin
	f1, f2 := h.face, t.face
	a, b := h.vertex, t.vertex
	h1, t1 := h.next, t.next
	c, d := dst(h1), dst(t1)

	switch {
	case e.OnBoundary():
		return nil, decline(op, "edge is on the boundary")
	case f1 == f2:
		return nil, decline(op, "edge has the same face on both sides")
	case a.Degree() <= 2 || b.Degree() <= 2:
		return nil, decline(op, "an endpoint would be left dangling")
	case c == d:
		return nil, decline(op, "faces share the opposite corner")
	}
	for _, x := range fan(h1.next) {
		if dst(x) == d {
			return nil, decline(op, "flipped edge already exists")
		}
	}

	hp, tp := prev(h), prev(t)

	// f1 becomes d, c, ..., a and f2 becomes c, d, ..., b.
	h.next = h1.next
	t.next = t1.next
	hp.next = t1
	tp.next = h1
	t1.next = h
	h1.next = t
	t1.face = f1
	h1.face = f2
	h.vertex = d
	t.vertex = c
	f1.halfedge = h
	f2.halfedge = t
	if a.halfedge == h {
		a.halfedge = t1
	}
	if b.halfedge == t {
		b.halfedge = h1
	}
	return e, nil
}
