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

func (m *Mesh) checkVertex(op string, v *Vertex) error {
	if err := m.usable(); err != nil {
		return err
	}
	if !m.liveVertex(v) {
		return decline(op, "vertex is erased or foreign")
	}
	return nil
}

func (m *Mesh) checkEdge(op string, e *Edge) error {
	if err := m.usable(); err != nil {
		return err
	}
	if !m.liveEdge(e) {
		return decline(op, "edge is erased or foreign")
	}
	return nil
}

func (m *Mesh) checkFace(op string, f *Face) error {
	if err := m.usable(); err != nil {
		return err
	}
	if !m.liveFace(f) {
		return decline(op, "face is erased or foreign")
	}
	return nil
}

// EraseVertex removes the interior vertex v and its incident edges, merging
// the faces around v into one, which is returned.
//
// EraseVertex declines on boundary vertices, when a neighbour would be left
// with fewer than two edges, or when two of the faces around v also share
// an edge away from v.
func (m *Mesh) EraseVertex(v *Vertex) (*Face, error) {
	f, err := m.eraseVertex(v)
	return f, m.finish("erase-vertex", err)
}

func (m *Mesh) eraseVertex(v *Vertex) (*Face, error) {
	const op = "erase-vertex"
	if err := m.checkVertex(op, v); err != nil {
		return nil, err
	}
	if v.OnBoundary() {
		return nil, decline(op, "vertex is on the boundary")
	}

	hs := fan(v.halfedge)
	k := len(hs)
	faces := map[*Face]bool{}
	neighbors := map[*Vertex]bool{}
	for _, h := range hs {
		a := dst(h)
		if a.Degree() <= 2 {
			return nil, decline(op, "a neighbour would be left dangling")
		}
		if neighbors[a] {
			return nil, decline(op, "vertex is joined twice to a neighbour")
		}
		neighbors[a] = true
		if faces[h.face] {
			return nil, decline(op, "a face touches the vertex twice")
		}
		faces[h.face] = true
	}

	// The middle of face i runs from hs[i].next up to the halfedge entering
	// hs[i-1].twin, i.e. everything not incident to v.
	lasts := make([]*Halfedge, k)
	middle := map[*Halfedge]bool{}
	var middles []*Halfedge
	for i, h := range hs {
		in := hs[(i+k-1)%k].twin
		for x := h.next; x != in; x = x.next {
			middle[x] = true
			middles = append(middles, x)
			lasts[i] = x
		}
		if lasts[i] == nil {
			return nil, decline(op, "degenerate face around the vertex")
		}
	}
	for _, x := range middles {
		if middle[x.twin] {
			return nil, decline(op, "two faces around the vertex share an edge")
		}
	}
	if len(middles) < 3 {
		return nil, decline(op, "merged face would have fewer than three sides")
	}

	f := hs[0].face
	for i, last := range lasts {
		last.next = hs[(i+k-1)%k].next
	}
	for _, x := range middles {
		x.face = f
	}
	f.halfedge = hs[0].next
	for _, h := range hs {
		dst(h).halfedge = h.next
	}
	for i, h := range hs {
		if i > 0 {
			m.Erase(h.face)
		}
		m.Erase(h.edge)
		m.Erase(h.twin)
		m.Erase(h)
	}
	m.Erase(v)
	return f, nil
}

// EraseEdge removes e and merges the two faces on its sides into one, which
// is returned.
//
// EraseEdge declines on boundary edges, on edges with the same face on both
// sides, when an endpoint would be left with fewer than two edges, or when
// the two faces share another edge.
func (m *Mesh) EraseEdge(e *Edge) (*Face, error) {
	f, err := m.eraseEdge(e)
	return f, m.finish("erase-edge", err)
}

func (m *Mesh) eraseEdge(e *Edge) (*Face, error) {
	const op = "erase-edge"
	if err := m.checkEdge(op, e); err != nil {
		return nil, err
	}
	h := e.halfedge
	t := h.twin
	f1, f2 := h.face, t.face
	a, b := h.vertex, t.vertex
	switch {
	case e.OnBoundary():
		return nil, decline(op, "edge is on the boundary")
	case f1 == f2:
		return nil, decline(op, "edge has the same face on both sides")
	case a.Degree() < 3 || b.Degree() < 3:
		return nil, decline(op, "an endpoint would be left dangling")
	}
	for x := h.next; x != h; x = x.next {
		if x.twin.face == f2 {
			return nil, decline(op, "faces share another edge")
		}
	}

	hp, hn := prev(h), h.next
	tp, tn := prev(t), t.next
	moved := cycle(tn)[:f2.Degree()-1]

	hp.next = tn
	tp.next = hn
	for _, x := range moved {
		x.face = f1
	}
	f1.halfedge = hn
	a.halfedge = tn
	b.halfedge = hn

	m.Erase(f2)
	m.Erase(e)
	m.Erase(h)
	m.Erase(t)
	return f1, nil
}
