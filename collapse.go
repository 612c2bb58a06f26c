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

// CollapseEdge merges the endpoints of e into one vertex at the midpoint of
// e and returns it. Triangles on either side of e disappear; larger
// polygons lose one side.
//
// CollapseEdge declines on boundary edges, when both endpoints lie on the
// boundary, when the result would not be a manifold (the link condition), or
// when a face would be left with fewer than three sides.
//
// Erased records stay linked until Commit or Validate; CollapseEdgeErase
// commits right away.
func (m *Mesh) CollapseEdge(e *Edge) (*Vertex, error) {
	v, err := m.collapseEdge(e)
	return v, m.finish("collapse-edge", err)
}

// CollapseEdgeErase is CollapseEdge followed by Commit.
func (m *Mesh) CollapseEdgeErase(e *Edge) (*Vertex, error) {
	v, err := m.collapseEdge(e)
	if err == nil {
		m.Commit()
	}
	return v, m.finish("collapse-edge", err)
}

// checkCollapseEdge returns the reason CollapseEdge would decline on e, or
// nil. It does not touch the mesh.
func (m *Mesh) checkCollapseEdge(e *Edge) error {
	const op = "collapse-edge"
	if err := m.checkEdge(op, e); err != nil {
		return err
	}
	h := e.halfedge
	t := h.twin
	v0, v1 := h.vertex, t.vertex
	f0, f1 := h.face, t.face

	switch {
	case e.OnBoundary():
		return decline(op, "edge is on the boundary")
	case v0.OnBoundary() && v1.OnBoundary():
		return decline(op, "both endpoints are on the boundary")
	case f0 == f1:
		return decline(op, "edge has the same face on both sides")
	}
	tri0 := f0.Degree() == 3
	tri1 := f1.Degree() == 3

	// Apexes of the triangles on either side lose an edge.
	apexes := map[*Vertex]bool{}
	for _, s := range []struct {
		tri  bool
		apex *Vertex
	}{
		{tri0, dst(h.next)},
		{tri1, dst(t.next)},
	} {
		if !s.tri {
			continue
		}
		if apexes[s.apex] {
			return decline(op, "both triangles share their apex")
		}
		apexes[s.apex] = true
		minDegree := 4
		if s.apex.OnBoundary() {
			minDegree = 3
		}
		if s.apex.Degree() < minDegree {
			return decline(op, "an apex would be left with too few edges")
		}
	}

	// Link condition: the common neighbours of v0 and v1 must be exactly
	// the apexes of the triangles on e.
	n0 := map[*Vertex]bool{}
	for _, x := range v0.Neighbors() {
		n0[x] = true
	}
	common := 0
	for _, x := range v1.Neighbors() {
		if !n0[x] {
			continue
		}
		if !apexes[x] {
			return decline(op, "endpoints share a neighbour off the edge")
		}
		common++
	}
	if common != len(apexes) {
		return decline(op, "endpoints do not share the triangle apexes")
	}

	minDegree := 3
	if v0.OnBoundary() || v1.OnBoundary() {
		minDegree = 2
	}
	if v0.Degree()+v1.Degree()-2-len(apexes) < minDegree {
		return decline(op, "merged vertex would have too few edges")
	}

	// No third face may contain both endpoints.
	for _, x := range fan(h) {
		g := x.face
		if g == f0 || g == f1 {
			continue
		}
		for _, y := range cycle(g.halfedge) {
			if y.vertex == v1 {
				return decline(op, "another face contains both endpoints")
			}
		}
	}
	return nil
}

func (m *Mesh) collapseEdge(e *Edge) (*Vertex, error) {
	if err := m.checkCollapseEdge(e); err != nil {
		return nil, err
	}
	h := e.halfedge
	t := h.twin
	v0, v1 := h.vertex, t.vertex
	f0, f1 := h.face, t.face
	tri0 := f0.Degree() == 3
	tri1 := f1.Degree() == 3

	fan0 := fan(h)
	fan1 := fan(t)
	mid := e.Center()

	if tri0 {
		hn, hnn := h.next, h.next.next
		a, b := hn.twin, hnn.twin
		a.twin, b.twin = b, a
		a.edge = hnn.edge
		hnn.edge.halfedge = b
		hnn.vertex.halfedge = a
		m.Erase(hn.edge)
		m.Erase(hn)
		m.Erase(hnn)
		m.Erase(f0)
	} else {
		prev(h).next = h.next
		f0.halfedge = h.next
	}
	if tri1 {
		tn, tnn := t.next, t.next.next
		a, b := tn.twin, tnn.twin
		a.twin, b.twin = b, a
		b.edge = tn.edge
		tn.edge.halfedge = a
		tnn.vertex.halfedge = a
		m.Erase(tnn.edge)
		m.Erase(tn)
		m.Erase(tnn)
		m.Erase(f1)
	} else {
		prev(t).next = t.next
		f1.halfedge = t.next
	}

	for _, x := range fan1 {
		if !x.erased {
			x.vertex = v0
		}
	}
	m.Erase(e)
	m.Erase(h)
	m.Erase(t)
	m.Erase(v1)

	v0.halfedge = nil
	for _, x := range append(fan0, fan1...) {
		if !x.erased {
			v0.halfedge = x
			break
		}
	}
	assert(v0.halfedge != nil)
	v0.Pos = mid
	return v0, nil
}

// CollapseFace shrinks f to a single new vertex at its centroid and returns
// that vertex. The faces around f each lose one side.
//
// CollapseFace declines on boundary faces, faces touching the boundary, and
// whenever the merge would create a degenerate or non-manifold result: a
// neighbouring triangle, a neighbour adjacent twice, a chord between two
// corners, or an outside vertex adjacent to two corners.
func (m *Mesh) CollapseFace(f *Face) (*Vertex, error) {
	v, err := m.collapseFace(f)
	return v, m.finish("collapse-face", err)
}

func (m *Mesh) collapseFace(f *Face) (*Vertex, error) {
	const op = "collapse-face"
	if err := m.checkFace(op, f); err != nil {
		return nil, err
	}
	if f.boundary {
		return nil, decline(op, "face is a boundary loop")
	}
	hs := cycle(f.halfedge)
	corners := map[*Vertex]bool{}
	for _, h := range hs {
		corners[h.vertex] = true
	}

	neighbors := map[*Face]bool{}
	outside := map[*Vertex]bool{}
	degree := 0
	for _, h := range hs {
		u := h.vertex
		if u.OnBoundary() {
			return nil, decline(op, "face touches the boundary")
		}
		g := h.twin.face
		if g.Degree() <= 3 {
			return nil, decline(op, "a neighbouring face is a triangle")
		}
		if neighbors[g] {
			return nil, decline(op, "a neighbouring face is adjacent twice")
		}
		neighbors[g] = true

		for _, x := range fan(h) {
			w := dst(x)
			if x == h || x.twin.next == h {
				continue
			}
			if corners[w] {
				return nil, decline(op, "a chord joins two corners")
			}
			if outside[w] {
				return nil, decline(op, "an outside vertex is adjacent to two corners")
			}
			outside[w] = true
			degree++
		}
	}
	if degree < 3 {
		return nil, decline(op, "collapsed vertex would have fewer than three edges")
	}

	var moved []*Halfedge
	for _, h := range hs {
		for _, x := range fan(h) {
			if x != h && x.twin.next != h {
				moved = append(moved, x)
			}
		}
	}

	c := m.NewVertex()
	c.Pos = f.Center()
	for _, h := range hs {
		g := h.twin.face
		nt := h.twin.next
		prev(h.twin).next = nt
		g.halfedge = nt
	}
	for _, x := range moved {
		x.vertex = c
	}
	c.halfedge = moved[0]
	for _, h := range hs {
		m.Erase(h.vertex)
		m.Erase(h.edge)
		m.Erase(h.twin)
		m.Erase(h)
	}
	m.Erase(f)
	return c, nil
}
