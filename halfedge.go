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

func assert(cond bool) {
	if !cond {
		panic("meshedit: assertion error")
	}
}

// dst returns the vertex h points to.
func dst(h *Halfedge) *Vertex {
	return h.twin.vertex
}

// prev returns the halfedge whose next is h, walking the face cycle of h.
func prev(h *Halfedge) *Halfedge {
	p := h
	for p.next != h {
		p = p.next
	}
	return p
}

// cycle returns the halfedges of the face cycle starting at h.
func cycle(h *Halfedge) []*Halfedge {
	var hs []*Halfedge
	e := h
	for {
		hs = append(hs, e)
		e = e.next
		if e == h {
			break
		}
	}
	return hs
}

// fan returns the halfedges leaving the origin of h, starting at h and
// rotating with twin.next.
func fan(h *Halfedge) []*Halfedge {
	var hs []*Halfedge
	e := h
	for {
		hs = append(hs, e)
		e = e.twin.next
		if e == h {
			break
		}
	}
	return hs
}

// The live* helpers report whether a handle is a non-nil, unerased record of m.
func (m *Mesh) liveVertex(v *Vertex) bool     { return v != nil && v.mesh == m && !v.erased }
func (m *Mesh) liveEdge(e *Edge) bool         { return e != nil && e.mesh == m && !e.erased }
func (m *Mesh) liveFace(f *Face) bool         { return f != nil && f.mesh == m && !f.erased }
func (m *Mesh) liveHalfedge(h *Halfedge) bool { return h != nil && h.mesh == m && !h.erased }

// Outgoing returns the halfedges leaving v.
func (v *Vertex) Outgoing() []*Halfedge {
	return fan(v.halfedge)
}

// Neighbors returns the vertices adjacent to v, in fan order.
func (v *Vertex) Neighbors() []*Vertex {
	hs := fan(v.halfedge)
	vs := make([]*Vertex, len(hs))
	for i, h := range hs {
		vs[i] = dst(h)
	}
	return vs
}

// Degree returns the number of edges incident to v.
func (v *Vertex) Degree() int {
	n := 0
	h := v.halfedge
	for {
		n++
		h = h.twin.next
		if h == v.halfedge {
			break
		}
	}
	return n
}

// OnBoundary reports whether v touches a boundary loop.
func (v *Vertex) OnBoundary() bool {
	h := v.halfedge
	for {
		if h.face.boundary {
			return true
		}
		h = h.twin.next
		if h == v.halfedge {
			break
		}
	}
	return false
}

// Vertices returns both endpoints of e.
func (e *Edge) Vertices() (*Vertex, *Vertex) {
	return e.halfedge.vertex, dst(e.halfedge)
}

// OnBoundary reports whether either side of e is a boundary loop.
func (e *Edge) OnBoundary() bool {
	return e.halfedge.face.boundary || e.halfedge.twin.face.boundary
}

// Halfedges returns the cycle of f, starting at its halfedge.
func (f *Face) Halfedges() []*Halfedge {
	return cycle(f.halfedge)
}

// Vertices returns the corners of f in cycle order.
func (f *Face) Vertices() []*Vertex {
	hs := cycle(f.halfedge)
	vs := make([]*Vertex, len(hs))
	for i, h := range hs {
		vs[i] = h.vertex
	}
	return vs
}

// Degree returns the number of sides of f.
func (f *Face) Degree() int {
	n := 0
	h := f.halfedge
	for {
		n++
		h = h.next
		if h == f.halfedge {
			break
		}
	}
	return n
}
