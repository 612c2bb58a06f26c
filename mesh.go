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

// Package meshedit edits polygon meshes stored as half-edge structures.
//
// A Mesh owns vertices, edges, halfedges and faces. Local operators
// (EraseVertex, CollapseEdge, FlipEdge, SplitEdge, BevelFace, ...) change
// the connectivity around one record and either succeed or decline without
// touching anything. Global passes (Triangulate, Subdivide, LoopSubdivide,
// IsotropicRemesh, Simplify) are built on top of them.
package meshedit

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Element is implemented by the four record kinds of a Mesh.
type Element interface {
	ID() uint32
	Erased() bool
	erase()
}

// Vertex is a mesh vertex. Its halfedge is any halfedge leaving it.
type Vertex struct {
	// Pos is the current position.
	Pos r3.Vec
	// NewPos is scratch space used by subdivision.
	NewPos r3.Vec
	// IsNew marks vertices created by the current Loop subdivision.
	IsNew bool

	halfedge *Halfedge

	succ, pred *Vertex
	mesh       *Mesh
	id         uint32
	erased     bool
}

// Edge is an undirected edge, represented by one of its two halfedges.
type Edge struct {
	NewPos r3.Vec
	IsNew  bool

	halfedge *Halfedge

	succ, pred *Edge
	mesh       *Mesh
	id         uint32
	erased     bool
}

// Halfedge is a directed side of an edge. It leaves Vertex and runs along
// Face; Next is the following halfedge of the same face cycle.
type Halfedge struct {
	next   *Halfedge
	twin   *Halfedge
	vertex *Vertex
	edge   *Edge
	face   *Face

	succ, pred *Halfedge
	mesh       *Mesh
	id         uint32
	erased     bool
}

// Face is a polygon, or a boundary loop when IsBoundary reports true.
type Face struct {
	NewPos r3.Vec

	halfedge *Halfedge
	boundary bool

	succ, pred *Face
	mesh       *Mesh
	id         uint32
	erased     bool
}

// Mesh owns every record of a half-edge mesh. Records live in circular
// doubly-linked lists with sentinel heads, in insertion order.
//
// A Mesh must not be edited from more than one goroutine at a time.
type Mesh struct {
	// FlipOrientation negates the normal offset of BevelFacePositions.
	FlipOrientation bool

	vHead Vertex
	eHead Edge
	hHead Halfedge
	fHead Face

	lastID uint32

	numVertices   int
	numEdges      int
	numHalfedges  int
	numFaces      int
	numBoundaries int

	// pending counts erased records not yet unlinked.
	pending int

	corrupt  error
	observer Observer
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	m := &Mesh{}
	m.init()
	return m
}

func (m *Mesh) init() {
	m.vHead.succ, m.vHead.pred = &m.vHead, &m.vHead
	m.eHead.succ, m.eHead.pred = &m.eHead, &m.eHead
	m.hHead.succ, m.hHead.pred = &m.hHead, &m.hHead
	m.fHead.succ, m.fHead.pred = &m.fHead, &m.fHead
}

func (m *Mesh) nextID() uint32 {
	m.lastID++
	return m.lastID
}

// NewVertex appends a zero-initialized vertex.
func (m *Mesh) NewVertex() *Vertex {
	v := &Vertex{mesh: m, id: m.nextID()}

	// insert in circular doubly-linked list before vHead
	vPrev := m.vHead.pred
	v.pred = vPrev
	vPrev.succ = v
	v.succ = &m.vHead
	m.vHead.pred = v

	m.numVertices++
	return v
}

// NewEdge appends a zero-initialized edge.
func (m *Mesh) NewEdge() *Edge {
	e := &Edge{mesh: m, id: m.nextID()}

	ePrev := m.eHead.pred
	e.pred = ePrev
	ePrev.succ = e
	e.succ = &m.eHead
	m.eHead.pred = e

	m.numEdges++
	return e
}

// NewHalfedge appends a zero-initialized halfedge. Its neighbours must be
// assigned with SetNeighbors before the current operation completes.
func (m *Mesh) NewHalfedge() *Halfedge {
	h := &Halfedge{mesh: m, id: m.nextID()}

	hPrev := m.hHead.pred
	h.pred = hPrev
	hPrev.succ = h
	h.succ = &m.hHead
	m.hHead.pred = h

	m.numHalfedges++
	return h
}

// NewFace appends a zero-initialized face. A boundary face represents a hole
// or the outer border of an open surface.
func (m *Mesh) NewFace(boundary bool) *Face {
	f := &Face{mesh: m, id: m.nextID(), boundary: boundary}

	fPrev := m.fHead.pred
	f.pred = fPrev
	fPrev.succ = f
	f.succ = &m.fHead
	m.fHead.pred = f

	if boundary {
		m.numBoundaries++
	} else {
		m.numFaces++
	}
	return f
}

// Erase marks x as erased. Erased records are skipped by every iteration and
// rejected by every operator, but stay linked until Commit or Validate.
// Erasing twice is a no-op.
func (m *Mesh) Erase(x Element) {
	x.erase()
}

func (v *Vertex) erase() {
	if v.erased {
		return
	}
	v.erased = true
	v.mesh.numVertices--
	v.mesh.pending++
}

func (e *Edge) erase() {
	if e.erased {
		return
	}
	e.erased = true
	e.mesh.numEdges--
	e.mesh.pending++
}

func (h *Halfedge) erase() {
	if h.erased {
		return
	}
	h.erased = true
	h.mesh.numHalfedges--
	h.mesh.pending++
}

func (f *Face) erase() {
	if f.erased {
		return
	}
	f.erased = true
	if f.boundary {
		f.mesh.numBoundaries--
	} else {
		f.mesh.numFaces--
	}
	f.mesh.pending++
}

// Commit unlinks every erased record without checking the mesh.
func (m *Mesh) Commit() {
	if m.pending == 0 {
		return
	}
	for v := m.vHead.succ; v != &m.vHead; {
		vNext := v.succ
		if v.erased {
			// delete from circular doubly-linked list
			v.pred.succ = vNext
			vNext.pred = v.pred
		}
		v = vNext
	}
	for e := m.eHead.succ; e != &m.eHead; {
		eNext := e.succ
		if e.erased {
			e.pred.succ = eNext
			eNext.pred = e.pred
		}
		e = eNext
	}
	for h := m.hHead.succ; h != &m.hHead; {
		hNext := h.succ
		if h.erased {
			h.pred.succ = hNext
			hNext.pred = h.pred
		}
		h = hNext
	}
	for f := m.fHead.succ; f != &m.fHead; {
		fNext := f.succ
		if f.erased {
			f.pred.succ = fNext
			fNext.pred = f.pred
		}
		f = fNext
	}
	m.pending = 0
}

// Vertices returns the live vertices in insertion order. The slice is a
// snapshot; the mesh may be edited while ranging over it.
func (m *Mesh) Vertices() []*Vertex {
	vs := make([]*Vertex, 0, m.numVertices)
	for v := m.vHead.succ; v != &m.vHead; v = v.succ {
		if !v.erased {
			vs = append(vs, v)
		}
	}
	return vs
}

// Edges returns the live edges in insertion order.
func (m *Mesh) Edges() []*Edge {
	es := make([]*Edge, 0, m.numEdges)
	for e := m.eHead.succ; e != &m.eHead; e = e.succ {
		if !e.erased {
			es = append(es, e)
		}
	}
	return es
}

// Halfedges returns the live halfedges in insertion order.
func (m *Mesh) Halfedges() []*Halfedge {
	hs := make([]*Halfedge, 0, m.numHalfedges)
	for h := m.hHead.succ; h != &m.hHead; h = h.succ {
		if !h.erased {
			hs = append(hs, h)
		}
	}
	return hs
}

// Faces returns the live interior faces in insertion order. Boundary loops
// are not included; see Boundaries.
func (m *Mesh) Faces() []*Face {
	return m.faces(false)
}

// Boundaries returns the live boundary loops in insertion order.
func (m *Mesh) Boundaries() []*Face {
	return m.faces(true)
}

func (m *Mesh) faces(boundary bool) []*Face {
	var fs []*Face
	for f := m.fHead.succ; f != &m.fHead; f = f.succ {
		if !f.erased && f.boundary == boundary {
			fs = append(fs, f)
		}
	}
	return fs
}

func (m *Mesh) NumVertices() int   { return m.numVertices }
func (m *Mesh) NumEdges() int      { return m.numEdges }
func (m *Mesh) NumHalfedges() int  { return m.numHalfedges }
func (m *Mesh) NumFaces() int      { return m.numFaces }
func (m *Mesh) NumBoundaries() int { return m.numBoundaries }

// Stats summarizes the size of a mesh.
type Stats struct {
	Vertices   int
	Edges      int
	Faces      int
	Boundaries int
	// Euler is V - E + F, counting boundary loops as faces.
	Euler int
}

func (s Stats) String() string {
	return fmt.Sprintf("V=%d E=%d F=%d B=%d Euler=%d", s.Vertices, s.Edges, s.Faces, s.Boundaries, s.Euler)
}

// Stats returns the current record counts.
func (m *Mesh) Stats() Stats {
	return Stats{
		Vertices:   m.numVertices,
		Edges:      m.numEdges,
		Faces:      m.numFaces,
		Boundaries: m.numBoundaries,
		Euler:      m.numVertices - m.numEdges + m.numFaces + m.numBoundaries,
	}
}

// Clone returns a deep copy of the live records of m. Records keep their IDs.
// References to erased records are dropped, so Commit first when erased
// records are still pending.
func (m *Mesh) Clone() *Mesh {
	c := NewMesh()
	c.FlipOrientation = m.FlipOrientation
	c.corrupt = m.corrupt
	c.observer = m.observer

	vs := map[*Vertex]*Vertex{}
	es := map[*Edge]*Edge{}
	hs := map[*Halfedge]*Halfedge{}
	fs := map[*Face]*Face{}

	for _, v := range m.Vertices() {
		nv := c.NewVertex()
		nv.id, nv.Pos, nv.NewPos, nv.IsNew = v.id, v.Pos, v.NewPos, v.IsNew
		vs[v] = nv
	}
	for _, e := range m.Edges() {
		ne := c.NewEdge()
		ne.id, ne.NewPos, ne.IsNew = e.id, e.NewPos, e.IsNew
		es[e] = ne
	}
	for _, h := range m.Halfedges() {
		nh := c.NewHalfedge()
		nh.id = h.id
		hs[h] = nh
	}
	for f := m.fHead.succ; f != &m.fHead; f = f.succ {
		if f.erased {
			continue
		}
		nf := c.NewFace(f.boundary)
		nf.id, nf.NewPos = f.id, f.NewPos
		fs[f] = nf
	}

	for v, nv := range vs {
		nv.halfedge = hs[v.halfedge]
	}
	for e, ne := range es {
		ne.halfedge = hs[e.halfedge]
	}
	for h, nh := range hs {
		nh.next = hs[h.next]
		nh.twin = hs[h.twin]
		nh.vertex = vs[h.vertex]
		nh.edge = es[h.edge]
		nh.face = fs[h.face]
	}
	for f, nf := range fs {
		nf.halfedge = hs[f.halfedge]
	}
	c.lastID = m.lastID
	return c
}

// ID returns the identifier of v, unique within its mesh.
func (v *Vertex) ID() uint32 { return v.id }

// Erased reports whether v has been erased.
func (v *Vertex) Erased() bool { return v.erased }

// Halfedge returns a halfedge leaving v.
func (v *Vertex) Halfedge() *Halfedge { return v.halfedge }

// SetHalfedge sets the outgoing halfedge of v.
func (v *Vertex) SetHalfedge(h *Halfedge) { v.halfedge = h }

func (e *Edge) ID() uint32              { return e.id }
func (e *Edge) Erased() bool            { return e.erased }
func (e *Edge) Halfedge() *Halfedge     { return e.halfedge }
func (e *Edge) SetHalfedge(h *Halfedge) { e.halfedge = h }

func (h *Halfedge) ID() uint32      { return h.id }
func (h *Halfedge) Erased() bool    { return h.erased }
func (h *Halfedge) Next() *Halfedge { return h.next }
func (h *Halfedge) Twin() *Halfedge { return h.twin }

// Vertex returns the origin of h.
func (h *Halfedge) Vertex() *Vertex { return h.vertex }
func (h *Halfedge) Edge() *Edge     { return h.edge }
func (h *Halfedge) Face() *Face     { return h.face }

// SetNeighbors assigns every neighbour of h at once. It is the only way to
// rewire a halfedge from outside the package.
func (h *Halfedge) SetNeighbors(next, twin *Halfedge, vertex *Vertex, edge *Edge, face *Face) {
	h.next = next
	h.twin = twin
	h.vertex = vertex
	h.edge = edge
	h.face = face
}

func (f *Face) ID() uint32              { return f.id }
func (f *Face) Erased() bool            { return f.erased }
func (f *Face) Halfedge() *Halfedge     { return f.halfedge }
func (f *Face) SetHalfedge(h *Halfedge) { f.halfedge = h }

// IsBoundary reports whether f is a boundary loop rather than a polygon.
func (f *Face) IsBoundary() bool { return f.boundary }
