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

	"gonum.org/v1/gonum/spatial/r3"
)

// NewMeshFromPolygons builds a mesh from a polygon soup. See Rebuild.
func NewMeshFromPolygons(positions []r3.Vec, polygons [][]int) (*Mesh, error) {
	m := NewMesh()
	if err := m.Rebuild(positions, polygons); err != nil {
		return nil, err
	}
	return m, nil
}

// Rebuild replaces the contents of m with the mesh described by positions
// and polygons, which index into positions and list their corners
// counterclockwise. Polygons sharing an index pair in opposite directions
// share an edge; every unmatched side gets a boundary loop.
//
// Rebuild fails with an error wrapping ErrInvalidPolygons, leaving m
// unchanged, when a polygon has fewer than three corners or repeats one,
// when an index is out of range or unused, when a directed side appears
// twice, or when a vertex is not manifold. Every record of the old mesh is
// erased; new records get fresh IDs. A successful Rebuild clears the
// corruption mark set by a failed Validate.
func (m *Mesh) Rebuild(positions []r3.Vec, polygons [][]int) error {
	b, err := build(positions, polygons, m.lastID)
	if err != nil {
		return err
	}
	m.clear()
	m.adopt(b)
	return nil
}

// clear erases every record and empties the lists.
func (m *Mesh) clear() {
	for v := m.vHead.succ; v != &m.vHead; v = v.succ {
		v.erased = true
	}
	for e := m.eHead.succ; e != &m.eHead; e = e.succ {
		e.erased = true
	}
	for h := m.hHead.succ; h != &m.hHead; h = h.succ {
		h.erased = true
	}
	for f := m.fHead.succ; f != &m.fHead; f = f.succ {
		f.erased = true
	}
	m.init()
	m.numVertices, m.numEdges, m.numHalfedges, m.numFaces, m.numBoundaries = 0, 0, 0, 0, 0
	m.pending = 0
	m.corrupt = nil
}

// adopt moves every record of b into the empty mesh m.
func (m *Mesh) adopt(b *Mesh) {
	for v := b.vHead.succ; v != &b.vHead; v = v.succ {
		v.mesh = m
	}
	for e := b.eHead.succ; e != &b.eHead; e = e.succ {
		e.mesh = m
	}
	for h := b.hHead.succ; h != &b.hHead; h = h.succ {
		h.mesh = m
	}
	for f := b.fHead.succ; f != &b.fHead; f = f.succ {
		f.mesh = m
	}

	if b.vHead.succ != &b.vHead {
		m.vHead.succ, m.vHead.pred = b.vHead.succ, b.vHead.pred
		m.vHead.succ.pred, m.vHead.pred.succ = &m.vHead, &m.vHead
	}
	if b.eHead.succ != &b.eHead {
		m.eHead.succ, m.eHead.pred = b.eHead.succ, b.eHead.pred
		m.eHead.succ.pred, m.eHead.pred.succ = &m.eHead, &m.eHead
	}
	if b.hHead.succ != &b.hHead {
		m.hHead.succ, m.hHead.pred = b.hHead.succ, b.hHead.pred
		m.hHead.succ.pred, m.hHead.pred.succ = &m.hHead, &m.hHead
	}
	if b.fHead.succ != &b.fHead {
		m.fHead.succ, m.fHead.pred = b.fHead.succ, b.fHead.pred
		m.fHead.succ.pred, m.fHead.pred.succ = &m.fHead, &m.fHead
	}

	m.lastID = b.lastID
	m.numVertices = b.numVertices
	m.numEdges = b.numEdges
	m.numHalfedges = b.numHalfedges
	m.numFaces = b.numFaces
	m.numBoundaries = b.numBoundaries
}

type side struct {
	from, to int
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPolygons, fmt.Sprintf(format, args...))
}

// build constructs a detached mesh whose IDs start after lastID.
func build(positions []r3.Vec, polygons [][]int, lastID uint32) (*Mesh, error) {
	for i, poly := range polygons {
		if len(poly) < 3 {
			return nil, invalid("polygon %d has %d corners", i, len(poly))
		}
		seen := map[int]bool{}
		for _, idx := range poly {
			if idx < 0 || idx >= len(positions) {
				return nil, invalid("polygon %d: index %d out of range", i, idx)
			}
			if seen[idx] {
				return nil, invalid("polygon %d: index %d repeated", i, idx)
			}
			seen[idx] = true
		}
	}

	b := NewMesh()
	b.lastID = lastID

	verts := make([]*Vertex, len(positions))
	for i, p := range positions {
		v := b.NewVertex()
		v.Pos = p
		verts[i] = v
	}

	half := map[side]*Halfedge{}
	var sides []side
	for i, poly := range polygons {
		f := b.NewFace(false)
		hs := make([]*Halfedge, len(poly))
		for j, from := range poly {
			s := side{from, poly[(j+1)%len(poly)]}
			if _, ok := half[s]; ok {
				return nil, invalid("polygon %d: side %d->%d is used twice", i, s.from, s.to)
			}
			h := b.NewHalfedge()
			h.vertex = verts[from]
			h.face = f
			if verts[from].halfedge == nil {
				verts[from].halfedge = h
			}
			half[s] = h
			sides = append(sides, s)
			hs[j] = h
		}
		for j, h := range hs {
			h.next = hs[(j+1)%len(hs)]
		}
		f.halfedge = hs[0]
	}

	for i, v := range verts {
		if v.halfedge == nil {
			return nil, invalid("vertex %d is not used by any polygon", i)
		}
	}

	// Pair up sides. Unmatched ones get a boundary twin.
	borderOut := map[*Vertex]*Halfedge{}
	var border []*Halfedge
	for _, s := range sides {
		h := half[s]
		if h.twin != nil {
			continue
		}
		e := b.NewEdge()
		e.halfedge = h
		h.edge = e
		if t, ok := half[side{s.to, s.from}]; ok {
			h.twin, t.twin = t, h
			t.edge = e
			continue
		}
		t := b.NewHalfedge()
		t.vertex = verts[s.to]
		t.edge = e
		h.twin, t.twin = t, h
		if borderOut[t.vertex] != nil {
			return nil, invalid("vertex %d is not manifold", s.to)
		}
		borderOut[t.vertex] = t
		border = append(border, t)
	}
	for _, t := range border {
		t.next = borderOut[dst(t)]
		if t.next == nil {
			return nil, invalid("boundary loop does not close")
		}
	}
	for _, t := range border {
		if t.face != nil {
			continue
		}
		f := b.NewFace(true)
		f.halfedge = t
		h := t
		for n := 0; ; n++ {
			if n > len(border) {
				return nil, invalid("boundary loop does not close")
			}
			h.face = f
			h = h.next
			if h == t {
				break
			}
		}
	}

	// Every halfedge leaving a vertex must lie on its single fan.
	out := map[*Vertex]int{}
	for h := b.hHead.succ; h != &b.hHead; h = h.succ {
		out[h.vertex]++
	}
	for i, v := range verts {
		n := 0
		h := v.halfedge
		for {
			n++
			h = h.twin.next
			if h == v.halfedge || n > out[v] {
				break
			}
		}
		if n != out[v] {
			return nil, invalid("vertex %d is not manifold", i)
		}
	}
	return b, nil
}
