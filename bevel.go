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

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// BevelVertex is not supported and always declines.
func (m *Mesh) BevelVertex(v *Vertex) (*Face, error) {
	const op = "bevel-vertex"
	if err := m.checkVertex(op, v); err != nil {
		return nil, m.finish(op, err)
	}
	return nil, m.finish(op, decline(op, "not supported"))
}

// BevelEdge is not supported and always declines.
func (m *Mesh) BevelEdge(e *Edge) (*Face, error) {
	const op = "bevel-edge"
	if err := m.checkEdge(op, e); err != nil {
		return nil, m.finish(op, err)
	}
	return nil, m.finish(op, decline(op, "not supported"))
}

// BevelFace insets f: every corner of f is duplicated into a ring of new
// vertices at the same positions, f is moved onto the ring, and each side of
// the original polygon gets a new quad joining it to the ring. f is returned;
// use BevelFacePositions to move the ring.
func (m *Mesh) BevelFace(f *Face) (*Face, error) {
	f, err := m.bevelFace(f)
	return f, m.finish("bevel-face", err)
}

func (m *Mesh) bevelFace(f *Face) (*Face, error) {
	const op = "bevel-face"
	if err := m.checkFace(op, f); err != nil {
		return nil, err
	}
	if f.boundary {
		return nil, decline(op, "face is a boundary loop")
	}

	hs := cycle(f.halfedge)
	n := len(hs)
	ws := make([]*Vertex, n)
	bs := make([]*Edge, n)       // u_i to w_i
	brs := make([]*Halfedge, n)  // u_i to w_i
	brts := make([]*Halfedge, n) // w_i to u_i
	cs := make([]*Edge, n)       // w_i to w_i+1
	ins := make([]*Halfedge, n)  // w_i to w_i+1, on f
	inTs := make([]*Halfedge, n) // w_i+1 to w_i, on the side quad
	sides := make([]*Face, n)

	for i, h := range hs {
		w := m.NewVertex()
		w.Pos = h.vertex.Pos
		ws[i] = w
		bs[i] = m.NewEdge()
		brs[i] = m.NewHalfedge()
		brts[i] = m.NewHalfedge()
		cs[i] = m.NewEdge()
		ins[i] = m.NewHalfedge()
		inTs[i] = m.NewHalfedge()
		sides[i] = m.NewFace(false)
	}

	// Side i is u_i, u_i+1, w_i+1, w_i.
	for i, h := range hs {
		j := (i + 1) % n
		k := (i + n - 1) % n
		brs[i].SetNeighbors(inTs[k], brts[i], h.vertex, bs[i], sides[k])
		brts[i].SetNeighbors(h, brs[i], ws[i], bs[i], sides[i])
		ins[i].SetNeighbors(ins[j], inTs[i], ws[i], cs[i], f)
		inTs[i].SetNeighbors(brts[i], ins[i], ws[j], cs[i], sides[i])
		bs[i].halfedge = brs[i]
		cs[i].halfedge = ins[i]

		h.next = brs[j]
		h.face = sides[i]
		sides[i].halfedge = h
		ws[i].halfedge = ins[i]
	}
	f.halfedge = ins[0]
	return f, nil
}

// BevelFacePositions moves the corners of f, a face created by BevelFace,
// from their start positions: each corner is pushed away from the centroid
// of start by tangentOffset times its offset from the centroid, and along
// the normal of start by normalOffset. The normal offset is negated when
// FlipOrientation is set. start must hold one position per corner, in
// cycle order from f.Halfedge(); the result depends only on start, so
// repeated calls with the same arguments agree.
func (m *Mesh) BevelFacePositions(start []r3.Vec, f *Face, tangentOffset, normalOffset float64) error {
	ring, err := m.bevelRing("bevel-face-positions", start, f)
	if err != nil {
		return err
	}
	c := centroid(start)
	n := unit(newell(start))
	if m.FlipOrientation {
		normalOffset = -normalOffset
	}
	for i, h := range ring {
		p := r3.Add(start[i], r3.Scale(tangentOffset, r3.Sub(start[i], c)))
		h.vertex.Pos = r3.Add(p, r3.Scale(normalOffset, n))
	}
	return nil
}

// BevelEdgePositions slides each corner of f from its start position toward
// the vertex it is joined to outside f, by tangentOffset clamped to [0, 1].
func (m *Mesh) BevelEdgePositions(start []r3.Vec, f *Face, tangentOffset float64) error {
	ring, err := m.bevelRing("bevel-edge-positions", start, f)
	if err != nil {
		return err
	}
	t := clamp01(tangentOffset)
	for i, h := range ring {
		h.vertex.Pos = interpolate(start[i], dst(h.twin.next).Pos, t)
	}
	return nil
}

// BevelVertexPositions is BevelEdgePositions for a ring that grew out of a
// single vertex: every corner starts at start[0].
func (m *Mesh) BevelVertexPositions(start []r3.Vec, f *Face, tangentOffset float64) error {
	ring, err := m.bevelRing("bevel-vertex-positions", start, f)
	if err != nil {
		return err
	}
	t := clamp01(tangentOffset)
	for _, h := range ring {
		h.vertex.Pos = interpolate(start[0], dst(h.twin.next).Pos, t)
	}
	return nil
}

func (m *Mesh) bevelRing(op string, start []r3.Vec, f *Face) ([]*Halfedge, error) {
	if err := m.checkFace(op, f); err != nil {
		return nil, err
	}
	ring := cycle(f.halfedge)
	if len(start) == 0 || (op != "bevel-vertex-positions" && len(start) != len(ring)) {
		err := decline(op, fmt.Sprintf("%d start positions for a face of degree %d", len(start), len(ring)))
		Logger().Debug("bad bevel input", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return ring, nil
}
