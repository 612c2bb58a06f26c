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
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// requireTriangles returns ErrNotTriangleMesh unless every polygon of m is a
// triangle.
func (m *Mesh) requireTriangles() error {
	for _, f := range m.Faces() {
		if f.Degree() != 3 {
			return ErrNotTriangleMesh
		}
	}
	return nil
}

// LoopSubdivide applies one step of Loop subdivision to a closed triangle
// mesh: every edge is split, new edges joining an old and a new vertex are
// flipped, and all vertices move to their Loop positions. Each triangle
// becomes four.
func (m *Mesh) LoopSubdivide() error {
	start := time.Now()
	err := m.loopSubdivide()
	return m.finishPass("loop", start, err)
}

func (m *Mesh) loopSubdivide() error {
	if err := m.usable(); err != nil {
		return err
	}
	if m.numBoundaries > 0 {
		return fmt.Errorf("meshedit: loop: %w", ErrHasBoundary)
	}
	if err := m.requireTriangles(); err != nil {
		return fmt.Errorf("meshedit: loop: %w", err)
	}

	// Positions are computed on the coarse mesh before anything moves.
	vs := m.Vertices()
	for _, v := range vs {
		v.IsNew = false
		n := float64(v.Degree())
		u := 3 / (8 * n)
		if n == 3 {
			u = 3.0 / 16
		}
		var sum r3.Vec
		for _, w := range v.Neighbors() {
			sum = r3.Add(sum, w.Pos)
		}
		v.NewPos = r3.Add(r3.Scale(1-n*u, v.Pos), r3.Scale(u, sum))
	}
	es := m.Edges()
	for _, e := range es {
		e.IsNew = false
		h := e.halfedge
		a, b := h.vertex.Pos, dst(h).Pos
		c, d := dst(h.next).Pos, dst(h.twin.next).Pos
		e.NewPos = r3.Add(r3.Scale(3.0/8, r3.Add(a, b)), r3.Scale(1.0/8, r3.Add(c, d)))
	}

	for _, e := range es {
		p := e.NewPos
		v, err := m.SplitEdge(e)
		if err != nil {
			return fmt.Errorf("meshedit: loop: %w", err)
		}
		v.NewPos = p
	}

	for _, e := range m.Edges() {
		if !e.IsNew {
			continue
		}
		a, b := e.Vertices()
		if a.IsNew == b.IsNew {
			continue
		}
		if _, err := m.FlipEdge(e); err != nil {
			return fmt.Errorf("meshedit: loop: %w", err)
		}
	}

	for _, v := range m.Vertices() {
		v.Pos = v.NewPos
	}
	return nil
}
