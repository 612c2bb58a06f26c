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

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// SimplifyStats reports what Simplify did.
type SimplifyStats struct {
	// Target is the number of collapses attempted: a quarter of the faces.
	Target    int
	Collapses int
}

// Simplify reduces a triangle mesh by quadric error simplification: the
// cheapest interior edges are collapsed, one at a time, until a quarter of
// the faces' worth of collapses has been done or no candidate is left.
// Each merged vertex moves to the optimal point of its edge and takes the
// summed quadric of both endpoints.
//
// Edges on the boundary, or with both endpoints on it, are never candidates.
// A popped edge that the current connectivity cannot collapse, for example
// because of the link condition, is dropped; it comes back when a
// neighbouring collapse reprices it. A collapse that declines after passing
// those checks stops the pass with an error wrapping both
// ErrSimplifyAborted and the decline; the mesh stays valid and keeps the
// collapses done so far.
func (m *Mesh) Simplify() (SimplifyStats, error) {
	start := time.Now()
	stats, err := m.simplify()
	return stats, m.finishPass("simplify", start, err)
}

func (m *Mesh) simplify() (SimplifyStats, error) {
	var stats SimplifyStats
	if err := m.usable(); err != nil {
		return stats, err
	}
	if err := m.requireTriangles(); err != nil {
		return stats, fmt.Errorf("meshedit: simplify: %w", err)
	}

	faces := map[*Face]*mat.SymDense{}
	for _, f := range m.Faces() {
		faces[f] = FaceQuadric(f)
	}
	quadrics := map[*Vertex]*mat.SymDense{}
	for _, v := range m.Vertices() {
		quadrics[v] = VertexQuadric(v, faces)
	}
	q := NewEdgeQueue()
	for _, e := range m.Edges() {
		if candidate(e) {
			q.Insert(NewEdgeRecord(e, quadrics))
		}
	}

	stats.Target = m.numFaces / 4
	for stats.Collapses < stats.Target {
		r, ok := q.Pop()
		if !ok {
			break
		}
		if err := m.checkCollapseEdge(r.Edge); err != nil {
			Logger().Debug("collapse candidate dropped",
				zap.Uint32("edge", r.Edge.id),
				zap.Error(err))
			continue
		}
		a, b := r.Edge.Vertices()
		for _, v := range []*Vertex{a, b} {
			for _, h := range fan(v.halfedge) {
				q.Remove(h.edge)
			}
		}
		var sum mat.SymDense
		sum.AddSym(quadrics[a], quadrics[b])

		v, err := m.CollapseEdgeErase(r.Edge)
		if err != nil {
			Logger().Warn("simplification stopped",
				zap.Int("collapses", stats.Collapses),
				zap.Int("target", stats.Target),
				zap.Uint32("edge", r.Edge.id))
			return stats, fmt.Errorf("%w: %w", ErrSimplifyAborted, err)
		}
		stats.Collapses++

		delete(quadrics, a)
		delete(quadrics, b)
		v.Pos = r.Optimal
		quadrics[v] = &sum
		for _, h := range fan(v.halfedge) {
			if candidate(h.edge) {
				q.Insert(NewEdgeRecord(h.edge, quadrics))
			}
		}
	}
	return stats, nil
}

// candidate reports whether e may enter the simplification queue.
func candidate(e *Edge) bool {
	if e.OnBoundary() {
		return false
	}
	a, b := e.Vertices()
	return !a.OnBoundary() || !b.OnBoundary()
}
