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
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// RemeshStats counts what one IsotropicRemesh pass did.
type RemeshStats struct {
	// MeanEdgeLength is the target length, measured before the pass.
	MeanEdgeLength float64
	Splits         int
	Collapses      int
	Flips          int
	// Declined counts collapses and flips that were refused and skipped.
	Declined int
}

const smoothingWeight = 0.2

// IsotropicRemesh runs one pass of isotropic remeshing on a triangle mesh:
// edges longer than 4/3 of the mean edge length are split, edges shorter
// than 4/5 of it are collapsed, edges are flipped where that brings the
// endpoint and apex degrees closer to 6 (4 on the boundary), and interior
// vertices are smoothed tangentially.
//
// A declined split aborts the pass with its error. Collapses and flips
// routinely decline on the link condition and the degree checks; those
// declines are not failures. They are skipped and counted in
// RemeshStats.Declined.
func (m *Mesh) IsotropicRemesh() (RemeshStats, error) {
	start := time.Now()
	stats, err := m.isotropicRemesh()
	return stats, m.finishPass("remesh", start, err)
}

func (m *Mesh) isotropicRemesh() (RemeshStats, error) {
	var stats RemeshStats
	if err := m.usable(); err != nil {
		return stats, err
	}
	if err := m.requireTriangles(); err != nil {
		return stats, fmt.Errorf("meshedit: remesh: %w", err)
	}
	es := m.Edges()
	if len(es) == 0 {
		return stats, nil
	}
	var total float64
	for _, e := range es {
		total += e.Length()
	}
	mean := total / float64(len(es))
	stats.MeanEdgeLength = mean

	for _, e := range es {
		if e.erased || e.Length() <= 4*mean/3 {
			continue
		}
		if _, err := m.SplitEdge(e); err != nil {
			return stats, fmt.Errorf("meshedit: remesh: %w", err)
		}
		stats.Splits++
	}

	for _, e := range m.Edges() {
		if e.erased || e.Length() >= 4*mean/5 {
			continue
		}
		if _, err := m.CollapseEdgeErase(e); err != nil {
			if !errors.Is(err, ErrDeclined) {
				return stats, fmt.Errorf("meshedit: remesh: %w", err)
			}
			stats.Declined++
			continue
		}
		stats.Collapses++
	}

	for _, e := range m.Edges() {
		if e.OnBoundary() || flipGain(e) <= 0 {
			continue
		}
		if _, err := m.FlipEdge(e); err != nil {
			if !errors.Is(err, ErrDeclined) {
				return stats, fmt.Errorf("meshedit: remesh: %w", err)
			}
			stats.Declined++
			continue
		}
		stats.Flips++
	}

	m.smoothTangentially()
	return stats, nil
}

func targetDegree(v *Vertex) int {
	if v.OnBoundary() {
		return 4
	}
	return 6
}

// flipGain returns by how much flipping e would reduce the total deviation
// of its endpoints and apexes from their target degrees.
func flipGain(e *Edge) int {
	h := e.halfedge
	a, b := h.vertex, dst(h)
	c, d := dst(h.next), dst(h.twin.next)
	dev := func(v *Vertex, delta int) int {
		return int(math.Abs(float64(v.Degree() + delta - targetDegree(v))))
	}
	before := dev(a, 0) + dev(b, 0) + dev(c, 0) + dev(d, 0)
	after := dev(a, -1) + dev(b, -1) + dev(c, 1) + dev(d, 1)
	return before - after
}

// smoothTangentially moves every interior vertex a fifth of the way toward
// the centroid of its neighbours, within its tangent plane.
func (m *Mesh) smoothTangentially() {
	vs := m.Vertices()
	for _, v := range vs {
		if v.OnBoundary() {
			v.NewPos = v.Pos
			continue
		}
		n := v.Normal()
		d := r3.Sub(v.NeighborhoodCenter(), v.Pos)
		d = r3.Sub(d, r3.Scale(r3.Dot(n, d), n))
		v.NewPos = r3.Add(v.Pos, r3.Scale(smoothingWeight, d))
	}
	for _, v := range vs {
		v.Pos = v.NewPos
	}
}
