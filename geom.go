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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// centroid returns the arithmetic mean of ps.
func centroid(ps []r3.Vec) r3.Vec {
	var c r3.Vec
	for _, p := range ps {
		c = r3.Add(c, p)
	}
	return r3.Scale(1/float64(len(ps)), c)
}

// newell returns the Newell normal of the polygon ps. Its length is twice
// the area of the polygon when the polygon is planar.
func newell(ps []r3.Vec) r3.Vec {
	var n r3.Vec
	for i, p := range ps {
		q := ps[(i+1)%len(ps)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	return n
}

// unit is r3.Unit, except that the zero vector stays zero.
func unit(v r3.Vec) r3.Vec {
	if r3.Norm2(v) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(v)
}

// interpolate returns a + (b-a)*t.
func interpolate(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

func facePositions(f *Face) []r3.Vec {
	var ps []r3.Vec
	h := f.halfedge
	for {
		ps = append(ps, h.vertex.Pos)
		h = h.next
		if h == f.halfedge {
			break
		}
	}
	return ps
}

// Center returns the midpoint of e.
func (e *Edge) Center() r3.Vec {
	return interpolate(e.halfedge.vertex.Pos, dst(e.halfedge).Pos, 0.5)
}

// Length returns the distance between the endpoints of e.
func (e *Edge) Length() float64 {
	return r3.Norm(r3.Sub(dst(e.halfedge).Pos, e.halfedge.vertex.Pos))
}

// Center returns the centroid of the corners of f.
func (f *Face) Center() r3.Vec {
	return centroid(facePositions(f))
}

// Normal returns the unit normal of f, oriented by its cycle.
func (f *Face) Normal() r3.Vec {
	return unit(newell(facePositions(f)))
}

// Area returns the area of f, exact for planar polygons.
func (f *Face) Area() float64 {
	return r3.Norm(newell(facePositions(f))) / 2
}

// NeighborhoodCenter returns the centroid of the vertices adjacent to v.
func (v *Vertex) NeighborhoodCenter() r3.Vec {
	var ps []r3.Vec
	h := v.halfedge
	for {
		ps = append(ps, dst(h).Pos)
		h = h.twin.next
		if h == v.halfedge {
			break
		}
	}
	return centroid(ps)
}

// Normal returns the area-weighted unit normal of the polygons around v.
func (v *Vertex) Normal() r3.Vec {
	var n r3.Vec
	h := v.halfedge
	for {
		if !h.face.boundary {
			n = r3.Add(n, newell(facePositions(h.face)))
		}
		h = h.twin.next
		if h == v.halfedge {
			break
		}
	}
	return unit(n)
}
