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
)

// Validate checks every invariant of m: twins are mutual and distinct, face
// cycles and vertex fans close, stored halfedges are incident to their
// owners, and no live record refers to an erased or foreign one.
//
// On failure Validate returns a *ValidationError and marks m as corrupt:
// every later operator returns ErrCorrupt. On success erased records are
// unlinked as by Commit.
func (m *Mesh) Validate() error {
	if m.corrupt != nil {
		return m.corrupt
	}
	c := checker{mesh: m}
	c.check()
	if len(c.problems) > 0 {
		err := &ValidationError{Problems: c.problems}
		m.corrupt = err
		return err
	}
	m.Commit()
	return nil
}

type checker struct {
	mesh     *Mesh
	problems []string
}

func (c *checker) fail(format string, args ...any) {
	c.problems = append(c.problems, fmt.Sprintf(format, args...))
}

// check is a rendition of the classic CheckMesh walk that records problems
// instead of asserting, so that every one is reported.
func (c *checker) check() {
	m := c.mesh

	// Walks over a corrupt mesh are bounded by the number of linked halfedges.
	limit := 0
	for h := m.hHead.succ; h != &m.hHead; h = h.succ {
		limit++
	}

	for h := m.hHead.succ; h != &m.hHead; h = h.succ {
		if h.succ.pred != h {
			c.fail("halfedge list is broken after %d", h.id)
		}
		if h.erased {
			continue
		}
		c.checkHalfedge(h)
	}

	onFace := map[*Halfedge]bool{}
	for f := m.fHead.succ; f != &m.fHead; f = f.succ {
		if f.erased {
			continue
		}
		if !m.liveHalfedge(f.halfedge) {
			c.fail("face %d: halfedge is missing or erased", f.id)
			continue
		}
		n := 0
		h := f.halfedge
		for {
			if h.face != f {
				c.fail("face %d: halfedge %d in its cycle belongs to another face", f.id, h.id)
				break
			}
			onFace[h] = true
			n++
			h = h.next
			if h == f.halfedge {
				break
			}
			if n > limit || !m.liveHalfedge(h) {
				c.fail("face %d: cycle does not close", f.id)
				break
			}
		}
		if !f.boundary && n < 3 && h == f.halfedge {
			c.fail("face %d: degree %d", f.id, n)
		}
	}

	onFan := map[*Halfedge]bool{}
	for v := m.vHead.succ; v != &m.vHead; v = v.succ {
		if v.erased {
			continue
		}
		if !m.liveHalfedge(v.halfedge) {
			c.fail("vertex %d: halfedge is missing or erased", v.id)
			continue
		}
		n := 0
		h := v.halfedge
		for {
			if h.vertex != v {
				c.fail("vertex %d: halfedge %d in its fan leaves another vertex", v.id, h.id)
				break
			}
			onFan[h] = true
			n++
			if !m.liveHalfedge(h.twin) || !m.liveHalfedge(h.twin.next) {
				c.fail("vertex %d: fan is broken at halfedge %d", v.id, h.id)
				break
			}
			h = h.twin.next
			if h == v.halfedge {
				break
			}
			if n > limit {
				c.fail("vertex %d: fan does not close", v.id)
				break
			}
		}
	}

	for e := m.eHead.succ; e != &m.eHead; e = e.succ {
		if e.erased {
			continue
		}
		h := e.halfedge
		switch {
		case !m.liveHalfedge(h):
			c.fail("edge %d: halfedge is missing or erased", e.id)
		case h.edge != e:
			c.fail("edge %d: halfedge %d belongs to another edge", e.id, h.id)
		}
	}

	for h := m.hHead.succ; h != &m.hHead; h = h.succ {
		if h.erased {
			continue
		}
		if !onFace[h] {
			c.fail("halfedge %d: not on the cycle of its face", h.id)
		}
		if !onFan[h] {
			c.fail("halfedge %d: not on the fan of its vertex", h.id)
		}
	}
}

func (c *checker) checkHalfedge(h *Halfedge) {
	m := c.mesh
	if h.mesh != m {
		c.fail("halfedge %d: belongs to another mesh", h.id)
		return
	}
	ok := true
	if !m.liveHalfedge(h.next) {
		c.fail("halfedge %d: next is missing or erased", h.id)
		ok = false
	}
	if !m.liveHalfedge(h.twin) {
		c.fail("halfedge %d: twin is missing or erased", h.id)
		ok = false
	}
	if !m.liveVertex(h.vertex) {
		c.fail("halfedge %d: vertex is missing or erased", h.id)
		ok = false
	}
	if !m.liveEdge(h.edge) {
		c.fail("halfedge %d: edge is missing or erased", h.id)
		ok = false
	}
	if !m.liveFace(h.face) {
		c.fail("halfedge %d: face is missing or erased", h.id)
		ok = false
	}
	if !ok {
		return
	}
	if h.twin == h {
		c.fail("halfedge %d: is its own twin", h.id)
	}
	if h.twin.twin != h {
		c.fail("halfedge %d: twin %d does not point back", h.id, h.twin.id)
	}
	if h.twin.edge != h.edge {
		c.fail("halfedge %d: twin %d is on another edge", h.id, h.twin.id)
	}
	if h.twin.vertex == h.vertex {
		c.fail("halfedge %d: twin %d leaves the same vertex", h.id, h.twin.id)
	}
	if h.next.face != h.face {
		c.fail("halfedge %d: next %d is on another face", h.id, h.next.id)
	}
	if m.liveVertex(h.next.vertex) && h.next.vertex != h.twin.vertex {
		c.fail("halfedge %d: next %d does not start where it ends", h.id, h.next.id)
	}
}
