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
	"container/heap"
)

type pqEntry struct {
	rec   EdgeRecord
	index int
}

type pq []*pqEntry

func (p pq) Len() int {
	return len(p)
}

func (p pq) Less(i, j int) bool {
	if p[i].rec.Cost != p[j].rec.Cost {
		return p[i].rec.Cost < p[j].rec.Cost
	}
	return p[i].rec.Edge.id < p[j].rec.Edge.id
}

func (p pq) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
	p[i].index = i
	p[j].index = j
}

func (p *pq) Push(x interface{}) {
	e := x.(*pqEntry)
	e.index = len(*p)
	*p = append(*p, e)
}

func (p *pq) Pop() interface{} {
	old := *p
	x := old[len(old)-1]
	old[len(old)-1] = nil
	*p = old[:len(old)-1]
	x.index = -1
	return x
}

// EdgeQueue is a min-priority queue of edge records ordered by cost, then
// by edge ID. It holds at most one record per edge, and a side table makes
// removal by edge O(log n).
type EdgeQueue struct {
	p      pq
	byEdge map[*Edge]*pqEntry
}

// NewEdgeQueue returns an empty queue.
func NewEdgeQueue() *EdgeQueue {
	q := &EdgeQueue{byEdge: map[*Edge]*pqEntry{}}
	heap.Init(&q.p)
	return q
}

// Len returns the number of records in q.
func (q *EdgeQueue) Len() int {
	return len(q.p)
}

// Insert adds r, replacing any record of the same edge.
func (q *EdgeQueue) Insert(r EdgeRecord) {
	if e, ok := q.byEdge[r.Edge]; ok {
		e.rec = r
		heap.Fix(&q.p, e.index)
		return
	}
	e := &pqEntry{rec: r}
	q.byEdge[r.Edge] = e
	heap.Push(&q.p, e)
}

// Remove drops the record of edge and reports whether there was one.
func (q *EdgeQueue) Remove(edge *Edge) bool {
	e, ok := q.byEdge[edge]
	if !ok {
		return false
	}
	heap.Remove(&q.p, e.index)
	delete(q.byEdge, edge)
	return true
}

// Top returns the cheapest record without removing it.
func (q *EdgeQueue) Top() (EdgeRecord, bool) {
	if len(q.p) == 0 {
		return EdgeRecord{}, false
	}
	return q.p[0].rec, true
}

// Pop removes and returns the cheapest record.
func (q *EdgeQueue) Pop() (EdgeRecord, bool) {
	if len(q.p) == 0 {
		return EdgeRecord{}, false
	}
	e := heap.Pop(&q.p).(*pqEntry)
	delete(q.byEdge, e.rec.Edge)
	return e.rec, true
}
