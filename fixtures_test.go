package meshedit_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hajimehoshi/go-meshedit"
)

func newMesh(t *testing.T, positions []r3.Vec, polygons [][]int) *meshedit.Mesh {
	t.Helper()
	m, err := meshedit.NewMeshFromPolygons(positions, polygons)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

func tetrahedron(t *testing.T) *meshedit.Mesh {
	return newMesh(t, []r3.Vec{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}, [][]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	})
}

var (
	cubePositions = []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 0, Y: 1, Z: 1},
	}
	cubeFaces = [][]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4},
		{3, 7, 6, 2},
		{0, 4, 7, 3},
		{1, 2, 6, 5},
	}
)

func cube(t *testing.T) *meshedit.Mesh {
	return newMesh(t, cubePositions, cubeFaces)
}

// octahedron has vertices +x, -x, +y, -y, +z, -z, in that order.
func octahedron(t *testing.T) *meshedit.Mesh {
	return newMesh(t, []r3.Vec{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}, [][]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	})
}

// grid returns an n by n grid of unit squares in the z = 0 plane, each
// split along its rising diagonal when triangles is set.
func grid(t *testing.T, n int, triangles bool) *meshedit.Mesh {
	var positions []r3.Vec
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			positions = append(positions, r3.Vec{X: float64(x), Y: float64(y)})
		}
	}
	idx := func(x, y int) int { return y*(n+1) + x }
	var polygons [][]int
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			a, b, c, d := idx(x, y), idx(x+1, y), idx(x+1, y+1), idx(x, y+1)
			if triangles {
				polygons = append(polygons, []int{a, b, c}, []int{a, c, d})
			} else {
				polygons = append(polygons, []int{a, b, c, d})
			}
		}
	}
	return newMesh(t, positions, polygons)
}

func vertexAt(t *testing.T, m *meshedit.Mesh, p r3.Vec) *meshedit.Vertex {
	t.Helper()
	for _, v := range m.Vertices() {
		if r3.Norm(r3.Sub(v.Pos, p)) < 1e-9 {
			return v
		}
	}
	t.Fatalf("no vertex at %v", p)
	return nil
}

func edgeBetween(t *testing.T, m *meshedit.Mesh, p, q r3.Vec) *meshedit.Edge {
	t.Helper()
	a, b := vertexAt(t, m, p), vertexAt(t, m, q)
	for _, h := range a.Outgoing() {
		if h.Twin().Vertex() == b {
			return h.Edge()
		}
	}
	t.Fatalf("no edge between %v and %v", p, q)
	return nil
}

type vertexState struct {
	ID, Halfedge uint32
	Pos, NewPos  r3.Vec
	IsNew        bool
}

type edgeState struct {
	ID, Halfedge uint32
	IsNew        bool
}

type halfedgeState struct {
	ID, Next, Twin, Vertex, Edge, Face uint32
}

type faceState struct {
	ID, Halfedge uint32
	Boundary     bool
}

// state is a comparable picture of every live record of a mesh.
type state struct {
	Vertices  []vertexState
	Edges     []edgeState
	Halfedges []halfedgeState
	Faces     []faceState
}

func id(x interface{ ID() uint32 }) uint32 {
	switch x := x.(type) {
	case *meshedit.Vertex:
		if x == nil {
			return 0
		}
	case *meshedit.Edge:
		if x == nil {
			return 0
		}
	case *meshedit.Halfedge:
		if x == nil {
			return 0
		}
	case *meshedit.Face:
		if x == nil {
			return 0
		}
	}
	return x.ID()
}

func snapshot(m *meshedit.Mesh) state {
	var s state
	for _, v := range m.Vertices() {
		s.Vertices = append(s.Vertices, vertexState{v.ID(), id(v.Halfedge()), v.Pos, v.NewPos, v.IsNew})
	}
	for _, e := range m.Edges() {
		s.Edges = append(s.Edges, edgeState{e.ID(), id(e.Halfedge()), e.IsNew})
	}
	for _, h := range m.Halfedges() {
		s.Halfedges = append(s.Halfedges, halfedgeState{h.ID(), id(h.Next()), id(h.Twin()), id(h.Vertex()), id(h.Edge()), id(h.Face())})
	}
	for _, f := range append(m.Faces(), m.Boundaries()...) {
		s.Faces = append(s.Faces, faceState{f.ID(), id(f.Halfedge()), f.IsBoundary()})
	}
	return s
}

// faceCycles returns the vertex ID cycles of every face, each rotated to
// start at its smallest ID, sorted.
func faceCycles(m *meshedit.Mesh) [][]uint32 {
	var cs [][]uint32
	for _, f := range m.Faces() {
		var c []uint32
		for _, v := range f.Vertices() {
			c = append(c, v.ID())
		}
		lo := 0
		for i := range c {
			if c[i] < c[lo] {
				lo = i
			}
		}
		rotated := make([]uint32, 0, len(c))
		rotated = append(rotated, c[lo:]...)
		rotated = append(rotated, c[:lo]...)
		cs = append(cs, rotated)
	}
	sort.Slice(cs, func(i, j int) bool {
		a, b := cs[i], cs[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return cs
}

func counts(m *meshedit.Mesh) [3]int {
	return [3]int{m.NumVertices(), m.NumEdges(), m.NumFaces()}
}
