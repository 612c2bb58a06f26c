package meshedit_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hajimehoshi/go-meshedit"
)

// requireDeclined checks that err is a decline and that m is exactly as
// captured in before.
func requireDeclined(t *testing.T, m *meshedit.Mesh, before state, err error) {
	t.Helper()
	require.ErrorIs(t, err, meshedit.ErrDeclined)
	var derr *meshedit.DeclineError
	require.True(t, errors.As(err, &derr))
	assert.NotEmpty(t, derr.Op)
	assert.NotEmpty(t, derr.Reason)
	if diff := cmp.Diff(before, snapshot(m)); diff != "" {
		t.Errorf("declined operator changed the mesh (-want +got):\n%s", diff)
	}
	require.NoError(t, m.Validate())
}

func singleTriangle(t *testing.T) *meshedit.Mesh {
	return newMesh(t, []r3.Vec{{}, {X: 1}, {Y: 1}}, [][]int{{0, 1, 2}})
}

func TestDeclines(t *testing.T) {
	for _, tc := range []struct {
		name string
		mesh func(*testing.T) *meshedit.Mesh
		op   func(*meshedit.Mesh) error
	}{
		{"erase boundary vertex", singleTriangle, func(m *meshedit.Mesh) error {
			_, err := m.EraseVertex(m.Vertices()[0])
			return err
		}},
		{"erase boundary edge", singleTriangle, func(m *meshedit.Mesh) error {
			_, err := m.EraseEdge(m.Edges()[0])
			return err
		}},
		{"collapse boundary edge", singleTriangle, func(m *meshedit.Mesh) error {
			_, err := m.CollapseEdge(m.Edges()[0])
			return err
		}},
		{"collapse tetrahedron edge", tetrahedron, func(m *meshedit.Mesh) error {
			_, err := m.CollapseEdge(m.Edges()[0])
			return err
		}},
		{"collapse edge with boundary endpoints", func(t *testing.T) *meshedit.Mesh { return grid(t, 2, true) }, func(m *meshedit.Mesh) error {
			for _, e := range m.Edges() {
				a, b := e.Vertices()
				if !e.OnBoundary() && a.OnBoundary() && b.OnBoundary() {
					_, err := m.CollapseEdge(e)
					return err
				}
			}
			return nil
		}},
		{"collapse boundary face", singleTriangle, func(m *meshedit.Mesh) error {
			_, err := m.CollapseFace(m.Boundaries()[0])
			return err
		}},
		{"collapse face next to triangles", octahedron, func(m *meshedit.Mesh) error {
			_, err := m.CollapseFace(m.Faces()[0])
			return err
		}},
		{"flip boundary edge", singleTriangle, func(m *meshedit.Mesh) error {
			_, err := m.FlipEdge(m.Edges()[0])
			return err
		}},
		{"flip onto existing edge", tetrahedron, func(m *meshedit.Mesh) error {
			_, err := m.FlipEdge(m.Edges()[0])
			return err
		}},
		{"split edge of quads", cube, func(m *meshedit.Mesh) error {
			_, err := m.SplitEdge(m.Edges()[0])
			return err
		}},
		{"bevel vertex", cube, func(m *meshedit.Mesh) error {
			_, err := m.BevelVertex(m.Vertices()[0])
			return err
		}},
		{"bevel edge", cube, func(m *meshedit.Mesh) error {
			_, err := m.BevelEdge(m.Edges()[0])
			return err
		}},
		{"bevel boundary face", singleTriangle, func(m *meshedit.Mesh) error {
			_, err := m.BevelFace(m.Boundaries()[0])
			return err
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.mesh(t)
			before := snapshot(m)
			requireDeclined(t, m, before, tc.op(m))
		})
	}
}

func TestOperatorsDeclineErasedHandles(t *testing.T) {
	m := octahedron(t)
	e := m.Edges()[0]
	other := octahedron(t)

	_, err := m.EraseEdge(e)
	require.NoError(t, err)
	m.Commit()

	before := snapshot(m)
	_, err = m.FlipEdge(e)
	requireDeclined(t, m, before, err)
	_, err = m.SplitEdge(other.Edges()[0])
	requireDeclined(t, m, before, err)
	_, err = m.EraseVertex(other.Vertices()[0])
	requireDeclined(t, m, before, err)
	_, err = m.BevelFace(other.Faces()[0])
	requireDeclined(t, m, before, err)
}

func TestEraseVertex(t *testing.T) {
	m := octahedron(t)
	top := m.Vertices()[4]
	f, err := m.EraseVertex(top)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.True(t, top.Erased())
	assert.Equal(t, 4, f.Degree())
	assert.Equal(t, [3]int{5, 8, 5}, counts(m))
	for _, v := range f.Vertices() {
		assert.Equal(t, 3, v.Degree())
	}
}

func TestEraseEdge(t *testing.T) {
	m := octahedron(t)
	f, err := m.EraseEdge(m.Edges()[0])
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 4, f.Degree())
	assert.Equal(t, [3]int{6, 11, 7}, counts(m))
}

func TestCollapseEdge(t *testing.T) {
	m := octahedron(t)
	e := m.Edges()[0]
	a, b := e.Vertices()
	want := e.Center()

	v, err := m.CollapseEdge(e)
	require.NoError(t, err)
	assert.Same(t, a, v)
	assert.True(t, b.Erased())
	assert.True(t, e.Erased())
	assert.Equal(t, want, v.Pos)
	assert.Equal(t, 4, v.Degree())
	require.NoError(t, m.Validate())
	assert.Equal(t, [3]int{5, 9, 6}, counts(m))
}

func TestCollapseEdgeOfPolygons(t *testing.T) {
	m := grid(t, 3, false)
	e := edgeBetween(t, m, r3.Vec{X: 1, Y: 1}, r3.Vec{X: 2, Y: 1})
	v, err := m.CollapseEdgeErase(e)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, r3.Vec{X: 1.5, Y: 1}, v.Pos)
	assert.Equal(t, 6, v.Degree())
	assert.Equal(t, [3]int{15, 23, 9}, counts(m))

	degrees := map[int]int{}
	for _, f := range m.Faces() {
		degrees[f.Degree()]++
	}
	assert.Equal(t, map[int]int{3: 2, 4: 7}, degrees)
}

func TestCollapseFace(t *testing.T) {
	m := cube(t)
	bottom := m.Faces()[0]
	v, err := m.CollapseFace(bottom)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.True(t, bottom.Erased())
	assert.Equal(t, r3.Vec{X: 0.5, Y: 0.5}, v.Pos)
	assert.Equal(t, 4, v.Degree())
	assert.Equal(t, [3]int{5, 8, 5}, counts(m))
}

func TestFlipEdge(t *testing.T) {
	m := grid(t, 2, true)
	e := edgeBetween(t, m, r3.Vec{X: 1, Y: 1}, r3.Vec{X: 2, Y: 2})
	before := faceCycles(m)

	got, err := m.FlipEdge(e)
	require.NoError(t, err)
	assert.Same(t, e, got)
	require.NoError(t, m.Validate())
	a, b := e.Vertices()
	ends := map[r3.Vec]bool{a.Pos: true, b.Pos: true}
	assert.Equal(t, map[r3.Vec]bool{{X: 2, Y: 1}: true, {X: 1, Y: 2}: true}, ends)
	assert.Equal(t, [3]int{9, 16, 8}, counts(m))

	_, err = m.FlipEdge(e)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, before, faceCycles(m))
}

func TestFlipEdgeOfPolygons(t *testing.T) {
	m := grid(t, 2, false)
	e := edgeBetween(t, m, r3.Vec{X: 1, Y: 1}, r3.Vec{X: 1, Y: 2})
	_, err := m.FlipEdge(e)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	for _, f := range m.Faces() {
		assert.Equal(t, 4, f.Degree())
	}
	assert.Equal(t, [3]int{9, 12, 4}, counts(m))
}

func TestSplitEdge(t *testing.T) {
	m := octahedron(t)
	e := m.Edges()[0]
	want := e.Center()

	v, err := m.SplitEdge(e)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.True(t, v.IsNew)
	assert.Equal(t, want, v.Pos)
	assert.Equal(t, 4, v.Degree())
	assert.Equal(t, [3]int{7, 15, 10}, counts(m))
	for _, f := range m.Faces() {
		assert.Equal(t, 3, f.Degree())
	}

	newEdges := 0
	for _, h := range v.Outgoing() {
		if h.Edge().IsNew {
			newEdges++
		}
	}
	assert.Equal(t, 2, newEdges)
}

func TestSplitThenCollapse(t *testing.T) {
	m := octahedron(t)
	v, err := m.SplitEdge(m.Edges()[0])
	require.NoError(t, err)
	_, err = m.CollapseEdgeErase(v.Halfedge().Edge())
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, [3]int{6, 12, 8}, counts(m))
}

func TestSplitBoundaryEdge(t *testing.T) {
	m := singleTriangle(t)
	v, err := m.SplitEdge(m.Edges()[0])
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.True(t, v.OnBoundary())
	assert.Equal(t, 3, v.Degree())
	assert.Equal(t, [3]int{4, 5, 2}, counts(m))
	require.Len(t, m.Boundaries(), 1)
	assert.Equal(t, 4, m.Boundaries()[0].Degree())
}

func TestBevelFace(t *testing.T) {
	m := cube(t)
	top := m.Faces()[1]
	f, err := m.BevelFace(top)
	require.NoError(t, err)
	assert.Same(t, top, f)
	require.NoError(t, m.Validate())
	assert.Equal(t, [3]int{12, 20, 10}, counts(m))
	assert.Equal(t, 4, f.Degree())
	for _, h := range f.Halfedges() {
		assert.Equal(t, 3, h.Vertex().Degree())
		assert.Equal(t, 4, h.Twin().Face().Degree())
	}

	var start []r3.Vec
	for _, v := range f.Vertices() {
		start = append(start, v.Pos)
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, m.BevelFacePositions(start, f, -0.5, 1))
		got := map[r3.Vec]bool{}
		for _, v := range f.Vertices() {
			got[v.Pos] = true
		}
		assert.Equal(t, map[r3.Vec]bool{
			{X: 0.25, Y: 0.25, Z: 2}: true,
			{X: 0.75, Y: 0.25, Z: 2}: true,
			{X: 0.75, Y: 0.75, Z: 2}: true,
			{X: 0.25, Y: 0.75, Z: 2}: true,
		}, got)
	}

	m.FlipOrientation = true
	require.NoError(t, m.BevelFacePositions(start, f, 0, 1))
	for _, v := range f.Vertices() {
		assert.Equal(t, 0.0, v.Pos.Z)
	}
	require.NoError(t, m.Validate())
}

func TestBevelEdgeAndVertexPositions(t *testing.T) {
	m := cube(t)
	f, err := m.BevelFace(m.Faces()[1])
	require.NoError(t, err)

	var start, outer []r3.Vec
	for _, h := range f.Halfedges() {
		start = append(start, r3.Add(h.Vertex().Pos, r3.Vec{Z: 1}))
		outer = append(outer, h.Twin().Next().Twin().Vertex().Pos)
	}

	require.NoError(t, m.BevelEdgePositions(start, f, 5))
	for i, v := range f.Vertices() {
		assert.Equal(t, outer[i], v.Pos)
	}
	require.NoError(t, m.BevelEdgePositions(start, f, -1))
	for i, v := range f.Vertices() {
		assert.Equal(t, start[i], v.Pos)
	}

	require.NoError(t, m.BevelVertexPositions(start[:1], f, 0))
	for _, v := range f.Vertices() {
		assert.Equal(t, start[0], v.Pos)
	}

	err = m.BevelFacePositions(start[:2], f, 0, 0)
	assert.ErrorIs(t, err, meshedit.ErrDeclined)
}
