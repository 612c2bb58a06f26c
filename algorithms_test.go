package meshedit_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hajimehoshi/go-meshedit"
)

func assertVecNear(t *testing.T, want, got r3.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
	assert.InDelta(t, want.Z, got.Z, 1e-9)
}

func TestTriangulate(t *testing.T) {
	m := cube(t)
	faces := m.Faces()
	require.NoError(t, m.Triangulate())
	require.NoError(t, m.Validate())
	assert.Equal(t, [3]int{8, 18, 12}, counts(m))
	for _, f := range m.Faces() {
		assert.Equal(t, 3, f.Degree())
	}
	for _, f := range faces {
		assert.False(t, f.Erased())
	}
}

func TestTriangulatePolygon(t *testing.T) {
	var positions []r3.Vec
	var poly []int
	for i := 0; i < 6; i++ {
		a := 2 * math.Pi * float64(i) / 6
		positions = append(positions, r3.Vec{X: math.Cos(a), Y: math.Sin(a)})
		poly = append(poly, i)
	}
	m := newMesh(t, positions, [][]int{poly})
	require.NoError(t, m.Triangulate())
	require.NoError(t, m.Validate())
	assert.Equal(t, [3]int{6, 9, 4}, counts(m))
	assert.Equal(t, 6, m.Boundaries()[0].Degree())
	assert.Equal(t, 5, m.Vertices()[0].Degree())
}

func TestTriangulateQuad(t *testing.T) {
	m := grid(t, 1, false)
	require.NoError(t, m.Triangulate())
	require.NoError(t, m.Validate())
	assert.Equal(t, [3]int{4, 5, 2}, counts(m))
}

func TestTriangulateKeepsTriangleMeshes(t *testing.T) {
	m := octahedron(t)
	before := snapshot(m)
	require.NoError(t, m.Triangulate())
	if diff := cmp.Diff(before, snapshot(m)); diff != "" {
		t.Errorf("triangle mesh changed (-want +got):\n%s", diff)
	}
}

func TestLinearSubdivide(t *testing.T) {
	m := cube(t)
	require.NoError(t, m.Subdivide(meshedit.SubdivisionLinear))
	require.NoError(t, m.Validate())
	assert.Equal(t, [3]int{26, 48, 24}, counts(m))
	for _, f := range m.Faces() {
		assert.Equal(t, 4, f.Degree())
	}
	for _, v := range m.Vertices() {
		for _, c := range []float64{v.Pos.X, v.Pos.Y, v.Pos.Z} {
			assert.True(t, c == 0 || c == 0.5 || c == 1, "%v is off the cube", v.Pos)
		}
	}
	for _, f := range m.Faces() {
		n := f.Normal()
		c := r3.Sub(f.Center(), r3.Vec{X: 0.5, Y: 0.5, Z: 0.5})
		assert.Greater(t, r3.Dot(n, c), 0.0, "face %d points inward", f.ID())
	}
}

func TestLinearSubdivideOpenMesh(t *testing.T) {
	m := grid(t, 1, false)
	require.NoError(t, m.Subdivide(meshedit.SubdivisionLinear))
	require.NoError(t, m.Validate())
	assert.Equal(t, [3]int{9, 12, 4}, counts(m))
	assert.Equal(t, 1, m.NumBoundaries())
}

func TestCatmullClark(t *testing.T) {
	m := cube(t)
	require.NoError(t, m.Subdivide(meshedit.SubdivisionCatmullClark))
	require.NoError(t, m.Validate())
	assert.Equal(t, [3]int{26, 48, 24}, counts(m))
	// Corner 0 averages the centers of its three faces (Q) and the points of
	// its three edges (R), each (1/3, 1/3, 1/3), as (Q + 2R) / 3.
	assertVecNear(t, r3.Vec{X: 1.0 / 3, Y: 1.0 / 3, Z: 1.0 / 3}, m.Vertices()[0].Pos)
	// The point of the first edge, 0-3, averages the centers of the bottom
	// and left faces.
	assertVecNear(t, r3.Vec{X: 0.25, Y: 0.5, Z: 0.25}, m.Vertices()[8].Pos)
	// Face points are centroids.
	assertVecNear(t, r3.Vec{X: 0.5, Y: 0.5, Z: 0}, m.Vertices()[20].Pos)
}

func TestCatmullClarkPositions(t *testing.T) {
	m := cube(t)
	require.NoError(t, m.CatmullClarkSubdividePositions())
	for _, e := range m.Edges() {
		h := e.Halfedge()
		want := r3.Scale(0.5, r3.Add(h.Face().NewPos, h.Twin().Face().NewPos))
		assertVecNear(t, want, e.NewPos)
	}
	for _, v := range m.Vertices() {
		var q, r r3.Vec
		hs := v.Outgoing()
		n := float64(len(hs))
		for _, h := range hs {
			q = r3.Add(q, h.Face().NewPos)
			r = r3.Add(r, h.Edge().NewPos)
		}
		want := r3.Scale(1/n, r3.Add(r3.Add(r3.Scale(1/n, q), r3.Scale(2/n, r)), r3.Scale(n-3, v.Pos)))
		assertVecNear(t, want, v.NewPos)
	}
	// The cube stays centered and symmetric.
	assertVecNear(t, r3.Vec{X: 2.0 / 3, Y: 2.0 / 3, Z: 2.0 / 3}, m.Vertices()[6].NewPos)
}

func TestCatmullClarkRejectsBoundary(t *testing.T) {
	m := grid(t, 2, false)
	before := snapshot(m)
	err := m.Subdivide(meshedit.SubdivisionCatmullClark)
	require.ErrorIs(t, err, meshedit.ErrHasBoundary)
	if diff := cmp.Diff(before, snapshot(m)); diff != "" {
		t.Errorf("mesh changed (-want +got):\n%s", diff)
	}
}

func TestLoopSubdivide(t *testing.T) {
	m := tetrahedron(t)
	original := m.Vertices()
	require.NoError(t, m.LoopSubdivide())
	require.NoError(t, m.Validate())
	assert.Equal(t, [3]int{10, 24, 16}, counts(m))
	for _, f := range m.Faces() {
		assert.Equal(t, 3, f.Degree())
	}
	assertVecNear(t, r3.Vec{X: 0.25, Y: 0.25, Z: 0.25}, original[0].Pos)
	for _, v := range original {
		assert.False(t, v.IsNew)
		assert.Equal(t, 3, v.Degree())
	}
	newVertices := 0
	for _, v := range m.Vertices() {
		if v.IsNew {
			newVertices++
			assert.Equal(t, 6, v.Degree())
		}
	}
	assert.Equal(t, 6, newVertices)
	// The point of edge 0-1 weighs its ends by 3/8 and the apexes by 1/8.
	assertVecNear(t, r3.Vec{X: 0.5}, m.Vertices()[4].Pos)
}

func TestLoopSubdivideTwice(t *testing.T) {
	m := octahedron(t)
	require.NoError(t, m.LoopSubdivide())
	require.NoError(t, m.LoopSubdivide())
	require.NoError(t, m.Validate())
	assert.Equal(t, [3]int{66, 192, 128}, counts(m))
	assert.Equal(t, 2, m.Stats().Euler)
}

func TestLoopSubdivideRejects(t *testing.T) {
	m := grid(t, 1, true)
	assert.ErrorIs(t, m.LoopSubdivide(), meshedit.ErrHasBoundary)
	m = cube(t)
	assert.ErrorIs(t, m.LoopSubdivide(), meshedit.ErrNotTriangleMesh)
}

func TestIsotropicRemeshUniform(t *testing.T) {
	m := octahedron(t)
	cycles := faceCycles(m)
	var positions []r3.Vec
	for _, v := range m.Vertices() {
		positions = append(positions, v.Pos)
	}

	stats, err := m.IsotropicRemesh()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, stats.MeanEdgeLength, 1e-12)
	assert.Equal(t, meshedit.RemeshStats{MeanEdgeLength: stats.MeanEdgeLength}, stats)
	assert.Equal(t, cycles, faceCycles(m))
	for i, v := range m.Vertices() {
		assertVecNear(t, positions[i], v.Pos)
	}
}

func TestIsotropicRemeshSplitsLongEdges(t *testing.T) {
	m := octahedron(t)
	top := m.Vertices()[4]
	top.Pos = r3.Vec{Z: 4}
	stats, err := m.IsotropicRemesh()
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 4, stats.Splits)
	assert.Equal(t, 8+2*stats.Splits-2*stats.Collapses, m.NumFaces())
	assert.Equal(t, 2, m.Stats().Euler)
	for _, f := range m.Faces() {
		assert.Equal(t, 3, f.Degree())
	}
}

func TestIsotropicRemeshAfterLoop(t *testing.T) {
	m := tetrahedron(t)
	require.NoError(t, m.LoopSubdivide())
	for i := 0; i < 3; i++ {
		_, err := m.IsotropicRemesh()
		require.NoError(t, err)
		require.NoError(t, m.Validate())
	}
	assert.Equal(t, 2, m.Stats().Euler)
}

func TestSimplify(t *testing.T) {
	for _, steps := range []int{1, 2, 3} {
		m := octahedron(t)
		for i := 0; i < steps; i++ {
			require.NoError(t, m.LoopSubdivide())
		}
		faces := m.NumFaces()

		stats, err := m.Simplify()
		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, faces/4, stats.Target)
		assert.Equal(t, stats.Target, stats.Collapses)
		assert.Equal(t, faces-2*stats.Collapses, m.NumFaces())
		assert.Equal(t, 2, m.Stats().Euler)
	}
}

func TestSimplifyOpenMesh(t *testing.T) {
	m := grid(t, 8, true)
	faces := m.NumFaces()

	stats, err := m.Simplify()
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, faces/4, stats.Target)
	assert.Equal(t, stats.Target, stats.Collapses)
	assert.Equal(t, faces-2*stats.Collapses, m.NumFaces())
	assert.Equal(t, 1, m.NumBoundaries())
	assert.Equal(t, 32, m.Boundaries()[0].Degree())
	for _, v := range m.Vertices() {
		assert.InDelta(t, 0, v.Pos.Z, 1e-12)
	}
}

func TestSimplifyRejectsPolygons(t *testing.T) {
	_, err := cube(t).Simplify()
	assert.ErrorIs(t, err, meshedit.ErrNotTriangleMesh)
}

func TestTriangles(t *testing.T) {
	m := cube(t)
	tl := m.Triangles()
	assert.Len(t, tl.Positions, 8)
	assert.Len(t, tl.Normals, 8)
	assert.Len(t, tl.Indices, 12)
	for _, n := range tl.Normals {
		assert.InDelta(t, 1, r3.Norm(n), 1e-12)
	}
	// Triangles do not edit the mesh.
	assert.Equal(t, 6, m.NumFaces())

	n := tl.InterpolateNormal(0, 0, 0)
	assertVecNear(t, tl.Normals[tl.Indices[0][0]], n)
	n = tl.InterpolateNormal(0, 0, 1)
	assertVecNear(t, tl.Normals[tl.Indices[0][2]], n)
	n = tl.InterpolateNormal(0, 1.0/3, 1.0/3)
	assert.InDelta(t, 1, r3.Norm(n), 1e-12)
}

func TestRun(t *testing.T) {
	m := tetrahedron(t)
	err := m.Run([]meshedit.Step{
		{Pass: meshedit.PassLoop, Iterations: 2},
		{Pass: meshedit.PassLinear},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 64*3, m.NumFaces())

	err = m.Run([]meshedit.Step{{Pass: meshedit.PassLoop}}, true)
	assert.ErrorIs(t, err, meshedit.ErrNotTriangleMesh)

	_, err = meshedit.ParsePass("smooth")
	assert.Error(t, err)
	p, err := meshedit.ParsePass("catmull-clark")
	require.NoError(t, err)
	assert.Equal(t, meshedit.PassCatmullClark, p)
}
