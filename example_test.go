package meshedit_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hajimehoshi/go-meshedit"
)

func ExampleMesh_Subdivide() {
	m, err := meshedit.NewMeshFromPolygons(cubePositions, cubeFaces)
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Stats())
	if err := m.Subdivide(meshedit.SubdivisionCatmullClark); err != nil {
		panic(err)
	}
	fmt.Println(m.Stats())
	p := m.Vertices()[0].Pos
	fmt.Printf("(%.3f, %.3f, %.3f)\n", p.X, p.Y, p.Z)
	if err := m.Triangulate(); err != nil {
		panic(err)
	}
	fmt.Println(m.Stats())
	// Output:
	// V=8 E=12 F=6 B=0 Euler=2
	// V=26 E=48 F=24 B=0 Euler=2
	// (0.333, 0.333, 0.333)
	// V=26 E=72 F=48 B=0 Euler=2
}

func ExampleMesh_Triangles() {
	m, err := meshedit.NewMeshFromPolygons([]r3.Vec{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}, [][]int{{0, 1, 2, 3}})
	if err != nil {
		panic(err)
	}
	t := m.Triangles()
	for _, tri := range t.Indices {
		a, b, c := t.Positions[tri[0]], t.Positions[tri[1]], t.Positions[tri[2]]
		fmt.Printf("(%.1f, %.1f), (%.1f, %.1f), (%.1f, %.1f)\n", a.X, a.Y, b.X, b.Y, c.X, c.Y)
	}
	// Output:
	// (0.0, 0.0), (1.0, 0.0), (1.0, 1.0)
	// (0.0, 0.0), (1.0, 1.0), (0.0, 1.0)
}
