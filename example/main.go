//go:build example
// +build example

package main

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hajimehoshi/go-meshedit"
)

func main() {
	positions := []r3.Vec{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	polygons := [][]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	m, err := meshedit.NewMeshFromPolygons(positions, polygons)
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Stats())

	steps := []meshedit.Step{
		{Pass: meshedit.PassLoop, Iterations: 3},
		{Pass: meshedit.PassRemesh, Iterations: 2},
		{Pass: meshedit.PassSimplify},
	}
	if err := m.Run(steps, true); err != nil {
		panic(err)
	}
	fmt.Println(m.Stats())

	t := m.Triangles()
	for i := 0; i < len(t.Indices) && i < 3; i++ {
		n := t.InterpolateNormal(i, 1.0/3, 1.0/3)
		fmt.Printf("triangle %d: normal (%.2f, %.2f, %.2f)\n", i, n.X, n.Y, n.Z)
	}
}
