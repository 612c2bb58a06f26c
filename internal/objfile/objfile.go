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

// Package objfile reads and writes polygon meshes in the Wavefront OBJ
// format. Only vertex positions and faces are kept.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hajimehoshi/go-meshedit"
)

// Read parses positions and polygons from r. Face corners may use the
// v/vt/vn forms and negative (relative) indices; texture coordinates and
// normals are ignored.
func Read(r io.Reader) ([]r3.Vec, [][]int, error) {
	var (
		positions []r3.Vec
		polygons  [][]int
	)
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("objfile: line %d: vertex needs three coordinates", line)
			}
			var p [3]float64
			for i := range p {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, nil, fmt.Errorf("objfile: line %d: %w", line, err)
				}
				p[i] = f
			}
			positions = append(positions, r3.Vec{X: p[0], Y: p[1], Z: p[2]})
		case "f":
			poly := make([]int, 0, len(fields)-1)
			for _, c := range fields[1:] {
				idx, err := strconv.Atoi(strings.SplitN(c, "/", 2)[0])
				if err != nil {
					return nil, nil, fmt.Errorf("objfile: line %d: %w", line, err)
				}
				switch {
				case idx > 0:
					idx--
				case idx < 0:
					idx += len(positions)
				default:
					return nil, nil, fmt.Errorf("objfile: line %d: index 0", line)
				}
				poly = append(poly, idx)
			}
			polygons = append(polygons, poly)
		}
	}
	if err := s.Err(); err != nil {
		return nil, nil, fmt.Errorf("objfile: %w", err)
	}
	return positions, polygons, nil
}

// ReadMesh parses r and builds a mesh from it.
func ReadMesh(r io.Reader) (*meshedit.Mesh, error) {
	positions, polygons, err := Read(r)
	if err != nil {
		return nil, err
	}
	return meshedit.NewMeshFromPolygons(positions, polygons)
}

// Write writes the vertices and polygons of m to w. Boundary loops are not
// written.
func Write(w io.Writer, m *meshedit.Mesh) error {
	bw := bufio.NewWriter(w)
	index := map[*meshedit.Vertex]int{}
	for i, v := range m.Vertices() {
		index[v] = i + 1
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(v.Pos.X), ftoa(v.Pos.Y), ftoa(v.Pos.Z))
	}
	for _, f := range m.Faces() {
		bw.WriteString("f")
		for _, v := range f.Vertices() {
			bw.WriteString(" ")
			bw.WriteString(strconv.Itoa(index[v]))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
