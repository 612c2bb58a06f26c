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

	"go.uber.org/zap"
)

// Pass names a global algorithm that can be run by Apply.
type Pass string

const (
	PassTriangulate  Pass = "triangulate"
	PassLinear       Pass = "linear"
	PassCatmullClark Pass = "catmull-clark"
	PassLoop         Pass = "loop"
	PassRemesh       Pass = "remesh"
	PassSimplify     Pass = "simplify"
)

// Passes lists every known pass.
var Passes = []Pass{
	PassTriangulate,
	PassLinear,
	PassCatmullClark,
	PassLoop,
	PassRemesh,
	PassSimplify,
}

// ParsePass returns the pass named s.
func ParsePass(s string) (Pass, error) {
	for _, p := range Passes {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("meshedit: unknown pass %q", s)
}

// Apply runs the pass p once.
func (m *Mesh) Apply(p Pass) error {
	switch p {
	case PassTriangulate:
		return m.Triangulate()
	case PassLinear:
		return m.Subdivide(SubdivisionLinear)
	case PassCatmullClark:
		return m.Subdivide(SubdivisionCatmullClark)
	case PassLoop:
		return m.LoopSubdivide()
	case PassRemesh:
		stats, err := m.IsotropicRemesh()
		Logger().Debug("remesh",
			zap.Int("splits", stats.Splits),
			zap.Int("collapses", stats.Collapses),
			zap.Int("flips", stats.Flips),
			zap.Int("declined", stats.Declined))
		return err
	case PassSimplify:
		stats, err := m.Simplify()
		Logger().Debug("simplify",
			zap.Int("target", stats.Target),
			zap.Int("collapses", stats.Collapses))
		return err
	}
	return fmt.Errorf("meshedit: unknown pass %q", string(p))
}

// Step is one entry of a pipeline: a pass and how many times to run it.
type Step struct {
	Pass       Pass
	Iterations int
}

// Run applies every step in order. When validate is set the mesh is checked
// after each iteration, and the first failure stops the pipeline.
func (m *Mesh) Run(steps []Step, validate bool) error {
	for i, s := range steps {
		n := s.Iterations
		if n <= 0 {
			n = 1
		}
		for j := 0; j < n; j++ {
			if err := m.Apply(s.Pass); err != nil {
				return fmt.Errorf("meshedit: step %d (%s), iteration %d: %w", i, s.Pass, j, err)
			}
			if !validate {
				continue
			}
			if err := m.Validate(); err != nil {
				return fmt.Errorf("meshedit: step %d (%s), iteration %d: %w", i, s.Pass, j, err)
			}
		}
	}
	return nil
}
