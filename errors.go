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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDeclined is wrapped by every error returned from a local operator
	// that refused to run. A declined operator leaves the mesh untouched.
	ErrDeclined = errors.New("meshedit: operation declined")

	// ErrCorrupt is returned once Validate has found a broken invariant.
	ErrCorrupt = errors.New("meshedit: mesh is corrupt")

	ErrNotTriangleMesh = errors.New("meshedit: mesh is not a triangle mesh")
	ErrHasBoundary     = errors.New("meshedit: mesh has a boundary")
	ErrSimplifyAborted = errors.New("meshedit: simplification aborted")
	ErrInvalidPolygons = errors.New("meshedit: invalid polygon soup")
)

// DeclineError describes why an operator declined.
type DeclineError struct {
	Op     string
	Reason string
}

func (e *DeclineError) Error() string {
	return fmt.Sprintf("meshedit: %s declined: %s", e.Op, e.Reason)
}

func (e *DeclineError) Unwrap() error {
	return ErrDeclined
}

func decline(op, reason string) error {
	return &DeclineError{Op: op, Reason: reason}
}

// ValidationError lists every problem found by Validate.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	const maxShown = 5
	var b strings.Builder
	fmt.Fprintf(&b, "meshedit: invalid mesh: %d problem(s)", len(e.Problems))
	for i, p := range e.Problems {
		if i == maxShown {
			fmt.Fprintf(&b, "; ...")
			break
		}
		b.WriteString("; ")
		b.WriteString(p)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrCorrupt
}
