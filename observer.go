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
	"time"

	"go.uber.org/zap"
)

// Observer receives the outcome of every operator and global pass run on a
// mesh. err is nil on success.
type Observer interface {
	ObserveOperator(op string, err error)
	ObservePass(pass string, elapsed time.Duration, err error)
}

// SetObserver installs o on m. Pass nil to remove it.
func (m *Mesh) SetObserver(o Observer) {
	m.observer = o
}

// finish reports the outcome of the operator op and returns err.
func (m *Mesh) finish(op string, err error) error {
	if err != nil {
		Logger().Debug("operator declined", zap.String("op", op), zap.Error(err))
	}
	if m.observer != nil {
		m.observer.ObserveOperator(op, err)
	}
	return err
}

// finishPass reports the outcome of the global pass started at start.
func (m *Mesh) finishPass(pass string, start time.Time, err error) error {
	if err != nil {
		Logger().Warn("pass aborted", zap.String("pass", pass), zap.Error(err))
	} else {
		Logger().Info("pass done",
			zap.String("pass", pass),
			zap.Int("vertices", m.numVertices),
			zap.Int("edges", m.numEdges),
			zap.Int("faces", m.numFaces))
	}
	if m.observer != nil {
		m.observer.ObservePass(pass, time.Since(start), err)
	}
	return err
}

// usable returns ErrCorrupt when a previous Validate failed.
func (m *Mesh) usable() error {
	if m.corrupt != nil {
		return ErrCorrupt
	}
	return nil
}
