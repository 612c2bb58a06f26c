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

// Package telemetry exports the outcome of mesh operators and passes as
// Prometheus metrics.
package telemetry

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hajimehoshi/go-meshedit"
)

const (
	resultOK       = "ok"
	resultDeclined = "declined"
	resultError    = "error"
)

// Metrics implements meshedit.Observer.
type Metrics struct {
	operators *prometheus.CounterVec
	passes    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

var _ meshedit.Observer = (*Metrics)(nil)

// New registers the meshedit metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		operators: f.NewCounterVec(prometheus.CounterOpts{
			Name: "meshedit_operator_total",
			Help: "Local mesh operators by operator and result",
		}, []string{"op", "result"}),
		passes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "meshedit_pass_total",
			Help: "Global mesh passes by pass and result",
		}, []string{"pass", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "meshedit_pass_duration_seconds",
			Help:    "Global mesh pass duration",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"pass"}),
	}
}

func result(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, meshedit.ErrDeclined):
		return resultDeclined
	}
	return resultError
}

// ObserveOperator counts one operator call.
func (m *Metrics) ObserveOperator(op string, err error) {
	m.operators.WithLabelValues(op, result(err)).Inc()
}

// ObservePass counts one pass and records its duration.
func (m *Metrics) ObservePass(pass string, elapsed time.Duration, err error) {
	m.passes.WithLabelValues(pass, result(err)).Inc()
	m.duration.WithLabelValues(pass).Observe(elapsed.Seconds())
}
