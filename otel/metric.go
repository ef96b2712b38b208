// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/exp/logs"
)

// A MetricHandler counts handled log records on an OpenTelemetry counter,
// partitioned by severity class. It handles no record content; compose it
// with another handler when the records should also be delivered somewhere.
type MetricHandler struct {
	counter metric.Int64Counter
	// byClass caches the measurement option for each severity band so the
	// hot path performs no attribute construction.
	byClass map[logs.Severity]metric.MeasurementOption
}

var _ logs.Handler = (*MetricHandler)(nil)

// NewMetricHandler creates a MetricHandler recording on an instrument named
// "log.records" obtained from m.
func NewMetricHandler(m metric.Meter) (*MetricHandler, error) {
	c, err := m.Int64Counter("log.records",
		metric.WithDescription("Number of log records handled."))
	if err != nil {
		return nil, err
	}
	h := &MetricHandler{
		counter: c,
		byClass: make(map[logs.Severity]metric.MeasurementOption),
	}
	for _, class := range []logs.Severity{
		logs.Invalid, logs.Trace, logs.Debug, logs.Info, logs.Warn, logs.Error, logs.Fatal,
	} {
		h.byClass[class] = metric.WithAttributes(
			attribute.String("severity", class.String()))
	}
	return h, nil
}

func (h *MetricHandler) Enabled(logs.Severity) bool { return true }

func (h *MetricHandler) Handle(ctx context.Context, r *logs.Record) {
	h.counter.Add(ctx, 1, h.byClass[r.Severity.Class()])
}
