// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otel bridges log records into OpenTelemetry traces and metrics.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/logs"
)

// A SpanEventHandler attaches log records as events to the span found on the
// record's context. Records arriving without a recording span are dropped.
type SpanEventHandler struct{}

var _ logs.Handler = SpanEventHandler{}

// NewSpanEventHandler returns a SpanEventHandler.
func NewSpanEventHandler() SpanEventHandler {
	return SpanEventHandler{}
}

func (SpanEventHandler) Enabled(logs.Severity) bool { return true }

func (SpanEventHandler) Handle(ctx context.Context, r *logs.Record) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	attrs := make([]attribute.KeyValue, 0, len(r.Attrs)+3)
	attrs = append(attrs, attribute.String("severity", r.Severity.String()))
	if !r.Event.IsZero() {
		attrs = append(attrs, attribute.Int64("id", r.Event.ID))
		if r.Event.Name != "" {
			attrs = append(attrs, attribute.String("event", r.Event.Name))
		}
	}
	for _, a := range r.Attrs {
		attrs = append(attrs, attrToAttribute(a))
	}
	opts := []trace.EventOption{trace.WithAttributes(attrs...)}
	if !r.Time.IsZero() {
		opts = append(opts, trace.WithTimestamp(r.Time))
	}
	span.AddEvent(r.Message, opts...)
}

func attrToAttribute(a logs.Attr) attribute.KeyValue {
	switch v := a.Value; {
	case v.IsString():
		return attribute.String(a.Key, v.String())
	case v.IsInt64():
		return attribute.Int64(a.Key, v.Int64())
	case v.IsUint64():
		// The attribute package has no unsigned kind; fall back to text.
		return attribute.String(a.Key, v.String())
	case v.IsFloat64():
		return attribute.Float64(a.Key, v.Float64())
	case v.IsBool():
		return attribute.Bool(a.Key, v.Bool())
	default:
		return attribute.String(a.Key, v.String())
	}
}
