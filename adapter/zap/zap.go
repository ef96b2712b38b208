// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zap provides a handler that forwards log records to a
// go.uber.org/zap logger.
package zap

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/logs"
)

type handler struct {
	l *zap.Logger
}

var _ logs.Handler = (*handler)(nil)

// NewHandler returns a handler that writes records through l.
func NewHandler(l *zap.Logger) logs.Handler {
	return &handler{l: l}
}

func (h *handler) Enabled(s logs.Severity) bool {
	return h.l.Core().Enabled(convertSeverity(s))
}

func (h *handler) Handle(ctx context.Context, r *logs.Record) {
	ce := h.l.Check(convertSeverity(r.Severity), r.Message)
	if ce == nil {
		return
	}
	if !r.Time.IsZero() {
		ce.Time = r.Time
	}
	fields := make([]zap.Field, 0, len(r.Attrs)+2)
	if !r.Event.IsZero() {
		fields = append(fields, zap.Int64("id", r.Event.ID))
		if r.Event.Name != "" {
			fields = append(fields, zap.String("event", r.Event.Name))
		}
	}
	for _, a := range r.Attrs {
		fields = append(fields, newField(a))
	}
	ce.Write(fields...)
}

func newField(a logs.Attr) zap.Field {
	switch v := a.Value; {
	case v.IsString():
		return zap.String(a.Key, v.String())
	case v.IsInt64():
		return zap.Int64(a.Key, v.Int64())
	case v.IsUint64():
		return zap.Uint64(a.Key, v.Uint64())
	case v.IsFloat64():
		return zap.Float64(a.Key, v.Float64())
	case v.IsBool():
		return zap.Bool(a.Key, v.Bool())
	default:
		return zap.Any(a.Key, v.Interface())
	}
}

func convertSeverity(s logs.Severity) zapcore.Level {
	switch s.Class() {
	case logs.Trace, logs.Debug:
		return zapcore.DebugLevel
	case logs.Info:
		return zapcore.InfoLevel
	case logs.Warn:
		return zapcore.WarnLevel
	case logs.Error:
		return zapcore.ErrorLevel
	case logs.Fatal:
		// Do not terminate the process on behalf of the caller.
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}
