// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerolog provides a handler that forwards log records to a
// github.com/rs/zerolog logger.
package zerolog

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/exp/logs"
)

type handler struct {
	l zerolog.Logger
}

var _ logs.Handler = (*handler)(nil)

// NewHandler returns a handler that writes records through l.
func NewHandler(l zerolog.Logger) logs.Handler {
	return &handler{l: l}
}

func (h *handler) Enabled(s logs.Severity) bool {
	return convertSeverity(s) >= h.l.GetLevel()
}

func (h *handler) Handle(ctx context.Context, r *logs.Record) {
	e := h.l.WithLevel(convertSeverity(r.Severity))
	if e == nil {
		return
	}
	if !r.Time.IsZero() {
		e = e.Time(zerolog.TimestampFieldName, r.Time)
	}
	if !r.Event.IsZero() {
		e = e.Int64("id", r.Event.ID)
		if r.Event.Name != "" {
			e = e.Str("event", r.Event.Name)
		}
	}
	for _, a := range r.Attrs {
		switch v := a.Value; {
		case v.IsString():
			e = e.Str(a.Key, v.String())
		case v.IsInt64():
			e = e.Int64(a.Key, v.Int64())
		case v.IsUint64():
			e = e.Uint64(a.Key, v.Uint64())
		case v.IsFloat64():
			e = e.Float64(a.Key, v.Float64())
		case v.IsBool():
			e = e.Bool(a.Key, v.Bool())
		default:
			e = e.Interface(a.Key, v.Interface())
		}
	}
	e.Msg(r.Message)
}

func convertSeverity(s logs.Severity) zerolog.Level {
	switch s.Class() {
	case logs.Trace:
		return zerolog.TraceLevel
	case logs.Debug:
		return zerolog.DebugLevel
	case logs.Info:
		return zerolog.InfoLevel
	case logs.Warn:
		return zerolog.WarnLevel
	case logs.Error:
		return zerolog.ErrorLevel
	case logs.Fatal:
		// zerolog's Fatal event exits the process; stay at error.
		return zerolog.ErrorLevel
	default:
		return zerolog.TraceLevel
	}
}
