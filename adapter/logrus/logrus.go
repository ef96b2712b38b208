// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrus provides a handler that forwards log records to a
// github.com/sirupsen/logrus logger.
package logrus

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/logs"
)

type handler struct {
	l *logrus.Logger
}

var _ logs.Handler = (*handler)(nil)

// NewHandler returns a handler that writes records through l.
func NewHandler(l *logrus.Logger) logs.Handler {
	return &handler{l: l}
}

func (h *handler) Enabled(s logs.Severity) bool {
	return h.l.IsLevelEnabled(convertSeverity(s))
}

func (h *handler) Handle(ctx context.Context, r *logs.Record) {
	fields := make(logrus.Fields, len(r.Attrs)+2)
	if !r.Event.IsZero() {
		fields["id"] = r.Event.ID
		if r.Event.Name != "" {
			fields["event"] = r.Event.Name
		}
	}
	for _, a := range r.Attrs {
		fields[a.Key] = a.Value.Interface()
	}
	entry := h.l.WithContext(ctx).WithFields(fields)
	if !r.Time.IsZero() {
		entry = entry.WithTime(r.Time)
	}
	entry.Log(convertSeverity(r.Severity), r.Message)
}

func convertSeverity(s logs.Severity) logrus.Level {
	switch s.Class() {
	case logs.Trace:
		return logrus.TraceLevel
	case logs.Debug:
		return logrus.DebugLevel
	case logs.Info:
		return logrus.InfoLevel
	case logs.Warn:
		return logrus.WarnLevel
	case logs.Error:
		return logrus.ErrorLevel
	case logs.Fatal:
		// logrus.FatalLevel exits the process; report it as an error and
		// leave termination to the caller.
		return logrus.ErrorLevel
	default:
		return logrus.TraceLevel
	}
}
