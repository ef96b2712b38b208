// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logr provides a handler that forwards log records to a
// github.com/go-logr/logr logger.
package logr

import (
	"context"

	"github.com/go-logr/logr"
	"golang.org/x/exp/logs"
)

type handler struct {
	l logr.Logger
}

var _ logs.Handler = (*handler)(nil)

// NewHandler returns a handler that writes records through l.
// Severities at Error and above are delivered through the logger's error
// path. Everything else becomes an Info call at a verbosity derived from the
// severity: info 0, debug 1, trace 2, since logr verbosity increases as
// severity decreases.
func NewHandler(l logr.Logger) logs.Handler {
	return &handler{l: l}
}

func (h *handler) Enabled(s logs.Severity) bool {
	if s.Class() >= logs.Error {
		return true
	}
	return h.l.V(verbosity(s)).Enabled()
}

func (h *handler) Handle(ctx context.Context, r *logs.Record) {
	keyvals := make([]any, 0, 2*(len(r.Attrs)+2))
	if !r.Event.IsZero() {
		keyvals = append(keyvals, "id", r.Event.ID)
		if r.Event.Name != "" {
			keyvals = append(keyvals, "event", r.Event.Name)
		}
	}
	for _, a := range r.Attrs {
		keyvals = append(keyvals, a.Key, a.Value.Interface())
	}
	if r.Severity.Class() >= logs.Error {
		h.l.Error(nil, r.Message, keyvals...)
		return
	}
	h.l.V(verbosity(r.Severity)).Info(r.Message, keyvals...)
}

func verbosity(s logs.Severity) int {
	switch s.Class() {
	case logs.Trace:
		return 2
	case logs.Debug:
		return 1
	default:
		return 0
	}
}
