// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gokit provides a handler that forwards log records to a go-kit
// logger.
package gokit

import (
	"context"

	"github.com/go-kit/kit/log"
	"golang.org/x/exp/logs"
)

type handler struct {
	l log.Logger
}

var _ logs.Handler = (*handler)(nil)

// NewHandler returns a handler that writes records through l.
// go-kit loggers expose no level introspection, so the handler reports every
// severity as enabled; pair it with a provider MinSeverity to gate records.
func NewHandler(l log.Logger) logs.Handler {
	return &handler{l: l}
}

func (h *handler) Enabled(logs.Severity) bool { return true }

func (h *handler) Handle(ctx context.Context, r *logs.Record) {
	keyvals := make([]any, 0, 2*(len(r.Attrs)+4))
	keyvals = append(keyvals, "level", r.Severity.String())
	if !r.Event.IsZero() {
		keyvals = append(keyvals, "id", r.Event.ID)
		if r.Event.Name != "" {
			keyvals = append(keyvals, "event", r.Event.Name)
		}
	}
	for _, a := range r.Attrs {
		keyvals = append(keyvals, a.Key, a.Value.Interface())
	}
	keyvals = append(keyvals, "msg", r.Message)
	h.l.Log(keyvals...)
}
