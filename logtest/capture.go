// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logtest

import (
	"context"
	"sync"

	"golang.org/x/exp/logs"
)

// A CaptureHandler records every log record it handles.
// It is safe for concurrent use, so it can back loggers that are hammered
// from many goroutines at once.
type CaptureHandler struct {
	mu  sync.Mutex
	got []logs.Record
}

var _ logs.Handler = (*CaptureHandler)(nil)

func (h *CaptureHandler) Enabled(logs.Severity) bool { return true }

func (h *CaptureHandler) Handle(ctx context.Context, r *logs.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c := *r
	c.Attrs = make([]logs.Attr, len(r.Attrs))
	copy(c.Attrs, r.Attrs)
	h.got = append(h.got, c)
}

// Got returns a copy of the records handled so far.
func (h *CaptureHandler) Got() []logs.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	got := make([]logs.Record, len(h.got))
	copy(got, h.got)
	return got
}

// Reset discards the records handled so far.
func (h *CaptureHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.got = h.got[:0]
}

// NewCapture returns a provider with a fixed clock and the CaptureHandler
// that receives its records.
func NewCapture() (*logs.Provider, *CaptureHandler) {
	h := &CaptureHandler{}
	p := logs.NewProvider(h, &logs.ProviderOptions{Now: TestNow()})
	return p, h
}
