// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logtest supports testing and benchmarking code that uses the logs
// package. It provides a capturing handler, a deterministic clock for golden
// output tests, and the synchronized multi-goroutine benchmark runner.
package logtest

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/logs"
	"golang.org/x/exp/logs/adapter/logfmt"
)

// InitialTime is the first time reported by the clocks returned from TestNow.
var InitialTime = func() time.Time {
	t, _ := time.Parse("2006/01/02 15:04:05", "2020/03/05 14:27:48")
	return t
}()

// TestNow returns a clock that starts at InitialTime and advances one second
// per call, so tests can assert on exact timestamps. The clock is safe to
// read from multiple goroutines.
func TestNow() func() time.Time {
	var calls atomic.Int64
	return func() time.Time {
		return InitialTime.Add(time.Duration(calls.Add(1)-1) * time.Second)
	}
}

// CmpOptions are cmp options for comparing Records while ignoring the
// unexported packing of attribute values.
func CmpOptions() []cmp.Option {
	return []cmp.Option{
		cmp.Transformer("Value", func(v logs.Value) any { return v.Interface() }),
		cmpopts.EquateEmpty(),
	}
}

// NewTestProvider returns a provider whose records are printed to the test
// log in logfmt form, with a fixed clock.
func NewTestProvider(tb testing.TB) *logs.Provider {
	return logs.NewProvider(&testHandler{tb: tb}, &logs.ProviderOptions{Now: TestNow()})
}

type testHandler struct {
	tb  testing.TB
	mu  sync.Mutex
	p   logfmt.Printer
	buf strings.Builder
}

func (h *testHandler) Enabled(logs.Severity) bool { return true }

func (h *testHandler) Handle(ctx context.Context, r *logs.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
	h.p.Record(&h.buf, r)
	h.tb.Log(strings.TrimSuffix(h.buf.String(), "\n"))
}
