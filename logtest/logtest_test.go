// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logtest_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/logs"
	"golang.org/x/exp/logs/logtest"
)

func TestTestNow(t *testing.T) {
	now := logtest.TestNow()
	if got := now(); !got.Equal(logtest.InitialTime) {
		t.Errorf("first call = %v, want %v", got, logtest.InitialTime)
	}
	if got, want := now(), logtest.InitialTime.Add(time.Second); !got.Equal(want) {
		t.Errorf("second call = %v, want %v", got, want)
	}
	// Independent clocks do not share state.
	if got := logtest.TestNow()(); !got.Equal(logtest.InitialTime) {
		t.Errorf("fresh clock = %v, want %v", got, logtest.InitialTime)
	}
}

func TestTestNowConcurrent(t *testing.T) {
	// Concurrent readers must each observe a distinct tick.
	const n = 8
	now := logtest.TestNow()
	times := make([]time.Time, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			times[i] = now()
		}(i)
	}
	wg.Wait()
	seen := make(map[time.Time]bool, n)
	for _, tm := range times {
		if seen[tm] {
			t.Fatalf("time %v handed out twice", tm)
		}
		seen[tm] = true
	}
}

func TestNewTestProvider(t *testing.T) {
	ctx := context.Background()
	p := logtest.NewTestProvider(t)
	logger := p.Logger("harness")
	logger.Info(ctx, "visible in the test log", logs.Int64("n", 1))
	logger.Debug(ctx, "also visible")
}

func TestCaptureReset(t *testing.T) {
	ctx := context.Background()
	p, h := logtest.NewCapture()
	logger := p.Logger("capture")

	logger.Info(ctx, "one")
	logger.Info(ctx, "two", logs.String("k", "v"))
	want := []logs.Record{
		{
			Time:     logtest.InitialTime,
			Severity: logs.Info,
			Logger:   "capture",
			Message:  "one",
		},
		{
			Time:     logtest.InitialTime.Add(time.Second),
			Severity: logs.Info,
			Logger:   "capture",
			Message:  "two",
			Attrs:    []logs.Attr{logs.String("k", "v")},
		},
	}
	if diff := cmp.Diff(want, h.Got(), logtest.CmpOptions()...); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	h.Reset()
	if got := h.Got(); len(got) != 0 {
		t.Errorf("records after Reset = %v, want none", got)
	}
}
