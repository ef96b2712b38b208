// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logfmt_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/logs"
	"golang.org/x/exp/logs/adapter/logfmt"
	"golang.org/x/exp/logs/logtest"
)

func TestPrint(t *testing.T) {
	ctx := context.Background()
	buf := &strings.Builder{}
	p := logs.NewProvider(logfmt.NewHandler(buf), &logs.ProviderOptions{Now: logtest.TestNow()})
	logger := p.Logger("test")

	logger.Trace(ctx, "a simple message")
	logger.Trace(ctx, "a message with attributes",
		logs.Int64("process_id", 12347),
		logs.Int64("thread_id", 12348))
	logger.TraceEvent(ctx, logs.EventID{ID: 0x12345678, Name: "Company.Component.FunctionEnter"},
		"function enter", logs.String("arg", "some value"))
	logger.Info(ctx, "mixed values",
		logs.String("empty", ""),
		logs.Bool("ok", true),
		logs.Float64("ratio", 0.25),
		logs.Uint64("big", 1<<63))

	want := strings.TrimLeft(`
time="2020/03/05 14:27:48" level=trace logger=test msg="a simple message"
time="2020/03/05 14:27:49" level=trace logger=test process_id=12347 thread_id=12348 msg="a message with attributes"
time="2020/03/05 14:27:50" level=trace logger=test id=305419896 event=Company.Component.FunctionEnter arg="some value" msg="function enter"
time="2020/03/05 14:27:51" level=info logger=test empty="" ok=true ratio=0.25 big=9223372036854775808 msg="mixed values"
`, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestQuoting(t *testing.T) {
	ctx := context.Background()
	buf := &strings.Builder{}
	p := logs.NewProvider(logfmt.NewHandler(buf), nil)
	logger := p.Logger("")

	logger.Log(ctx, logs.Debug, "x", logs.String("a", `with "quotes"`), logs.String("b", "k=v"))
	got := buf.String()
	for _, want := range []string{`a="with \"quotes\""`, `b="k=v"`, "msg=x"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q does not contain %q", got, want)
		}
	}
}
