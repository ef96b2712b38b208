// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logs

import "context"

// A Logger emits log records to the handler of the Provider that created it.
// Loggers are cheap to copy and safe for concurrent use.
type Logger struct {
	name string
	p    *Provider
}

// Name returns the name the logger was requested with.
func (l *Logger) Name() string { return l.name }

// Enabled reports whether a record at severity s with the given event id
// would be processed. Callers can use it to skip building expensive
// attributes for records that would be dropped.
func (l *Logger) Enabled(ctx context.Context, s Severity, id EventID) bool {
	return l.enabled(s)
}

func (l *Logger) enabled(s Severity) bool {
	if s == Invalid || s < l.p.minSeverity.Severity() {
		return false
	}
	return l.p.handler.Enabled(s)
}

// Log emits a record at the given severity.
func (l *Logger) Log(ctx context.Context, s Severity, msg string, attrs ...Attr) {
	l.log(ctx, s, EventID{}, msg, attrs)
}

// LogEvent emits a record at the given severity, tagged with an event id.
func (l *Logger) LogEvent(ctx context.Context, s Severity, id EventID, msg string, attrs ...Attr) {
	l.log(ctx, s, id, msg, attrs)
}

// Trace emits a record at the Trace severity.
func (l *Logger) Trace(ctx context.Context, msg string, attrs ...Attr) {
	l.log(ctx, Trace, EventID{}, msg, attrs)
}

// TraceEvent emits a record at the Trace severity, tagged with an event id.
func (l *Logger) TraceEvent(ctx context.Context, id EventID, msg string, attrs ...Attr) {
	l.log(ctx, Trace, id, msg, attrs)
}

// Debug emits a record at the Debug severity.
func (l *Logger) Debug(ctx context.Context, msg string, attrs ...Attr) {
	l.log(ctx, Debug, EventID{}, msg, attrs)
}

// Info emits a record at the Info severity.
func (l *Logger) Info(ctx context.Context, msg string, attrs ...Attr) {
	l.log(ctx, Info, EventID{}, msg, attrs)
}

// Warn emits a record at the Warn severity.
func (l *Logger) Warn(ctx context.Context, msg string, attrs ...Attr) {
	l.log(ctx, Warn, EventID{}, msg, attrs)
}

// Error emits a record at the Error severity.
func (l *Logger) Error(ctx context.Context, msg string, attrs ...Attr) {
	l.log(ctx, Error, EventID{}, msg, attrs)
}

func (l *Logger) log(ctx context.Context, s Severity, id EventID, msg string, attrs []Attr) {
	if !l.enabled(s) {
		return
	}
	r := Record{
		Time:     l.p.now(),
		Severity: s,
		Event:    id,
		Logger:   l.name,
		Message:  msg,
		Attrs:    attrs,
	}
	l.p.handler.Handle(ctx, &r)
}
