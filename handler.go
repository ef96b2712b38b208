// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logs

import "context"

// A Handler receives log records from loggers as they occur.
//
// Handle is called synchronously from the log call site, so it should return
// quickly so as not to hold up user code, and it must be safe to call
// concurrently from multiple goroutines. The record is only valid for the
// duration of the call; handlers that retain it must copy it first,
// including the Attrs slice.
type Handler interface {
	// Enabled reports whether the handler will do anything with a record
	// of the given severity. Loggers use it to avoid building records that
	// would be discarded.
	Enabled(Severity) bool
	// Handle processes a record.
	Handle(context.Context, *Record)
}

// Discard is a Handler that reports disabled for every severity and drops
// every record. It is the backend of providers that have not been given a
// handler.
var Discard Handler = discard{}

type discard struct{}

func (discard) Enabled(Severity) bool           { return false }
func (discard) Handle(context.Context, *Record) {}
