// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logs

import "time"

// A Record holds the information about a single log statement.
// It combines the record metadata with the user supplied attributes.
type Record struct {
	// Time is the time at which the record was delivered to the handler.
	Time time.Time
	// Severity is the importance of the record.
	Severity Severity
	// Event identifies the logical log statement. It may be zero.
	Event EventID
	// Logger is the name of the Logger that produced the record.
	Logger string
	// Message is the record text.
	Message string
	// Attrs holds the attributes of the record, in the order supplied by
	// the caller.
	Attrs []Attr
}
