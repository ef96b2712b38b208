// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logs provides a minimal structured logging API modeled on the
// OpenTelemetry log data model.
//
// A Provider hands out named Logger instances that deliver Records to a
// Handler. The package defines the interchange types (Severity, EventID,
// Attr, Record) and leaves formatting and delivery to Handler
// implementations; the adapter packages supply handlers for common logging
// backends.
package logs
