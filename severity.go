// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logs

// Severity is the importance of a log record.
// The numbering follows the open telemetry log data model: smaller values
// correspond to less severe records (such as trace records), larger values
// to more severe ones (such as errors and fatal conditions).
//
// The following table defines the meaning of the severity bands:
// 1-4	TRACE	A fine-grained debugging record. Typically disabled in default configurations.
// 5-8	DEBUG	A debugging record.
// 9-12	INFO	An informational record. Indicates that something happened.
// 13-16	WARN	Not an error but likely more important than an informational record.
// 17-20	ERROR	Something went wrong.
// 21-24	FATAL	An application or system crash.
//
// See https://github.com/open-telemetry/opentelemetry-specification/blob/main/specification/logs/data-model.md#severity-fields
// for more details.
type Severity uint8

const (
	Invalid = Severity(0)
	Trace   = Severity(1)
	Debug   = Severity(5)
	Info    = Severity(9)
	Warn    = Severity(13)
	Error   = Severity(17)
	Fatal   = Severity(21)

	// MaxSeverity is the largest valid severity value.
	MaxSeverity = Severity(24)
)

// Class returns the base severity of the band s belongs to, so that for
// example both Debug and Debug+3 report Debug. It returns Invalid for values
// outside the valid range.
func (s Severity) Class() Severity {
	if s > MaxSeverity {
		return Invalid
	}
	switch {
	case s >= Fatal:
		return Fatal
	case s >= Error:
		return Error
	case s >= Warn:
		return Warn
	case s >= Info:
		return Info
	case s >= Debug:
		return Debug
	case s >= Trace:
		return Trace
	default:
		return Invalid
	}
}

func (s Severity) String() string {
	if s == Invalid || s > MaxSeverity {
		return "invalid"
	}
	name := [...]string{"trace", "debug", "info", "warn", "error", "fatal"}[(s-1)/4]
	switch (s - 1) % 4 {
	case 1:
		return name + "2"
	case 2:
		return name + "3"
	case 3:
		return name + "4"
	}
	return name
}
