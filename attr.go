// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logs

// An Attr is a key/value pair attached to a log record.
type Attr struct {
	Key   string
	Value Value
}

// String returns the attr in key=value form.
func (a Attr) String() string {
	return a.Key + "=" + a.Value.String()
}

// String returns an Attr for a string value.
func String(key, value string) Attr {
	return Attr{Key: key, Value: StringOf(value)}
}

// Int returns an Attr for an int.
func Int(key string, value int) Attr {
	return Int64(key, int64(value))
}

// Int64 returns an Attr for an int64.
func Int64(key string, value int64) Attr {
	return Attr{Key: key, Value: Int64Of(value)}
}

// Uint64 returns an Attr for a uint64.
func Uint64(key string, value uint64) Attr {
	return Attr{Key: key, Value: Uint64Of(value)}
}

// Float64 returns an Attr for a float64.
func Float64(key string, value float64) Attr {
	return Attr{Key: key, Value: Float64Of(value)}
}

// Bool returns an Attr for a bool.
func Bool(key string, value bool) Attr {
	return Attr{Key: key, Value: BoolOf(value)}
}

// Any returns an Attr for the supplied value with no specialized
// representation.
func Any(key string, value any) Attr {
	return Attr{Key: key, Value: ValueOf(value)}
}
