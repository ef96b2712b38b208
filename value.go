// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logs

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

// Value holds any value in an efficient way that avoids allocations for
// most types.
type Value struct {
	packed  uint64
	untyped any
}

// stringptr is used in untyped when the Value holds a string.
type stringptr unsafe.Pointer

// int64Kind is used in untyped when the Value holds a signed integer.
type int64Kind struct{}

// uint64Kind is used in untyped when the Value holds an unsigned integer.
type uint64Kind struct{}

// float64Kind is used in untyped when the Value holds a floating point number.
type float64Kind struct{}

// boolKind is used in untyped when the Value holds a boolean.
type boolKind struct{}

// HasValue reports whether the value is set to any type.
func (v Value) HasValue() bool { return v.untyped != nil }

// ValueOf returns a Value for the supplied value.
func ValueOf(value any) Value {
	return Value{untyped: value}
}

// Interface returns the value.
// It never panics; values of the specialized kinds are unpacked and returned
// as their natural type.
func (v Value) Interface() any {
	switch {
	case v.IsString():
		return v.String()
	case v.IsInt64():
		return v.Int64()
	case v.IsUint64():
		return v.Uint64()
	case v.IsFloat64():
		return v.Float64()
	case v.IsBool():
		return v.Bool()
	default:
		return v.untyped
	}
}

// StringOf returns a new Value for a string.
func StringOf(s string) Value {
	return Value{packed: uint64(len(s)), untyped: stringptr(unsafe.StringData(s))}
}

// String returns the value as a string.
// This does not panic if v is not a string; it returns a string
// representation of the value in all cases.
func (v Value) String() string {
	switch {
	case v.IsString():
		return unsafe.String((*byte)(v.untyped.(stringptr)), int(v.packed))
	case v.IsInt64():
		return strconv.FormatInt(v.Int64(), 10)
	case v.IsUint64():
		return strconv.FormatUint(v.Uint64(), 10)
	case v.IsFloat64():
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case v.IsBool():
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprint(v.untyped)
	}
}

// IsString reports whether the value was built with StringOf.
func (v Value) IsString() bool {
	_, ok := v.untyped.(stringptr)
	return ok
}

// Int64Of returns a new Value for a signed integer.
func Int64Of(i int64) Value {
	return Value{packed: uint64(i), untyped: int64Kind{}}
}

// Int64 returns the value as an int64.
// It panics for any value for which IsInt64 is not true.
func (v Value) Int64() int64 {
	if !v.IsInt64() {
		panic("Int64 called on non int64 value")
	}
	return int64(v.packed)
}

// IsInt64 reports whether the value was built with Int64Of.
func (v Value) IsInt64() bool {
	_, ok := v.untyped.(int64Kind)
	return ok
}

// Uint64Of returns a new Value for an unsigned integer.
func Uint64Of(u uint64) Value {
	return Value{packed: u, untyped: uint64Kind{}}
}

// Uint64 returns the value as a uint64.
// It panics for any value for which IsUint64 is not true.
func (v Value) Uint64() uint64 {
	if !v.IsUint64() {
		panic("Uint64 called on non uint64 value")
	}
	return v.packed
}

// IsUint64 reports whether the value was built with Uint64Of.
func (v Value) IsUint64() bool {
	_, ok := v.untyped.(uint64Kind)
	return ok
}

// Float64Of returns a new Value for a floating point number.
func Float64Of(f float64) Value {
	return Value{packed: math.Float64bits(f), untyped: float64Kind{}}
}

// Float64 returns the value as a float64.
// It panics for any value for which IsFloat64 is not true.
func (v Value) Float64() float64 {
	if !v.IsFloat64() {
		panic("Float64 called on non float64 value")
	}
	return math.Float64frombits(v.packed)
}

// IsFloat64 reports whether the value was built with Float64Of.
func (v Value) IsFloat64() bool {
	_, ok := v.untyped.(float64Kind)
	return ok
}

// BoolOf returns a new Value for a bool.
func BoolOf(b bool) Value {
	if b {
		return Value{packed: 1, untyped: boolKind{}}
	}
	return Value{packed: 0, untyped: boolKind{}}
}

// Bool returns the value as a bool.
// It panics for any value for which IsBool is not true.
func (v Value) Bool() bool {
	if !v.IsBool() {
		panic("Bool called on non bool value")
	}
	return v.packed != 0
}

// IsBool reports whether the value was built with BoolOf.
func (v Value) IsBool() bool {
	_, ok := v.untyped.(boolKind)
	return ok
}
