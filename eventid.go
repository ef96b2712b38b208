// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logs

import "strconv"

// An EventID identifies a logical log statement independently of its message
// text. The numeric ID is stable across releases; the name is a
// human-readable label such as "Company.Component.FunctionEnter".
//
// EventIDs are compared by value. The zero EventID means that a record
// carries no event identity.
type EventID struct {
	ID   int64
	Name string
}

// IsZero reports whether e carries no identity.
func (e EventID) IsZero() bool { return e.ID == 0 && e.Name == "" }

func (e EventID) String() string {
	if e.Name == "" {
		return strconv.FormatInt(e.ID, 10)
	}
	return strconv.FormatInt(e.ID, 10) + ":" + e.Name
}
