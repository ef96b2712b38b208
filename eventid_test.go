// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logs_test

import (
	"testing"

	"golang.org/x/exp/logs"
)

func TestEventID(t *testing.T) {
	var zero logs.EventID
	if !zero.IsZero() {
		t.Error("zero EventID does not report IsZero")
	}
	id := logs.EventID{ID: 0x12345678, Name: "Company.Component.FunctionEnter"}
	if id.IsZero() {
		t.Error("non-zero EventID reports IsZero")
	}
	if got, want := id.String(), "305419896:Company.Component.FunctionEnter"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := (logs.EventID{ID: 7}).String(), "7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	// EventIDs are values: equality is field-wise.
	if id != (logs.EventID{ID: 0x12345678, Name: "Company.Component.FunctionEnter"}) {
		t.Error("identical EventIDs compare unequal")
	}
}
