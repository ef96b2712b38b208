// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logfmt provides a handler that prints log records in logfmt form,
// one record per line.
package logfmt

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/logs"
)

// TimeFormat is the layout used for record timestamps.
const TimeFormat = "2006/01/02 15:04:05"

// A Handler prints records to an io.Writer in logfmt form.
// Each record is written with a single Write call.
type Handler struct {
	mu sync.Mutex
	w  io.Writer
	p  Printer
}

var _ logs.Handler = (*Handler)(nil)

// NewHandler returns a handler printing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w}
}

func (h *Handler) Enabled(logs.Severity) bool { return true }

func (h *Handler) Handle(ctx context.Context, r *logs.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.p.Record(h.w, r)
}

// A Printer appends the logfmt rendering of records to a writer.
// The zero value is ready to use. A Printer is not safe for concurrent use.
type Printer struct {
	buf     strings.Builder
	needSep bool
}

// Record prints a single record to w, terminated by a newline.
func (p *Printer) Record(w io.Writer, r *logs.Record) {
	p.buf.Reset()
	p.needSep = false
	if !r.Time.IsZero() {
		p.pair("time", logs.StringOf(r.Time.Format(TimeFormat)))
	}
	if r.Severity != logs.Invalid {
		p.pair("level", logs.StringOf(r.Severity.String()))
	}
	if r.Logger != "" {
		p.pair("logger", logs.StringOf(r.Logger))
	}
	if !r.Event.IsZero() {
		p.pair("id", logs.Int64Of(r.Event.ID))
		if r.Event.Name != "" {
			p.pair("event", logs.StringOf(r.Event.Name))
		}
	}
	for _, a := range r.Attrs {
		if a.Key == "" {
			continue
		}
		p.pair(a.Key, a.Value)
	}
	if r.Message != "" {
		p.pair("msg", logs.StringOf(r.Message))
	}
	p.buf.WriteByte('\n')
	io.WriteString(w, p.buf.String())
}

func (p *Printer) pair(key string, v logs.Value) {
	if p.needSep {
		p.buf.WriteByte(' ')
	}
	p.needSep = true
	p.buf.WriteString(key)
	p.buf.WriteByte('=')
	p.value(v)
}

func (p *Printer) value(v logs.Value) {
	switch {
	case v.IsString():
		p.quote(v.String())
	case v.IsInt64():
		p.buf.WriteString(strconv.FormatInt(v.Int64(), 10))
	case v.IsUint64():
		p.buf.WriteString(strconv.FormatUint(v.Uint64(), 10))
	case v.IsFloat64():
		p.buf.WriteString(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
	case v.IsBool():
		if v.Bool() {
			p.buf.WriteString("true")
		} else {
			p.buf.WriteString("false")
		}
	default:
		p.quote(v.String())
	}
}

func (p *Printer) quote(s string) {
	if stringNeedsQuote(s) {
		p.buf.WriteString(strconv.Quote(s))
	} else {
		p.buf.WriteString(s)
	}
}

func stringNeedsQuote(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r == utf8.RuneError || r == ' ' || r == '"' || r == '=' || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}
