// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logs

import (
	"sync"
	"sync/atomic"
	"time"
)

// A Provider hands out named Logger instances that share a Handler.
// Requesting the same name twice returns the same instance.
type Provider struct {
	opts    ProviderOptions
	handler Handler
	now     func() time.Time

	minSeverity AtomicSeverity

	mu      sync.Mutex
	loggers map[string]*Logger
}

// ProviderOptions configures a Provider.
type ProviderOptions struct {
	// If non-nil, Now is used to timestamp records on delivery.
	// It exists so tests can fix the clock.
	Now func() time.Time

	// MinSeverity is the initial minimum severity; records below it are
	// dropped without reaching the handler. The zero value admits
	// everything. It can be changed later with SetMinSeverity.
	MinSeverity Severity
}

// NewProvider creates a Provider delivering records to the supplied handler.
// A nil opts is valid and means default options.
func NewProvider(handler Handler, opts *ProviderOptions) *Provider {
	if handler == nil {
		panic("handler must not be nil")
	}
	p := &Provider{
		handler: handler,
		loggers: map[string]*Logger{},
	}
	if opts != nil {
		p.opts = *opts
	}
	p.now = p.opts.Now
	if p.now == nil {
		p.now = time.Now
	}
	p.minSeverity.Set(p.opts.MinSeverity)
	return p
}

// Logger returns the logger with the given name, creating it on first use.
func (p *Provider) Logger(name string) *Logger {
	p.mu.Lock()
	defer p.mu.Unlock()
	l := p.loggers[name]
	if l == nil {
		l = &Logger{name: name, p: p}
		p.loggers[name] = l
	}
	return l
}

// SetMinSeverity changes the minimum severity admitted by the provider's
// loggers. It is safe to call concurrently with logging.
func (p *Provider) SetMinSeverity(s Severity) {
	p.minSeverity.Set(s)
}

// An AtomicSeverity is a Severity that can be read and written safely by
// multiple goroutines.
type AtomicSeverity struct {
	val atomic.Uint32
}

// Severity returns the current value.
func (a *AtomicSeverity) Severity() Severity { return Severity(a.val.Load()) }

// Set sets the value to s.
func (a *AtomicSeverity) Set(s Severity) { a.val.Store(uint32(s)) }

// defaultProvider is the process wide fallback used by Default.
// Loggers should normally be injected; this exists only so bootstrap code
// has somewhere to publish a provider before wiring is complete.
var defaultProvider atomic.Pointer[Provider]

// SetDefault sets the provider returned by Default. Passing nil resets it.
func SetDefault(p *Provider) {
	defaultProvider.Store(p)
}

// Default returns the provider set with SetDefault, or a provider backed by
// the Discard handler if none has been set.
func Default() *Provider {
	if p := defaultProvider.Load(); p != nil {
		return p
	}
	return discardProvider
}

var discardProvider = NewProvider(Discard, nil)
