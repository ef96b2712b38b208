// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logtest

import "sync"

// A Barrier blocks a fixed number of participants until all of them have
// arrived, then releases them together. It is cyclic: once released it is
// immediately ready for the next round, so the same instance can order an
// arbitrary number of rounds.
//
// There is no cancellation or timeout: a participant that never calls Wait
// blocks all others forever. That is acceptable for a benchmark harness and
// makes the Barrier unsuitable as a general purpose primitive.
type Barrier struct {
	mu   sync.Mutex
	cond sync.Cond

	// participants is fixed at construction; count decrements from it as
	// arrivals come in and is reset by the last arrival of each round.
	participants int
	count        int

	// gen increments each time the barrier releases. A waiter blocks until
	// the generation it observed on arrival has changed, so it cannot slip
	// through the same round twice.
	gen uint64
}

// NewBarrier returns a Barrier for n participants.
// It panics if n is less than 1; a barrier with no participants would never
// release.
func NewBarrier(n int) *Barrier {
	if n < 1 {
		panic("logtest: barrier must have at least one participant")
	}
	b := &Barrier{participants: n, count: n}
	b.cond.L = &b.mu
	return b
}

// Wait blocks until all participants have called Wait, then returns in every
// participant. The barrier resets for the next round before any of them is
// released.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.gen
	b.count--
	if b.count == 0 {
		b.gen++
		b.count = b.participants
		b.cond.Broadcast()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
}
