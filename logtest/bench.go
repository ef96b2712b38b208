// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logtest

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// RunConcurrent runs fn simultaneously on one goroutine per available
// processor and arranges for the benchmark timer to cover only the interval
// during which every goroutine is executing fn. Goroutine startup and
// teardown are excluded from the measurement.
//
// Worker 0 calls fn exactly b.N times; the other workers call it in a loop
// until worker 0 signals that it is done. Three barrier rounds order the
// phases: all workers are running before the timer starts, the timer is
// running before any worker enters fn, and the timer is stopped again before
// RunConcurrent returns, when no worker is mid-call.
//
// fn must be safe to call concurrently from all workers. RunConcurrent is
// intended to be the entire body of a Benchmark function:
//
//	func BenchmarkThing(b *testing.B) {
//		logtest.RunConcurrent(b, func() { ... })
//	}
func RunConcurrent(b *testing.B, fn func()) {
	runConcurrent(b, b, fn)
}

// benchTimer is the subset of testing.B that controls the benchmark clock.
type benchTimer interface {
	StartTimer()
	StopTimer()
}

// runConcurrent is RunConcurrent with the clock split out so tests can
// observe the toggle points.
func runConcurrent(b *testing.B, timer benchTimer, fn func()) {
	workers := runtime.GOMAXPROCS(0)
	barrier := NewBarrier(workers)
	var stop atomic.Bool
	var wg sync.WaitGroup

	timer.StopTimer()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			// Round 1: every worker has been scheduled.
			barrier.Wait()
			if id == 0 {
				timer.StartTimer()
			}
			// Round 2: the timer is running; race into the workload.
			barrier.Wait()

			if id == 0 {
				for n := 0; n < b.N; n++ {
					fn()
				}
				stop.Store(true)
				timer.StopTimer()
			} else {
				for !stop.Load() {
					fn()
				}
			}

			// Round 3: nobody is mid-call when we return.
			barrier.Wait()
		}(i)
	}
	wg.Wait()
}
