// Package leaktest verifies that code under test releases the goroutines it
// starts. The realtime hub tests use it to prove Stop tears the hub down.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	waitDeadline = 2 * time.Second
	pollInterval = 10 * time.Millisecond
)

// Check runs fn and fails the test if the goroutine count has not returned
// to its starting level shortly after fn returns. Goroutines that are still
// winding down are polled for, not failed on the first sample.
func Check(t *testing.T, fn func()) {
	t.Helper()

	before := settle()
	fn()

	deadline := time.Now().Add(waitDeadline)
	for {
		after := runtime.NumGoroutine()
		if after <= before {
			return
		}
		if time.Now().After(deadline) {
			t.Errorf("goroutine leak: %d running before, %d still running after", before, after)
			return
		}
		runtime.Gosched()
		time.Sleep(pollInterval)
	}
}

// settle gives unrelated goroutines a moment to finish starting or dying
// before the baseline is taken.
func settle() int {
	runtime.Gosched()
	time.Sleep(settleDelay)
	runtime.GC()
	return runtime.NumGoroutine()
}
