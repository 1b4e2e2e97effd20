// Package clock abstracts the wall clock so that rendering code can be
// driven by a deterministic time source in tests instead of reading the
// ambient system time directly.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the host's local wall clock.
type System struct{}

// NewSystem returns a Clock backed by time.Now.
func NewSystem() System { return System{} }

// Now returns the current local time.
func (System) Now() time.Time { return time.Now() }

// Fake is a manually controlled Clock for tests. It never advances on its
// own and counts Now calls so tests can assert how many times a caller
// sampled the clock.
type Fake struct {
	mu    sync.Mutex
	now   time.Time
	calls int
}

// NewFake returns a Fake clock frozen at the given instant.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

// Now returns the fake instant and records the call.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.now
}

// Set moves the fake clock to a specific instant.
func (f *Fake) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = now
}

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// NowCalls reports how many times Now has been called.
func (f *Fake) NowCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
