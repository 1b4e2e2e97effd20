// Package schedule drives renders on minute boundaries: one immediate
// render at startup, a one-shot delay to the next :00, then a fixed-period
// ticker for the life of the process.
package schedule

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"mondclock/internal/clock"
)

// DefaultInterval is the steady-state tick period.
const DefaultInterval = time.Minute

// UntilNextMinute returns the wait from now to the next whole-minute
// boundary: (60 - seconds) * 1000ms - milliseconds. Exactly on a boundary
// this yields one full minute, never zero.
func UntilNextMinute(now time.Time) time.Duration {
	sec := now.Second()
	ms := now.Nanosecond() / int(time.Millisecond)
	return time.Duration(60-sec)*time.Second - time.Duration(ms)*time.Millisecond
}

// Loop owns the alignment timer and the steady ticker. The zero value is
// not usable; construct with NewLoop.
type Loop struct {
	clock    clock.Clock
	interval time.Duration
	render   func()
	logger   *zap.Logger

	mu       sync.Mutex
	started  bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Option adjusts a Loop at construction time.
type Option func(*Loop)

// WithClock injects the time source used to compute the alignment delay.
func WithClock(c clock.Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithInterval overrides the 60s tick period. Tests use short intervals so
// the loop can be observed without waiting out real minutes.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) { l.interval = d }
}

// WithLogger attaches a logger for lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// NewLoop creates a stopped loop that will invoke render on every tick.
func NewLoop(render func(), opts ...Option) *Loop {
	l := &Loop{
		clock:    clock.NewSystem(),
		interval: DefaultInterval,
		render:   render,
		logger:   zap.NewNop(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start renders once immediately, so the display is never blank before the
// first tick, then spawns the aligned re-render goroutine. Calling Start on
// a running loop is a no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.mu.Unlock()

	l.render()

	go l.run()
}

// Stop tears the timers down and waits for the loop goroutine to exit.
// Safe to call more than once, and before Start.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })

	l.mu.Lock()
	started := l.started
	l.mu.Unlock()
	if started {
		<-l.done
	}
}

func (l *Loop) run() {
	defer close(l.done)

	delay := l.alignDelay()
	l.logger.Debug("aligning to next tick boundary", zap.Duration("delay", delay))

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-l.stop:
		return
	}

	l.render()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.render()
		case <-l.stop:
			return
		}
	}
}

// alignDelay computes the one-shot wait so that steady ticks land on
// interval boundaries. A zero remainder means we are exactly on a boundary
// and the next tick is one full interval away.
func (l *Loop) alignDelay() time.Duration {
	if l.interval == time.Minute {
		return UntilNextMinute(l.clock.Now())
	}
	now := l.clock.Now()
	rem := now.Sub(now.Truncate(l.interval))
	if rem == 0 {
		return l.interval
	}
	return l.interval - rem
}
