package core

import (
	"context"
	"time"
)

// FixedStep paces generation updates at a steady interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller firing every interval. A
// non-positive interval disables pacing.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// NewFixedStepTPS constructs a FixedStep controller targeting the given
// ticks per second.
func NewFixedStepTPS(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedStep(time.Second / time.Duration(tps))
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	f.step = interval
}

// Interval returns the configured tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Wait blocks until the next tick is due or ctx is done. The first call waits
// one full interval. With pacing disabled it only checks ctx.
func (f *FixedStep) Wait(ctx context.Context) error {
	if f.step == 0 {
		return ctx.Err()
	}
	if f.last.IsZero() {
		f.last = f.now()
	}
	due := f.last.Add(f.step)
	wait := due.Sub(f.now())
	if wait > 0 {
		t := time.NewTimer(wait)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	f.last = due
	if f.now().Sub(f.last) > f.step {
		// Fell behind; resynchronise.
		f.last = f.now()
	}
	return ctx.Err()
}
