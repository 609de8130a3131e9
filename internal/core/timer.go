package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
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

// StepTimer measures the wall-clock duration of a single operation and
// reports it to a Logger when stopped. Callers defer Stop immediately after
// StartTimer so the elapsed time is recorded on every exit path.
type StepTimer struct {
	name  string
	log   Logger
	start time.Time
}

// StartTimer begins a measurement named name. A nil logger yields a timer
// whose Stop is a no-op.
func StartTimer(log Logger, name string) *StepTimer {
	if log == nil {
		return nil
	}
	return &StepTimer{name: name, log: log, start: time.Now()}
}

// Stop records the elapsed time since StartTimer.
func (t *StepTimer) Stop() {
	if t == nil {
		return
	}
	t.log.Printf("%s: %s", t.name, time.Since(t.start))
}
