package bubble

// Timer is a handle to a one-shot callback registered with a Scheduler.
type Timer struct {
	remaining float64
	fn        func()
	fired     bool
	cancelled bool
}

// Cancel prevents the callback from running. Safe to call on a nil, fired or
// already cancelled timer.
func (t *Timer) Cancel() {
	if t == nil || t.fired {
		return
	}
	t.cancelled = true
	t.fn = nil
}

// Pending reports whether the callback is still waiting to run.
func (t *Timer) Pending() bool {
	return t != nil && !t.fired && !t.cancelled
}

// Scheduler runs one-shot callbacks after a delay measured in seconds of
// Update time. It belongs to whoever drives its Update, so callbacks only
// advance while their owner is active.
type Scheduler struct {
	timers []*Timer
}

// After registers fn to run once delay seconds from now.
func (s *Scheduler) After(delay float64, fn func()) *Timer {
	t := &Timer{remaining: delay, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// timerEpsilon absorbs float drift from summing fixed frame steps.
const timerEpsilon = 1e-9

// Update advances all timers by dt seconds and runs those that are due, in
// registration order. Callbacks may register or cancel timers. Timers
// registered during Update start counting on the next call.
func (s *Scheduler) Update(dt float64) {
	snapshot := append([]*Timer(nil), s.timers...)
	for _, t := range snapshot {
		if !t.Pending() {
			continue
		}
		t.remaining -= dt
		if t.remaining > timerEpsilon {
			continue
		}
		t.fired = true
		fn := t.fn
		t.fn = nil
		fn()
	}

	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.Pending() {
			kept = append(kept, t)
		}
	}
	s.timers = kept
}

// CancelAll cancels every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.Cancel()
	}
	s.timers = nil
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}
