package lifecycle

import "time"

// IdleTimer wraps a time.AfterFunc the way sund3RRR's proxy Timer does:
// schedule once, allow a single cancel, never reused after firing.
type IdleTimer struct {
	t *time.Timer
}

// NewIdleTimer arms a timer that calls fn after d elapses.
func NewIdleTimer(d time.Duration, fn func()) *IdleTimer {
	return &IdleTimer{t: time.AfterFunc(d, fn)}
}

// Stop cancels the timer. Safe to call after it has already fired.
func (i *IdleTimer) Stop() {
	if i == nil || i.t == nil {
		return
	}
	i.t.Stop()
}
