package wheel

import (
	"context"
	"sync"
	"time"
)

// Timer is the one-shot deferred completion of the spin in flight. It holds
// the cancellation handle so a pending completion can be dropped on teardown.
type Timer struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	spinID string
}

// Arm schedules completion of spinID at deadline and cancels any earlier
// pending spin. The returned func blocks until the deadline passes (true) or
// the wait is cancelled (false).
func (t *Timer) Arm(spinID string, deadline time.Time) func() (string, bool) {
	ctx, cancel := context.WithCancel(context.Background())

	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	t.cancel = cancel
	t.spinID = spinID
	t.mu.Unlock()

	return func() (string, bool) {
		defer cancel()
		wait := time.Until(deadline)
		if wait < 0 {
			wait = 0
		}
		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return spinID, false
		case <-timer.C:
		}

		t.mu.Lock()
		defer t.mu.Unlock()
		if t.spinID != spinID {
			return spinID, false
		}
		t.cancel = nil
		t.spinID = ""
		return spinID, true
	}
}

// Pending returns the spin currently waiting to complete.
func (t *Timer) Pending() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.spinID, t.spinID != ""
}

// Stop cancels the pending completion, if any.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	t.cancel = nil
	t.spinID = ""
}
