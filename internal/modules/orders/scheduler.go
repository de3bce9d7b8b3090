package orders

import "time"

// CancelFunc stops a scheduled callback. Calling it after the callback
// fired is a no-op.
type CancelFunc func()

// Scheduler abstracts timer creation so the scripted order flow can run on
// virtual time in tests.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) CancelFunc
}

type realScheduler struct{}

// NewScheduler returns a Scheduler backed by the runtime timer wheel.
func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) CancelFunc {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}
