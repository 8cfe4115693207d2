package toast

import "time"

// Task is a pending scheduled callback.
type Task interface {
	// Stop cancels the callback. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

// Scheduler arms one-shot callbacks and tells the time. [RealScheduler] is
// backed by the runtime timers; tests use toasttest.Scheduler.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
	Now() time.Time
}

type realScheduler struct{}

// RealScheduler returns a Scheduler running callbacks on timer goroutines.
func RealScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}

func (realScheduler) Now() time.Time {
	return time.Now()
}
