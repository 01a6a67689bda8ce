package app

import "time"

// Clock abstracts wall time so tests can pin timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real-time clock.
func SystemClock() Clock { return systemClock{} }

// Scheduler runs fn once after d. The returned cancel func stops the
// task if it has not fired yet and is safe to call more than once.
// Fired callbacks may run on a separate goroutine.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// TimerScheduler returns the real timer-backed scheduler.
func TimerScheduler() Scheduler { return timerScheduler{} }
