package sched

import "time"

// Task is a pending callback. Cancel asks the scheduler not to run it and
// is a no-op once the task has run or was already cancelled. Some
// schedulers clear timers asynchronously, so a callback that replaces
// another should check that it is still the current task.
type Task interface {
	Cancel()
}

// Scheduler runs callbacks after a delay on the thread that owns the DOM.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

// Cancel cancels t if it is non-nil. It exists so callers can hold Task
// fields that are nil when nothing is pending.
func Cancel(t Task) {
	if t != nil {
		t.Cancel()
	}
}
