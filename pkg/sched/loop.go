package sched

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/eventloop"
)

// ErrLoopStopped is returned by [Loop.Do] when the loop is not running.
var ErrLoopStopped = errors.New("sched: event loop not running")

// Loop is a single goroutine event loop backed by goja_nodejs. Timer
// callbacks and functions passed to Do all run on the loop goroutine, which
// makes it the "UI thread" for headless hosts.
type Loop struct {
	loop    *eventloop.EventLoop
	stopped atomic.Bool
}

// NewLoop creates and starts a loop.
func NewLoop() *Loop {
	l := &Loop{loop: eventloop.NewEventLoop(eventloop.EnableConsole(false))}
	l.loop.Start()
	return l
}

type loopTask struct {
	loop  *eventloop.EventLoop
	timer *eventloop.Timer
}

func (t *loopTask) Cancel() {
	t.loop.ClearTimeout(t.timer)
}

type noopTask struct{}

func (noopTask) Cancel() {}

// AfterFunc implements Scheduler. It may be called from any goroutine.
// After Stop the callback never runs.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Task {
	if l.stopped.Load() {
		return noopTask{}
	}
	if d < 0 {
		d = 0
	}
	timer := l.loop.SetTimeout(func(*goja.Runtime) { fn() }, d)
	return &loopTask{loop: l.loop, timer: timer}
}

// Do queues fn to run on the loop goroutine.
func (l *Loop) Do(fn func()) error {
	if l.stopped.Load() || !l.loop.RunOnLoop(func(*goja.Runtime) { fn() }) {
		return ErrLoopStopped
	}
	return nil
}

// DoSync runs fn on the loop goroutine and waits for it to return. It must
// not be called from the loop goroutine.
func (l *Loop) DoSync(fn func()) error {
	done := make(chan struct{})
	if err := l.Do(func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	<-done
	return nil
}

// Stop stops the loop. Timers that have not fired never will.
func (l *Loop) Stop() {
	if l.stopped.Swap(true) {
		return
	}
	l.loop.Stop()
}
