//go:build js && wasm

package sched

import (
	"syscall/js"
	"time"
)

// JS schedules callbacks with the browser's setTimeout, so they run on the
// main thread between events.
type JS struct{}

type jsTask struct {
	id       js.Value
	fn       js.Func
	released bool
}

func (t *jsTask) Cancel() {
	if t.released {
		return
	}
	js.Global().Call("clearTimeout", t.id)
	t.release()
}

func (t *jsTask) release() {
	t.released = true
	t.fn.Release()
}

// AfterFunc implements Scheduler.
func (JS) AfterFunc(d time.Duration, fn func()) Task {
	t := &jsTask{}
	t.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		t.release()
		fn()
		return nil
	})
	t.id = js.Global().Call("setTimeout", t.fn, d.Milliseconds())
	return t
}
