package sched

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualRunsInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var got []string
	m.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(9 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("ran early: %v", got)
	}
	m.Advance(25 * time.Millisecond)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("order = %v", got)
	}
	if m.Now() != 34*time.Millisecond {
		t.Errorf("Now = %v", m.Now())
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	ran := false
	task := m.AfterFunc(5*time.Millisecond, func() { ran = true })
	task.Cancel()
	task.Cancel()
	m.Advance(time.Second)
	if ran {
		t.Error("cancelled task ran")
	}
	if m.Pending() != 0 {
		t.Errorf("Pending = %d", m.Pending())
	}
}

func TestManualZeroDelayNeedsAdvance(t *testing.T) {
	m := NewManual()
	ran := false
	m.AfterFunc(-1, func() { ran = true })
	if ran {
		t.Fatal("must not run synchronously")
	}
	m.Advance(0)
	if !ran {
		t.Error("zero delay task should run on Advance(0)")
	}
}

func TestManualNestedScheduling(t *testing.T) {
	m := NewManual()
	var at []time.Duration
	m.AfterFunc(10*time.Millisecond, func() {
		at = append(at, m.Now())
		m.AfterFunc(10*time.Millisecond, func() { at = append(at, m.Now()) })
	})
	m.Advance(50 * time.Millisecond)
	if len(at) != 2 || at[0] != 10*time.Millisecond || at[1] != 20*time.Millisecond {
		t.Errorf("at = %v", at)
	}
}

func TestCancelNil(t *testing.T) {
	Cancel(nil)
	m := NewManual()
	ran := false
	Cancel(m.AfterFunc(0, func() { ran = true }))
	m.Advance(0)
	if ran {
		t.Error("task should be cancelled")
	}
}

func TestLoopAfterFunc(t *testing.T) {
	l := NewLoop()
	defer l.Stop()

	done := make(chan struct{})
	l.AfterFunc(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestLoopCancel(t *testing.T) {
	l := NewLoop()
	defer l.Stop()

	var ran atomic.Bool
	task := l.AfterFunc(20*time.Millisecond, func() { ran.Store(true) })
	task.Cancel()

	done := make(chan struct{})
	l.AfterFunc(60*time.Millisecond, func() { close(done) })
	<-done
	if ran.Load() {
		t.Error("cancelled timer ran")
	}
}

func TestLoopDoSync(t *testing.T) {
	l := NewLoop()
	x := 0
	if err := l.DoSync(func() { x = 42 }); err != nil {
		t.Fatal(err)
	}
	if x != 42 {
		t.Errorf("x = %d", x)
	}
	l.Stop()
	if err := l.Do(func() {}); err != ErrLoopStopped {
		t.Errorf("Do after Stop = %v, want ErrLoopStopped", err)
	}
}
