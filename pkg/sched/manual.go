package sched

import (
	"sort"
	"time"
)

// Manual is a virtual clock. Nothing runs until [Manual.Advance] moves
// time forward; callbacks then run on the caller's goroutine in deadline
// order, ties in scheduling order. It is not safe for concurrent use.
type Manual struct {
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	m        *Manual
	at       time.Duration
	seq      uint64
	fn       func()
	canceled bool
	done     bool
}

func (t *manualTask) Cancel() {
	if t.done || t.canceled {
		return
	}
	t.canceled = true
	t.m.drop(t)
}

// NewManual returns a virtual clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the time elapsed since the clock was created.
func (m *Manual) Now() time.Duration {
	return m.now
}

// AfterFunc implements Scheduler. Negative delays count as zero.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTask{m: m, at: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Pending returns how many tasks are waiting.
func (m *Manual) Pending() int {
	return len(m.tasks)
}

// Advance moves the clock forward by d, running every task that comes due,
// including tasks scheduled by callbacks within the window.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		t := m.next()
		if t == nil || t.at > end {
			break
		}
		m.now = t.at
		m.drop(t)
		t.done = true
		t.fn()
	}
	m.now = end
}

func (m *Manual) next() *manualTask {
	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].at != m.tasks[j].at {
			return m.tasks[i].at < m.tasks[j].at
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	return m.tasks[0]
}

func (m *Manual) drop(t *manualTask) {
	for i, x := range m.tasks {
		if x == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}
