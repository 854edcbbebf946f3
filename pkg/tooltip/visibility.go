package tooltip

import (
	"github.com/vango-dev/tooltips/pkg/dom"
	"github.com/vango-dev/tooltips/pkg/position"
	"github.com/vango-dev/tooltips/pkg/sched"
)

// Show requests the tooltip after the definition's delay. A pending hide
// is cancelled, as is an older pending show.
func (s *State) Show() {
	if s.removed {
		return
	}
	s.cancelHide()
	s.cancelShow()

	var task sched.Task
	task = s.reg.sched.AfterFunc(s.def.DelayDuration(), func() {
		if s.showTask != task {
			return
		}
		s.showTask = nil
		s.cancelHide()

		s.Reposition()
		s.element.AddClass(s.reg.class("visible"))
		wasVisible := s.visible
		s.visible = true
		if !wasVisible {
			s.reg.opts.Observer.Shown(s.def.ID)
		}
	})
	s.showTask = task
}

// Hide requests hiding the tooltip after the definition's delay. A pending
// show is cancelled, as is an older pending hide.
func (s *State) Hide() {
	if s.removed {
		return
	}
	s.cancelShow()
	s.cancelHide()

	var task sched.Task
	task = s.reg.sched.AfterFunc(s.def.DelayDuration(), func() {
		if s.hideTask != task {
			return
		}
		s.hideTask = nil
		s.cancelShow()

		s.element.RemoveClass(s.reg.class("visible"))
		wasVisible := s.visible
		s.visible = false
		if wasVisible {
			s.reg.opts.Observer.Hidden(s.def.ID)
		}
	})
	s.hideTask = task
}

// Toggle hides a visible tooltip and shows a hidden one.
func (s *State) Toggle() {
	if s.visible {
		s.Hide()
	} else {
		s.Show()
	}
}

// Reposition places the display element next to its target and returns
// the page coordinates written to its top and left styles.
func (s *State) Reposition() position.Point {
	box := s.element.BoundingClientRect()
	p := position.Compute(position.Input{
		Target:    s.target.BoundingClientRect(),
		Tooltip:   position.Size{Width: box.Width, Height: box.Height},
		Placement: s.def.Placement,
		Offset:    float64(s.def.Offset),
		Viewport:  s.reg.doc.Viewport(),
	})
	s.element.SetStyle("top", position.Px(p.Top))
	s.element.SetStyle("left", position.Px(p.Left))
	return p
}

func (s *State) cancelShow() {
	sched.Cancel(s.showTask)
	s.showTask = nil
}

func (s *State) cancelHide() {
	sched.Cancel(s.hideTask)
	s.hideTask = nil
}

// listen adds a listener to el and remembers how to remove it.
func (s *State) listen(el dom.Element, eventType string, fn dom.Listener) {
	s.unbind = append(s.unbind, el.AddEventListener(eventType, fn))
}
