package tooltip

import (
	"github.com/vango-dev/tooltips/pkg/definition"
	"github.com/vango-dev/tooltips/pkg/dom"
	"github.com/vango-dev/tooltips/pkg/sched"
)

// bind wires the listeners for the tooltip's trigger.
func (r *Registry) bind(s *State) {
	switch s.def.Trigger {
	case definition.Hover:
		r.bindHover(s)
	case definition.Click:
		r.bindClick(s)
	case definition.Focus:
		r.bindFocus(s)
	}
}

func (r *Registry) bindHover(s *State) {
	s.listen(s.target, dom.EventMouseEnter, func(dom.Event) { s.Show() })

	if !s.def.Interactive {
		s.listen(s.target, dom.EventMouseLeave, func(dom.Event) { s.Hide() })
		return
	}

	// Give the pointer time to travel from the target onto the tooltip.
	s.listen(s.target, dom.EventMouseLeave, func(dom.Event) {
		sched.Cancel(s.graceTask)

		var task sched.Task
		task = r.sched.AfterFunc(r.opts.GracePeriod, func() {
			if s.graceTask != task {
				return
			}
			s.graceTask = nil
			if !s.element.Hovered() {
				s.Hide()
			}
		})
		s.graceTask = task
	})
	s.listen(s.element, dom.EventMouseLeave, func(dom.Event) { s.Hide() })
}

func (r *Registry) bindClick(s *State) {
	s.listen(s.target, dom.EventClick, func(e dom.Event) {
		e.PreventDefault()
		s.Toggle()
	})

	// One document listener per tooltip.
	s.unbind = append(s.unbind, r.doc.AddEventListener(dom.EventClick, func(e dom.Event) {
		t := e.Target()
		if t != nil && (s.target.Contains(t) || s.element.Contains(t)) {
			return
		}
		s.Hide()
	}))
}

func (r *Registry) bindFocus(s *State) {
	s.listen(s.target, dom.EventFocus, func(dom.Event) { s.Show() })
	s.listen(s.target, dom.EventBlur, func(dom.Event) {
		// Interactive focus tooltips stay open after blur.
		if !s.def.Interactive {
			s.Hide()
		}
	})
}
