package htmldom

import (
	"github.com/vango-dev/tooltips/pkg/dom"
)

type listenerEntry struct {
	fn      dom.Listener
	removed bool
}

// listenerSet holds listeners by event type in registration order.
type listenerSet struct {
	byType map[string][]*listenerEntry
}

func (s *listenerSet) add(eventType string, fn dom.Listener) dom.RemoveFunc {
	if s.byType == nil {
		s.byType = make(map[string][]*listenerEntry)
	}
	entry := &listenerEntry{fn: fn}
	s.byType[eventType] = append(s.byType[eventType], entry)
	return func() {
		if entry.removed {
			return
		}
		entry.removed = true
		list := s.byType[eventType]
		for i, l := range list {
			if l == entry {
				s.byType[eventType] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}
}

func (s *listenerSet) count(eventType string) int {
	return len(s.byType[eventType])
}

// fire calls the listeners registered when dispatch started, skipping
// any removed in the meantime.
func (s *listenerSet) fire(ev *event) {
	list := append([]*listenerEntry(nil), s.byType[ev.typ]...)
	for _, l := range list {
		if !l.removed {
			l.fn(ev)
		}
	}
}

type event struct {
	typ       string
	target    dom.Element
	prevented bool
}

func (ev *event) Type() string        { return ev.typ }
func (ev *event) Target() dom.Element { return ev.target }
func (ev *event) PreventDefault()     { ev.prevented = true }

// Dispatch fires eventType at el. Bubbling events then travel through
// el's ancestors and finally the document. It reports whether a listener
// called PreventDefault.
func (d *Document) Dispatch(el dom.Element, eventType string, bubbles bool) bool {
	e := el.(*Element)
	ev := &event{typ: eventType, target: e}
	e.listeners.fire(ev)
	if bubbles {
		for n := e.node.Parent; n != nil; n = n.Parent {
			if p := d.element(n); p != nil {
				p.listeners.fire(ev)
			}
		}
		d.listeners.fire(ev)
	}
	return ev.prevented
}

// ListenerCount returns how many listeners for eventType are attached to
// el, or to the document when el is nil.
func (d *Document) ListenerCount(el dom.Element, eventType string) int {
	if el == nil {
		return d.listeners.count(eventType)
	}
	return el.(*Element).listeners.count(eventType)
}

// PointerEnter moves the pointer onto el and fires mouseenter.
func (d *Document) PointerEnter(el dom.Element) {
	d.pointer = el.(*Element).node
	d.Dispatch(el, dom.EventMouseEnter, false)
}

// PointerLeave moves the pointer off el and fires mouseleave.
func (d *Document) PointerLeave(el dom.Element) {
	n := el.(*Element).node
	if d.pointer != nil && isDescendant(d.pointer, n) {
		d.pointer = nil
	}
	d.Dispatch(el, dom.EventMouseLeave, false)
}

// Click fires a bubbling click at el and reports whether the default
// action was prevented.
func (d *Document) Click(el dom.Element) bool {
	return d.Dispatch(el, dom.EventClick, true)
}

// Focus gives el focus, blurring the previously focused element.
func (d *Document) Focus(el dom.Element) {
	n := el.(*Element).node
	if d.focused == n {
		return
	}
	if d.focused != nil {
		d.Blur(d.element(d.focused))
	}
	d.focused = n
	d.Dispatch(el, dom.EventFocus, false)
}

// Blur removes focus from el.
func (d *Document) Blur(el dom.Element) {
	n := el.(*Element).node
	if d.focused == n {
		d.focused = nil
	}
	d.Dispatch(el, dom.EventBlur, false)
}
