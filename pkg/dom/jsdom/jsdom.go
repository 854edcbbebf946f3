//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/vango-dev/tooltips/pkg/dom"
)

// Document wraps window.document.
type Document struct {
	v js.Value
}

// New returns the page's document.
func New() *Document {
	return &Document{v: js.Global().Get("document")}
}

// wrap returns nil for null and undefined so callers can compare with nil.
func wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{v: v}
}

func wrapList(list js.Value) []dom.Element {
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{v: list.Index(i)})
	}
	return out
}

// query runs fn and turns a SyntaxError from an invalid selector into a
// null result.
func query(fn func() js.Value) (v js.Value) {
	defer func() {
		if recover() != nil {
			v = js.Null()
		}
	}()
	return fn()
}

func (d *Document) GetElementByID(id string) dom.Element {
	return wrap(d.v.Call("getElementById", id))
}

func (d *Document) QuerySelector(selector string) dom.Element {
	return wrap(query(func() js.Value { return d.v.Call("querySelector", selector) }))
}

func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	list := query(func() js.Value { return d.v.Call("querySelectorAll", selector) })
	if list.IsNull() {
		return nil
	}
	return wrapList(list)
}

func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{v: d.v.Call("createElement", tag)}
}

func (d *Document) Body() dom.Element {
	return wrap(d.v.Get("body"))
}

func (d *Document) AddEventListener(eventType string, fn dom.Listener) dom.RemoveFunc {
	return listen(d.v, eventType, fn)
}

func (d *Document) Viewport() dom.Viewport {
	w := js.Global()
	return dom.Viewport{
		Width:   w.Get("innerWidth").Float(),
		Height:  w.Get("innerHeight").Float(),
		ScrollX: w.Get("scrollX").Float(),
		ScrollY: w.Get("scrollY").Float(),
	}
}

type subscription struct {
	observer js.Value
	fn       js.Func
}

func (s *subscription) Unsubscribe() {
	if s.observer.IsUndefined() {
		return
	}
	s.observer.Call("disconnect")
	s.observer = js.Undefined()
	s.fn.Release()
}

// Observe wraps a MutationObserver watching root's subtree for child list
// changes.
func (d *Document) Observe(root dom.Element, fn func([]dom.Mutation)) dom.Subscription {
	s := &subscription{}
	s.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		records := args[0]
		var ms []dom.Mutation
		for i := 0; i < records.Length(); i++ {
			added := records.Index(i).Get("addedNodes")
			var m dom.Mutation
			for j := 0; j < added.Length(); j++ {
				n := added.Index(j)
				if n.Get("nodeType").Int() == 1 {
					m.Added = append(m.Added, &Element{v: n})
				}
			}
			if len(m.Added) > 0 {
				ms = append(ms, m)
			}
		}
		if len(ms) > 0 {
			fn(ms)
		}
		return nil
	})
	s.observer = js.Global().Get("MutationObserver").New(s.fn)
	opts := js.Global().Get("Object").New()
	opts.Set("childList", true)
	opts.Set("subtree", true)
	s.observer.Call("observe", root.(*Element).v, opts)
	return s
}

// listen adds fn as a listener on target and returns its remover.
func listen(target js.Value, eventType string, fn dom.Listener) dom.RemoveFunc {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(&event{v: args[0]})
		return nil
	})
	target.Call("addEventListener", eventType, f)
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		target.Call("removeEventListener", eventType, f)
		f.Release()
	}
}

type event struct {
	v js.Value
}

func (e *event) Type() string { return e.v.Get("type").String() }

func (e *event) Target() dom.Element {
	t := e.v.Get("target")
	if t.IsNull() || t.IsUndefined() || t.Get("nodeType").Int() != 1 {
		return nil
	}
	return &Element{v: t}
}

func (e *event) PreventDefault() { e.v.Call("preventDefault") }
