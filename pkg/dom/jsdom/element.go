//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/vango-dev/tooltips/pkg/dom"
)

// Element wraps a DOM element. Every lookup returns a fresh wrapper, so
// compare elements with dom.SameNode.
type Element struct {
	v js.Value
}

// Value returns the wrapped node.
func (e *Element) Value() js.Value { return e.v }

func (e *Element) TagName() string {
	return js.Global().Get("String").New(e.v.Get("tagName")).Call("toLowerCase").String()
}

func (e *Element) Attribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (e *Element) SetAttribute(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) AddClass(name string)    { e.v.Get("classList").Call("add", name) }
func (e *Element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }

// SetStyle assigns style[property], so property uses the camelCase name.
func (e *Element) SetStyle(property, value string) { e.v.Get("style").Set(property, value) }

func (e *Element) Style(property string) string {
	v := e.v.Get("style").Get(property)
	if v.IsUndefined() {
		return ""
	}
	return v.String()
}

func (e *Element) SetInnerHTML(markup string) { e.v.Set("innerHTML", markup) }

func (e *Element) TextContent() string { return e.v.Get("textContent").String() }

func (e *Element) AppendChild(child dom.Element) { e.v.Call("appendChild", child.(*Element).v) }

func (e *Element) Remove() { e.v.Call("remove") }

func (e *Element) Parent() dom.Element { return wrap(e.v.Get("parentElement")) }

func (e *Element) Contains(other dom.Element) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	return e.v.Call("contains", o.v).Bool()
}

func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	list := query(func() js.Value { return e.v.Call("querySelectorAll", selector) })
	if list.IsNull() {
		return nil
	}
	return wrapList(list)
}

func (e *Element) Hovered() bool {
	return e.v.Call("matches", ":hover").Bool()
}

func (e *Element) BoundingClientRect() dom.Rect {
	r := e.v.Call("getBoundingClientRect")
	return dom.Rect{
		Top:    r.Get("top").Float(),
		Left:   r.Get("left").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e *Element) AddEventListener(eventType string, fn dom.Listener) dom.RemoveFunc {
	return listen(e.v, eventType, fn)
}
