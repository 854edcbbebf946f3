package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/tooltips/pkg/dom"
)

// Element wraps one element node of a [Document]. It implements [dom.Element].
type Element struct {
	doc       *Document
	node      *html.Node
	listeners listenerSet

	styleKeys []string
	styles    map[string]string
	rect      dom.Rect
}

var _ dom.Element = (*Element)(nil)

// Node returns the underlying html node.
func (e *Element) Node() *html.Node { return e.node }

// TagName implements dom.Element.
func (e *Element) TagName() string { return e.node.Data }

// Attribute implements dom.Element.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) classes() []string {
	v, _ := e.Attribute("class")
	return strings.Fields(v)
}

// HasClass implements dom.Element.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass implements dom.Element.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.SetAttribute("class", strings.Join(append(e.classes(), name), " "))
}

// RemoveClass implements dom.Element.
func (e *Element) RemoveClass(name string) {
	cs := e.classes()
	kept := cs[:0]
	for _, c := range cs {
		if c != name {
			kept = append(kept, c)
		}
	}
	e.SetAttribute("class", strings.Join(kept, " "))
}

// SetStyle implements dom.Element. The style attribute is kept in sync
// using CSS (hyphenated) property names.
func (e *Element) SetStyle(property, value string) {
	if e.styles == nil {
		e.styles = make(map[string]string)
	}
	if _, ok := e.styles[property]; !ok {
		e.styleKeys = append(e.styleKeys, property)
	}
	e.styles[property] = value

	var b strings.Builder
	for _, k := range e.styleKeys {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(hyphenate(k))
		b.WriteString(": ")
		b.WriteString(e.styles[k])
		b.WriteString(";")
	}
	e.SetAttribute("style", b.String())
}

// Style implements dom.Element.
func (e *Element) Style(property string) string {
	return e.styles[property]
}

// hyphenate turns "maxWidth" into "max-width".
func hyphenate(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SetInnerHTML implements dom.Element. Markup that fails to parse leaves
// the element empty.
func (e *Element) SetInnerHTML(markup string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
}

// InnerHTML renders the element's children.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// TextContent implements dom.Element.
func (e *Element) TextContent() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

// AppendChild implements dom.Element. Observers of the subtree are told
// about the insertion on the next [Document.Flush].
func (e *Element) AppendChild(child dom.Element) {
	c := child.(*Element)
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
	e.doc.recordInsert(c.node)
}

// Remove implements dom.Element.
func (e *Element) Remove() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

// Parent implements dom.Element.
func (e *Element) Parent() dom.Element {
	return iface(e.doc.element(e.node.Parent))
}

// Contains implements dom.Element.
func (e *Element) Contains(other dom.Element) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	return isDescendant(o.node, e.node)
}

// QuerySelectorAll implements dom.Element.
func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	return e.doc.selectAll(e.node, selector)
}

// Hovered implements dom.Element.
func (e *Element) Hovered() bool {
	return e.doc.pointer != nil && isDescendant(e.doc.pointer, e.node)
}

// BoundingClientRect implements dom.Element. There is no layout engine;
// the rectangle is whatever [Element.SetRect] last stored.
func (e *Element) BoundingClientRect() dom.Rect {
	return e.rect
}

// SetRect sets the rectangle reported by BoundingClientRect.
func (e *Element) SetRect(r dom.Rect) {
	e.rect = r
}

// AddEventListener implements dom.Element.
func (e *Element) AddEventListener(eventType string, fn dom.Listener) dom.RemoveFunc {
	return e.listeners.add(eventType, fn)
}
