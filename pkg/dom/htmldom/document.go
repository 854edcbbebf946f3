package htmldom

import (
	"io"
	"strings"

	"github.com/ericchiang/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/tooltips/pkg/dom"
)

const emptyPage = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is an in-memory page. It implements [dom.Document].
type Document struct {
	root      *html.Node
	elems     map[*html.Node]*Element
	listeners listenerSet
	viewport  dom.Viewport

	observers []*observer
	pending   []record

	// pointer is the deepest element under the mouse, nil when the pointer
	// is outside every element.
	pointer *html.Node
	// focused is the element holding focus.
	focused *html.Node
}

var _ dom.Document = (*Document)(nil)

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{
		root:     root,
		elems:    make(map[*html.Node]*Element),
		viewport: dom.Viewport{Width: 1024, Height: 768},
	}, nil
}

// ParseString reads an HTML page from a string.
func ParseString(page string) (*Document, error) {
	return Parse(strings.NewReader(page))
}

// New returns a document with an empty head and body.
func New() *Document {
	d, err := ParseString(emptyPage)
	if err != nil {
		panic("htmldom: parsing empty page: " + err.Error())
	}
	return d
}

// element returns the canonical wrapper for n.
func (d *Document) element(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if e, ok := d.elems[n]; ok {
		return e
	}
	e := &Element{doc: d, node: n}
	d.elems[n] = e
	return e
}

// iface converts e to a dom.Element without producing a typed nil.
func iface(e *Element) dom.Element {
	if e == nil {
		return nil
	}
	return e
}

// GetElementByID implements dom.Document.
func (d *Document) GetElementByID(id string) dom.Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return iface(d.element(found))
}

// QuerySelector implements dom.Document.
func (d *Document) QuerySelector(selector string) dom.Element {
	all := d.selectAll(d.root, selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// QuerySelectorAll implements dom.Document.
func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	return d.selectAll(d.root, selector)
}

// selectAll returns element descendants of scope matching selector. An
// invalid selector matches nothing.
func (d *Document) selectAll(scope *html.Node, selector string) []dom.Element {
	sel, err := css.Parse(selector)
	if err != nil {
		return nil
	}
	var out []dom.Element
	for _, n := range sel.Select(d.treeRoot(scope)) {
		if n == scope || n.Type != html.ElementNode || !isDescendant(n, scope) {
			continue
		}
		out = append(out, d.element(n))
	}
	return out
}

// treeRoot returns the topmost ancestor of n so that selectors with
// combinators see the whole tree.
func (d *Document) treeRoot(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return d.element(n)
}

// Body implements dom.Document.
func (d *Document) Body() dom.Element {
	var body *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return false
		}
		return true
	})
	return iface(d.element(body))
}

// AddEventListener implements dom.Document.
func (d *Document) AddEventListener(eventType string, fn dom.Listener) dom.RemoveFunc {
	return d.listeners.add(eventType, fn)
}

// Viewport implements dom.Document.
func (d *Document) Viewport() dom.Viewport {
	return d.viewport
}

// SetViewport sets the window size and scroll offsets reported to the
// positioning code.
func (d *Document) SetViewport(vp dom.Viewport) {
	d.viewport = vp
}

// Render writes the current document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, ignoring errors.
func (d *Document) String() string {
	var b strings.Builder
	_ = d.Render(&b)
	return b.String()
}

// connected reports whether n is attached to the document tree.
func (d *Document) connected(n *html.Node) bool {
	return isDescendant(n, d.root)
}

// isDescendant reports whether n is anc or lies below it.
func isDescendant(n, anc *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == anc {
			return true
		}
	}
	return false
}

// walk visits n and its descendants depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
