package dom

// Event types the tooltip system listens for.
const (
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
	EventClick      = "click"
	EventFocus      = "focus"
	EventBlur       = "blur"
)

// Rect is an element's bounding box in viewport coordinates,
// as returned by getBoundingClientRect.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom returns Top + Height.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Right returns Left + Width.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Viewport describes the visible window and how far the page is scrolled.
type Viewport struct {
	Width   float64
	Height  float64
	ScrollX float64
	ScrollY float64
}

// Event is a DOM event delivered to a listener.
type Event interface {
	// Type is the event name, e.g. "click".
	Type() string

	// Target is the element the event was dispatched to. It may be nil
	// for events whose target is not an element.
	Target() Element

	// PreventDefault cancels the browser's default action.
	PreventDefault()
}

// Listener handles a DOM event.
type Listener func(Event)

// RemoveFunc detaches a previously added listener. Calling it more than
// once is harmless.
type RemoveFunc func()

// Element is the subset of the DOM element API the tooltip system uses.
//
// Wrappers are not required to be unique per node: two values may refer to
// the same node without being ==. Use SameNode to compare elements.
type Element interface {
	// TagName returns the lower-case tag name.
	TagName() string

	Attribute(name string) (string, bool)
	SetAttribute(name, value string)

	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)

	// SetStyle sets an inline style property. Property names use the
	// scripting convention (camelCase), e.g. "maxWidth".
	SetStyle(property, value string)
	Style(property string) string

	// SetInnerHTML replaces the element's children with parsed markup.
	SetInnerHTML(markup string)
	TextContent() string

	AppendChild(child Element)
	// Remove detaches the element from its parent. It is a no-op when the
	// element has no parent.
	Remove()
	Parent() Element

	// Contains reports whether other is this element or a descendant of it.
	Contains(other Element) bool

	// QuerySelectorAll returns the descendants matching selector in
	// document order.
	QuerySelectorAll(selector string) []Element

	// Hovered reports whether the pointer is over this element or one of
	// its descendants (":hover").
	Hovered() bool

	BoundingClientRect() Rect

	AddEventListener(eventType string, fn Listener) RemoveFunc
}

// Mutation is one batch of child-list changes delivered to an observer.
type Mutation struct {
	// Added holds the element nodes inserted into the observed subtree.
	Added []Element
}

// Subscription is a live mutation observation.
type Subscription interface {
	Unsubscribe()
}

// Document is the page the tooltip system runs in.
type Document interface {
	// GetElementByID returns nil when no element has the id.
	GetElementByID(id string) Element

	// QuerySelector returns the first match or nil.
	QuerySelector(selector string) Element
	QuerySelectorAll(selector string) []Element

	CreateElement(tag string) Element
	Body() Element

	// AddEventListener listens on the document itself; events bubble
	// here from every element.
	AddEventListener(eventType string, fn Listener) RemoveFunc

	Viewport() Viewport

	// Observe reports insertions anywhere in root's subtree. Callbacks are
	// delivered by the host, after the mutation completes, on the same
	// thread that runs event listeners.
	Observe(root Element, fn func([]Mutation)) Subscription
}

// SameNode reports whether a and b refer to the same node. A node contains
// itself, and two distinct nodes cannot contain each other.
func SameNode(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b || (a.Contains(b) && b.Contains(a))
}
