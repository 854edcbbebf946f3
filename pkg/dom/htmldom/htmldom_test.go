package htmldom

import (
	"strings"
	"testing"

	"github.com/vango-dev/tooltips/pkg/dom"
)

const page = `<!DOCTYPE html>
<html><body>
  <div id="shiny-tooltips-root"></div>
  <main>
    <button id="save" class="btn primary">Save</button>
    <p class="note">hello <span>world</span></p>
  </main>
  <script type="application/json" class="shiny-tooltip-definition">{"id":"a"}</script>
</body></html>`

func mustParse(t *testing.T) *Document {
	t.Helper()
	d, err := ParseString(page)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return d
}

func TestQuerySelector(t *testing.T) {
	d := mustParse(t)

	save := d.QuerySelector("#save")
	if save == nil {
		t.Fatal("expected #save")
	}
	if save.TagName() != "button" {
		t.Errorf("TagName = %q", save.TagName())
	}
	if d.QuerySelector("button.primary") != save {
		t.Error("same node should yield the same Element")
	}
	if d.QuerySelector("#missing") != nil {
		t.Error("missing selector should return nil")
	}
	if d.QuerySelector("[[[") != nil {
		t.Error("invalid selector should match nothing")
	}

	scripts := d.QuerySelectorAll("script.shiny-tooltip-definition")
	if len(scripts) != 1 {
		t.Fatalf("scripts = %d, want 1", len(scripts))
	}
	if got := strings.TrimSpace(scripts[0].TextContent()); got != `{"id":"a"}` {
		t.Errorf("TextContent = %q", got)
	}
}

func TestElementQuerySelectorAllExcludesSelf(t *testing.T) {
	d := mustParse(t)
	main := d.QuerySelector("main")

	if got := len(main.QuerySelectorAll("main")); got != 0 {
		t.Errorf("scope itself matched %d times", got)
	}
	if got := len(main.QuerySelectorAll("span")); got != 1 {
		t.Errorf("span matches = %d, want 1", got)
	}
}

func TestGetElementByIDAndBody(t *testing.T) {
	d := mustParse(t)
	if d.GetElementByID("shiny-tooltips-root") == nil {
		t.Error("root not found")
	}
	if d.GetElementByID("nope") != nil {
		t.Error("expected nil")
	}
	if d.Body() == nil || d.Body().TagName() != "body" {
		t.Error("body not found")
	}
}

func TestClassesAndStyles(t *testing.T) {
	d := New()
	el := d.CreateElement("DIV")
	if el.TagName() != "div" {
		t.Errorf("TagName = %q", el.TagName())
	}

	el.AddClass("a")
	el.AddClass("b")
	el.AddClass("a")
	if v, _ := el.Attribute("class"); v != "a b" {
		t.Errorf("class = %q", v)
	}
	el.RemoveClass("a")
	if el.HasClass("a") || !el.HasClass("b") {
		t.Error("RemoveClass failed")
	}

	el.SetStyle("maxWidth", "200px")
	el.SetStyle("top", "5px")
	el.SetStyle("maxWidth", "300px")
	if el.Style("maxWidth") != "300px" {
		t.Errorf("maxWidth = %q", el.Style("maxWidth"))
	}
	if v, _ := el.Attribute("style"); v != "max-width: 300px; top: 5px;" {
		t.Errorf("style attr = %q", v)
	}
}

func TestContainsAndRemove(t *testing.T) {
	d := mustParse(t)
	main := d.QuerySelector("main")
	span := d.QuerySelector("span")

	if !main.Contains(span) || !main.Contains(main) {
		t.Error("Contains should include descendants and self")
	}
	if span.Contains(main) {
		t.Error("child should not contain parent")
	}
	if main.Contains(nil) {
		t.Error("Contains(nil) should be false")
	}

	span.Remove()
	if main.Contains(span) || span.Parent() != nil {
		t.Error("span should be detached")
	}
	span.Remove()
}

func TestSetInnerHTML(t *testing.T) {
	d := New()
	el := d.CreateElement("div").(*Element)
	el.SetInnerHTML("<b>bold</b> text")
	if got := el.InnerHTML(); got != "<b>bold</b> text" {
		t.Errorf("InnerHTML = %q", got)
	}
	el.SetInnerHTML("x")
	if el.TextContent() != "x" {
		t.Errorf("TextContent = %q", el.TextContent())
	}
}

func TestClickBubblesToDocument(t *testing.T) {
	d := mustParse(t)
	span := d.QuerySelector("span")
	p := d.QuerySelector("p")

	var order []string
	span.AddEventListener(dom.EventClick, func(e dom.Event) { order = append(order, "span") })
	p.AddEventListener(dom.EventClick, func(e dom.Event) {
		order = append(order, "p")
		e.PreventDefault()
	})
	remove := d.AddEventListener(dom.EventClick, func(e dom.Event) {
		if e.Target() != span {
			t.Error("target should be the clicked element")
		}
		order = append(order, "doc")
	})

	if !d.Click(span) {
		t.Error("default should be prevented")
	}
	if strings.Join(order, ",") != "span,p,doc" {
		t.Errorf("order = %v", order)
	}

	remove()
	remove()
	if d.ListenerCount(nil, dom.EventClick) != 0 {
		t.Error("document listener should be removed")
	}
}

func TestPointerAndHover(t *testing.T) {
	d := mustParse(t)
	p := d.QuerySelector("p")
	span := d.QuerySelector("span")

	entered := 0
	p.AddEventListener(dom.EventMouseEnter, func(dom.Event) { entered++ })

	d.PointerEnter(span)
	if !p.Hovered() || !span.Hovered() {
		t.Error("ancestor of pointer should be hovered")
	}
	if entered != 0 {
		t.Error("mouseenter does not bubble")
	}
	d.PointerLeave(span)
	if p.Hovered() {
		t.Error("nothing should be hovered")
	}
	d.PointerEnter(p)
	if entered != 1 {
		t.Errorf("entered = %d", entered)
	}
}

func TestFocusBlursPrevious(t *testing.T) {
	d := mustParse(t)
	save := d.QuerySelector("#save")
	p := d.QuerySelector("p")

	var events []string
	save.AddEventListener(dom.EventFocus, func(dom.Event) { events = append(events, "focus") })
	save.AddEventListener(dom.EventBlur, func(dom.Event) { events = append(events, "blur") })

	d.Focus(save)
	d.Focus(save)
	d.Focus(p)
	if strings.Join(events, ",") != "focus,blur" {
		t.Errorf("events = %v", events)
	}
}

func TestObserveDeliversOnFlush(t *testing.T) {
	d := mustParse(t)
	body := d.Body()

	var batches [][]dom.Mutation
	sub := d.Observe(body, func(m []dom.Mutation) { batches = append(batches, m) })

	if err := d.InsertHTML(d.QuerySelector("main"), `<section><script class="x">1</script></section>text`); err != nil {
		t.Fatal(err)
	}
	detached := d.CreateElement("div")
	detached.AppendChild(d.CreateElement("span"))

	if len(batches) != 0 {
		t.Fatal("callbacks must wait for Flush")
	}
	d.Flush()
	if len(batches) != 1 || len(batches[0][0].Added) != 1 {
		t.Fatalf("batches = %v", batches)
	}
	if batches[0][0].Added[0].TagName() != "section" {
		t.Errorf("added = %s", batches[0][0].Added[0].TagName())
	}

	sub.Unsubscribe()
	body.AppendChild(d.CreateElement("div"))
	d.Flush()
	if len(batches) != 1 {
		t.Error("unsubscribed observer was called")
	}
}

func TestObserveCallbackMutationsAreFlushed(t *testing.T) {
	d := mustParse(t)
	body := d.Body()
	calls := 0
	d.Observe(body, func(m []dom.Mutation) {
		calls++
		if calls == 1 {
			body.AppendChild(d.CreateElement("div"))
		}
	})
	body.AppendChild(d.CreateElement("div"))
	d.Flush()
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if d.Pending() {
		t.Error("queue should be empty")
	}
}

func TestRectAndViewport(t *testing.T) {
	d := New()
	el := d.CreateElement("div").(*Element)
	el.SetRect(dom.Rect{Top: 1, Left: 2, Width: 3, Height: 4})
	r := el.BoundingClientRect()
	if r.Bottom() != 5 || r.Right() != 5 {
		t.Errorf("rect = %+v", r)
	}

	d.SetViewport(dom.Viewport{Width: 10, Height: 20, ScrollY: 3})
	if d.Viewport().ScrollY != 3 {
		t.Error("viewport not stored")
	}
}

func TestRender(t *testing.T) {
	d := New()
	div := d.CreateElement("div")
	div.SetAttribute("data-tooltip-id", "t1")
	d.Body().AppendChild(div)
	if !strings.Contains(d.String(), `<div data-tooltip-id="t1"></div>`) {
		t.Errorf("render = %s", d.String())
	}
}

func TestSameNode(t *testing.T) {
	d := mustParse(t)
	span := d.QuerySelector("span")
	p := d.QuerySelector("p")

	if !dom.SameNode(span, d.QuerySelector("span")) {
		t.Error("two lookups of one node should be the same node")
	}
	if dom.SameNode(p, span) || dom.SameNode(span, p) {
		t.Error("parent and child are different nodes")
	}
	if dom.SameNode(span, nil) || !dom.SameNode(nil, nil) {
		t.Error("nil handling")
	}
}
