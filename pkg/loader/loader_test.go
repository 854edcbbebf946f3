package loader

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/tooltips/pkg/dom/htmldom"
	"github.com/vango-dev/tooltips/pkg/sched"
	"github.com/vango-dev/tooltips/pkg/tooltip"
)

const page = `<!DOCTYPE html><html><body>
<div id="shiny-tooltips-root"></div>
<button id="save">Save</button>
<button id="open">Open</button>
<div id="slot"></div>
<script type="application/json" class="shiny-tooltip-definition">
{"id": "save-help", "target": "#save", "content": "Saves the draft"}
</script>
<script type="application/json" class="shiny-tooltip-definition">
{"id": "broken", "target": </script>
<script type="application/json" class="shiny-tooltip-definition">
{"id": "ghost", "target": "#missing"}
</script>
<script type="application/json" class="other">
{"id": "ignored", "target": "#open"}
</script>
</body></html>`

type counts map[string]int

func (c counts) Loaded(source string, o Outcome) { c[source+"/"+string(o)]++ }

type harness struct {
	doc    *htmldom.Document
	reg    *tooltip.Registry
	loader *Loader
	stats  counts
	logs   *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	doc, err := htmldom.ParseString(page)
	if err != nil {
		t.Fatal(err)
	}
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	reg := tooltip.NewRegistry(doc, doc.GetElementByID("shiny-tooltips-root"), sched.NewManual(), tooltip.Options{Logger: logger})
	stats := counts{}
	l := New(doc, reg, Options{Logger: logger, Stats: stats})
	return &harness{doc: doc, reg: reg, loader: l, stats: stats, logs: logs}
}

func TestStartRegistersExistingBlocks(t *testing.T) {
	h := newHarness(t)
	if n := h.loader.Start(context.Background()); n != 1 {
		t.Fatalf("Start registered %d, want 1", n)
	}
	if ids := h.reg.IDs(); len(ids) != 1 || ids[0] != "save-help" {
		t.Errorf("IDs = %v", ids)
	}

	want := counts{"initial/registered": 1, "initial/malformed": 1, "initial/unresolved": 1}
	for k, v := range want {
		if h.stats[k] != v {
			t.Errorf("stats[%s] = %d, want %d", k, h.stats[k], v)
		}
	}

	out := h.logs.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "code=T001") {
		t.Errorf("parse failure not logged as error:\n%s", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "target=#missing") {
		t.Errorf("unresolved target not logged as warning:\n%s", out)
	}
}

func TestInsertedBlocksAreRegistered(t *testing.T) {
	h := newHarness(t)
	h.loader.Start(context.Background())

	slot := h.doc.QuerySelector("#slot")
	err := h.doc.InsertHTML(slot, `<section>
<script type="application/json" class="shiny-tooltip-definition">{"id": "open-help", "target": "#open"}</script>
</section>`)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := h.reg.Get("open-help"); ok {
		t.Fatal("mutations must be delivered asynchronously")
	}
	h.doc.Flush()

	if _, ok := h.reg.Get("open-help"); !ok {
		t.Fatal("nested block was not registered")
	}
	if h.stats["mutation/registered"] != 1 {
		t.Errorf("stats = %v", h.stats)
	}
}

func TestInsertedBlockItself(t *testing.T) {
	h := newHarness(t)
	h.loader.Start(context.Background())

	h.doc.InsertHTML(h.doc.Body(), `<script type="application/json" class="shiny-tooltip-definition">{"id": "direct", "target": "#open", "trigger": "click"}</script>`)
	h.doc.Flush()

	s, ok := h.reg.Get("direct")
	if !ok {
		t.Fatal("inserted block was not registered")
	}
	if s.Definition().Trigger != "click" {
		t.Errorf("trigger = %q", s.Definition().Trigger)
	}
}

func TestDuplicateInsertIsAbsorbed(t *testing.T) {
	h := newHarness(t)
	h.loader.Start(context.Background())

	block := `<script type="application/json" class="shiny-tooltip-definition">{"id": "save-help", "target": "#open"}</script>`
	h.doc.InsertHTML(h.doc.Body(), block)
	h.doc.Flush()

	if h.reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", h.reg.Len())
	}
	s, _ := h.reg.Get("save-help")
	if s.Target() != h.doc.QuerySelector("#save") {
		t.Error("first registration should win")
	}
	if n := len(h.doc.QuerySelectorAll(`[data-tooltip-id="save-help"]`)); n != 1 {
		t.Errorf("display elements = %d, want 1", n)
	}
}

func TestDuplicateIsNotCountedAsRegistered(t *testing.T) {
	h := newHarness(t)
	h.loader.Start(context.Background())

	h.doc.InsertHTML(h.doc.Body(), `<script type="application/json" class="shiny-tooltip-definition">{"id": "save-help", "target": "#open"}</script>`)
	h.doc.Flush()

	if h.stats["mutation/registered"] != 0 || h.stats["mutation/duplicate"] != 1 {
		t.Errorf("stats = %v", h.stats)
	}
}

func TestDuplicateInInitialScan(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><div id="shiny-tooltips-root"></div><button id="a"></button>
<script type="application/json" class="shiny-tooltip-definition">{"id": "a-help", "target": "#a"}</script>
<script type="application/json" class="shiny-tooltip-definition">{"id": "a-help", "target": "#a", "trigger": "click"}</script>
</body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	reg := tooltip.NewRegistry(doc, doc.GetElementByID("shiny-tooltips-root"), sched.NewManual(), tooltip.Options{Logger: slog.New(slog.DiscardHandler)})
	stats := counts{}
	l := New(doc, reg, Options{Logger: slog.New(slog.DiscardHandler), Stats: stats})

	if n := l.Start(context.Background()); n != 1 {
		t.Errorf("Start = %d, want 1", n)
	}
	if stats["initial/registered"] != 1 || stats["initial/duplicate"] != 1 {
		t.Errorf("stats = %v", stats)
	}
}

func TestClose(t *testing.T) {
	h := newHarness(t)
	h.loader.Start(context.Background())
	h.loader.Close()
	h.loader.Close()

	h.doc.InsertHTML(h.doc.Body(), `<script type="application/json" class="shiny-tooltip-definition">{"id": "late", "target": "#open"}</script>`)
	h.doc.Flush()
	if _, ok := h.reg.Get("late"); ok {
		t.Error("closed loader still registers")
	}
}

func TestCustomClass(t *testing.T) {
	doc, err := htmldom.ParseString(page)
	if err != nil {
		t.Fatal(err)
	}
	reg := tooltip.NewRegistry(doc, doc.GetElementByID("shiny-tooltips-root"), sched.NewManual(), tooltip.Options{})
	l := New(doc, reg, Options{Class: "other", Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))})
	if n := l.Start(context.Background()); n != 1 {
		t.Fatalf("Start = %d, want 1", n)
	}
	if _, ok := reg.Get("ignored"); !ok {
		t.Error("block with the custom class was not registered")
	}
}
