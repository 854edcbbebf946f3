package report

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/vango-dev/tooltips"
	"github.com/vango-dev/tooltips/internal/errors"
)

const page = `<!DOCTYPE html><html><body>
<div id="shiny-tooltips-root"></div>
<button id="save">Save</button>
<script type="application/json" class="shiny-tooltip-definition">
{"id": "save-help", "target": "#save", "trigger": "click", "customStyle": "background: url(http://x/y.png)"}
</script>
<script type="application/json" class="shiny-tooltip-definition">
{"id": "save-help", "target": "#save"}
</script>
<script type="application/json" class="shiny-tooltip-definition">
{"id": "ghost", "target": "#missing"}
</script>
<script type="application/json" class="shiny-tooltip-definition">
{"id": "bad", "target": "#save", "placement": "middle"}
</script>
</body></html>`

func TestBuild(t *testing.T) {
	r, err := Build(strings.NewReader(page), tooltips.Config{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !r.RootFound || r.Version != tooltips.Version {
		t.Errorf("report header = %+v", r)
	}
	if r.Registered != 1 {
		t.Errorf("Registered = %d, want 1", r.Registered)
	}

	want := []struct {
		status Status
		code   string
	}{
		{StatusOK, ""},
		{StatusDuplicate, "T011"},
		{StatusUnresolved, "T010"},
		{StatusMalformed, "T002"},
	}
	if len(r.Entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(r.Entries), len(want))
	}
	for i, w := range want {
		e := r.Entries[i]
		if e.Index != i || e.Status != w.status || e.Code != w.code {
			t.Errorf("entry %d = %+v, want status %s code %q", i, e, w.status, w.code)
		}
	}

	first := r.Entries[0]
	if first.Trigger != "click" || first.Placement != "top" {
		t.Errorf("first entry = %+v", first)
	}
	if len(first.Warnings) == 0 {
		t.Error("url() style should produce a lint warning")
	}

	if got := len(r.Failed()); got != 2 {
		t.Errorf("Failed = %d, want 2", got)
	}
	if errors.CodeOf(r.Err()) != "T041" {
		t.Errorf("Err = %v, want T041", r.Err())
	}
	if !strings.Contains(r.Err().(*errors.TooltipError).Detail, "2 definitions") {
		t.Errorf("Err detail = %q", r.Err().(*errors.TooltipError).Detail)
	}
}

func TestBuildWithoutRoot(t *testing.T) {
	r, err := Build(strings.NewReader(`<html><body><b id="x"></b>
<script type="application/json" class="shiny-tooltip-definition">{"id": "a", "target": "#x"}</script>
</body></html>`), tooltips.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if r.RootFound {
		t.Error("RootFound = true")
	}
	if r.Registered != 1 {
		t.Errorf("definitions should still be checked, Registered = %d", r.Registered)
	}
	if !stderrors.Is(r.Err(), tooltips.ErrNoRoot) {
		t.Errorf("Err = %v, want ErrNoRoot", r.Err())
	}
}

func TestBuildClean(t *testing.T) {
	r, err := Build(strings.NewReader(`<html><body><div id="tips"></div><b id="x"></b>
<script class="defs">{"id": "a", "target": "#x", "interactive": true}</script>
</body></html>`), tooltips.Config{RootID: "tips", DefinitionClass: "defs"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Err() != nil {
		t.Errorf("Err = %v", r.Err())
	}
	if len(r.Entries) != 1 || !r.Entries[0].Interactive {
		t.Errorf("entries = %+v", r.Entries)
	}
}
